package grapheme

import (
	"iter"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabColumnCount is used when a caller passes a non-positive tab width.
const DefaultTabColumnCount = 4

// Clusters steps through the grapheme clusters of a text fragment and
// reports the column width of each one.
//
// A tab always occupies tabColumnCount columns: fragments are measured in
// isolation, so tab stops relative to the row are not known here.
type Clusters struct {
	rest           string
	state          int
	tabColumnCount int

	str   string
	width int
}

// Widths returns a Clusters iterator over text.
func Widths(text string, tabColumnCount int) Clusters {
	if tabColumnCount <= 0 {
		tabColumnCount = DefaultTabColumnCount
	}
	return Clusters{rest: text, state: -1, tabColumnCount: tabColumnCount}
}

// Next advances to the next cluster and reports whether there was one.
func (c *Clusters) Next() bool {
	if c.rest == "" {
		c.str, c.width = "", 0
		return false
	}
	cluster, rest, width, state := uniseg.FirstGraphemeClusterInString(c.rest, c.state)
	c.rest, c.state = rest, state
	c.str = cluster
	c.width = clusterWidth(cluster, width, c.tabColumnCount)
	return true
}

// Str returns the current cluster.
func (c *Clusters) Str() string { return c.str }

// Width returns the column width of the current cluster.
func (c *Clusters) Width() int { return c.width }

// All yields (cluster, width) pairs.
func All(text string, tabColumnCount int) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		c := Widths(text, tabColumnCount)
		for c.Next() {
			if !yield(c.Str(), c.Width()) {
				return
			}
		}
	}
}

// ColumnCount returns the total column width of text.
func ColumnCount(text string, tabColumnCount int) int {
	n := 0
	c := Widths(text, tabColumnCount)
	for c.Next() {
		n += c.Width()
	}
	return n
}

func clusterWidth(cluster string, segWidth, tabColumnCount int) int {
	if cluster == "\t" {
		return tabColumnCount
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = segWidth
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// First returns the first grapheme cluster of text.
func First(text string) string {
	if text == "" {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
	return cluster
}

// Last returns the last grapheme cluster of text.
func Last(text string) string {
	last := ""
	state := -1
	for text != "" {
		last, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
	}
	return last
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
