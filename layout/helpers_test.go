package layout

import "github.com/iw2rmb/weft/internal/grapheme"

type textLines []string

func (t textLines) LineCount() int    { return len(t) }
func (t textLines) Line(i int) string { return t[i] }

// measured lays out text with cfg and returns the resulting layout.
func measured(text []string, deco *Decorations, cfg MeasureConfig) (Layout, *Geometry) {
	g := NewGeometry(len(text))
	g.Measure(textLines(text), nil, deco, cfg)
	return New(textLines(text), nil, deco, g), g
}

// lineWithWraps lays out a single line using the given wrap data instead of
// computing it.
func lineWithWraps(text string, inlays []InlineInlay, wd WrapData) Line {
	deco := &Decorations{Inline: [][]InlineInlay{inlays}}
	g := NewGeometry(1)
	g.WrapData[0] = &wd
	l := New(textLines{text}, nil, deco, g)
	g.ColumnCounts[0] = l.Line(0).MeasureColumnCount(4)
	g.Measure(textLines{text}, nil, deco, MeasureConfig{TabColumnCount: 4})
	return l.Line(0)
}

func collectInlines(it *Inlines) []Inline {
	var out []Inline
	for in := range it.All() {
		out = append(out, in)
	}
	return out
}

func collectWrappeds(it *Wrappeds) []Wrapped {
	var out []Wrapped
	for w := range it.All() {
		out = append(out, w)
	}
	return out
}

// boundaries returns every grapheme boundary of text, including 0 and
// len(text).
func boundaries(text string) []int {
	out := []int{0}
	for _, c := range grapheme.Split(text) {
		out = append(out, out[len(out)-1]+len(c))
	}
	return out
}
