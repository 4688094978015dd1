package layout

import (
	"github.com/iw2rmb/weft/internal/grapheme"
)

type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "none"
	case WrapWord:
		return "word"
	case WrapGrapheme:
		return "grapheme"
	default:
		return "wrap(?)"
	}
}

// MeasureConfig controls how lines are broken into rows and measured.
type MeasureConfig struct {
	// TabColumnCount is the width of a tab. Zero means 4.
	TabColumnCount int
	// WrapColumn is the number of columns a row may hold. Zero or less
	// disables wrapping.
	WrapColumn int
	WrapMode   WrapMode
}

func (c MeasureConfig) tabColumnCount() int {
	if c.TabColumnCount <= 0 {
		return grapheme.DefaultTabColumnCount
	}
	return c.TabColumnCount
}

// wrapUnit is an unbreakable piece of the inline stream.
type wrapUnit struct {
	length int // position advance
	width  int // columns
	hang   bool
}

// ComputeWrapData greedily breaks the inline stream of line into rows of at
// most cfg.WrapColumn columns. WrapWord breaks after whitespace runs, which
// may hang past the wrap column, and falls back to grapheme breaks for
// words that can never fit; WrapGrapheme breaks between any two graphemes.
// A unit wider than a whole row is kept on a row of its own.
//
// Continuation rows are indented by the line's leading whitespace, unless
// that indent leaves no room or some widget would not fit next to it.
func ComputeWrapData(line Line, cfg MeasureConfig) WrapData {
	if cfg.WrapMode == WrapNone || cfg.WrapColumn <= 0 {
		return WrapData{}
	}
	tab := cfg.tabColumnCount()

	indent := grapheme.ColumnCount(leadingWhitespace(line.Text()), tab)
	if indent >= cfg.WrapColumn {
		indent = 0
	}
	for in := range line.Inlines().All() {
		if in.Kind == InlineKindWidget && in.Widget.ColumnCount+indent > cfg.WrapColumn {
			indent = 0
			break
		}
	}

	var wraps []int
	position, column := 0, 0
	rowHasContent := false
	place := func(u wrapUnit) {
		if rowHasContent && !u.hang && column+u.width > cfg.WrapColumn {
			wraps = append(wraps, position)
			column = indent
		}
		column += u.width
		position += u.length
		rowHasContent = true
	}

	for in := range line.Inlines().All() {
		if in.Kind == InlineKindWidget {
			place(wrapUnit{length: 1, width: in.Widget.ColumnCount})
			continue
		}
		forEachWrapUnit(in.Text, cfg.WrapMode, cfg.WrapColumn-indent, tab, place)
	}
	return WrapData{Wraps: wraps, IndentColumnCount: indent}
}

// forEachWrapUnit splits text into the units the wrap mode may break
// between.
func forEachWrapUnit(text string, mode WrapMode, rowWidth, tab int, fn func(wrapUnit)) {
	if mode == WrapGrapheme {
		g := grapheme.Widths(text, tab)
		for g.Next() {
			fn(wrapUnit{length: len(g.Str()), width: g.Width()})
		}
		return
	}

	for text != "" {
		run, width := whitespaceRun(text, tab)
		switch {
		case grapheme.IsSpace(grapheme.First(run)):
			fn(wrapUnit{length: len(run), width: width, hang: true})
		case width > rowWidth:
			forEachWrapUnit(run, WrapGrapheme, rowWidth, tab, fn)
		default:
			fn(wrapUnit{length: len(run), width: width})
		}
		text = text[len(run):]
	}
}

// whitespaceRun returns the longest prefix of text whose graphemes are all
// whitespace or all non-whitespace, and its width.
func whitespaceRun(text string, tab int) (string, int) {
	n, width := 0, 0
	first := true
	space := false
	g := grapheme.Widths(text, tab)
	for g.Next() {
		s := grapheme.IsSpace(g.Str())
		if first {
			space, first = s, false
		} else if s != space {
			break
		}
		n += len(g.Str())
		width += g.Width()
	}
	return text[:n], width
}

func leadingWhitespace(text string) string {
	n := 0
	g := grapheme.Widths(text, 1)
	for g.Next() && grapheme.IsSpace(g.Str()) {
		n += len(g.Str())
	}
	return text[:n]
}
