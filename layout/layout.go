package layout

import (
	"fmt"
	"iter"
	"slices"
)

// Layout borrows a document's text, tokens, decorations and geometry for
// the duration of a query. None of them may be mutated while the Layout,
// or any Line or iterator obtained from it, is in use.
type Layout struct {
	text   Text
	tokens [][]Token
	deco   *Decorations
	geom   *Geometry
}

// New returns a Layout over the given tables. tokens and deco may be nil.
// geom must have one slot per line of text.
func New(text Text, tokens [][]Token, deco *Decorations, geom *Geometry) Layout {
	return Layout{text: text, tokens: tokens, deco: deco, geom: geom}
}

func (l Layout) LineCount() int { return l.text.LineCount() }

// Width returns the widest line in document space.
func (l Layout) Width() float64 {
	width := 0.0
	it := l.Lines(0, l.LineCount())
	for line, ok := it.Next(); ok; line, ok = it.Next() {
		width = max(width, line.Width())
	}
	return width
}

// Height returns the total document height, the trailing entry of Y.
func (l Layout) Height() float64 {
	n := l.LineCount()
	if len(l.geom.Y) <= n {
		panic(fmt.Sprintf("layout: height requested with %d of %d y values laid out", len(l.geom.Y), n+1))
	}
	return l.geom.Y[n]
}

// FindFirstLineEndingAfterY returns the first line whose bottom lies below
// y. Together with FindFirstLineStartingAfterY it bounds the lines visible
// in a viewport.
func (l Layout) FindFirstLineEndingAfterY(y float64) int {
	line, found := slices.BinarySearch(l.lineTops(), y)
	if found {
		return line
	}
	return max(line-1, 0)
}

// FindFirstLineStartingAfterY returns the first line whose top lies below
// y.
func (l Layout) FindFirstLineStartingAfterY(y float64) int {
	line, found := slices.BinarySearch(l.lineTops(), y)
	if found {
		return line + 1
	}
	return line
}

func (l Layout) lineTops() []float64 {
	ys := l.geom.Y
	if n := l.LineCount(); len(ys) > n {
		ys = ys[:n]
	}
	return ys
}

// Line returns a view of line i. It panics if i is out of range.
func (l Layout) Line(i int) Line {
	n := l.LineCount()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("layout: line %d out of range [0, %d)", i, n))
	}
	g := l.geom
	line := Line{
		index:       i,
		columnCount: g.ColumnCounts[i],
		foldColumn:  g.FoldColumns[i],
		scale:       g.Scales[i],
		wrapData:    g.WrapData[i],
		text:        l.text.Line(i),
		inlays:      l.deco.inline(i),
	}
	if i < len(g.Y) {
		line.y, line.hasY = g.Y[i], true
	}
	if i < len(l.tokens) {
		line.tokens = l.tokens[i]
	}
	return line
}

// Lines yields the lines in [start, end), clamped to the document.
func (l Layout) Lines(start, end int) *Lines {
	n := l.LineCount()
	start = clampInt(start, 0, n)
	end = clampInt(end, start, n)
	return &Lines{layout: l, next: start, end: end}
}

// Blocks yields the lines in [start, end), clamped to the document, merged
// with the block widgets anchored before each of them. Widgets anchored at
// end are yielded after the last line.
func (l Layout) Blocks(start, end int) *Blocks {
	lines := l.Lines(start, end)
	inlays := newSideTable(l.deco.block(), func(in BlockInlay) int { return in.Line })
	inlays.skipBefore(lines.next)
	return &Blocks{lines: lines, inlays: inlays, position: lines.next}
}

type Lines struct {
	layout Layout
	next   int
	end    int
}

func (it *Lines) Next() (Line, bool) {
	if it.next >= it.end {
		return Line{}, false
	}
	line := it.layout.Line(it.next)
	it.next++
	return line, true
}

func (it *Lines) All() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for line, ok := it.Next(); ok; line, ok = it.Next() {
			if !yield(line) {
				return
			}
		}
	}
}
