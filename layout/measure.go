package layout

import "github.com/iw2rmb/weft/internal/grapheme"

// MeasureColumnCount returns the width of the widest row of the line.
// Continuation rows start at the wrap indent.
func (l Line) MeasureColumnCount(tabColumnCount int) int {
	indent := l.WrapIndentColumnCount()
	widest, count := 0, 0
	it := l.Wrappeds()
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		switch w.Kind {
		case WrappedKindText:
			count += grapheme.ColumnCount(w.Text, tabColumnCount)
		case WrappedKindWidget:
			count += w.Widget.ColumnCount
		case WrappedKindWrap:
			widest = max(widest, count)
			count = indent
		}
	}
	return max(widest, count)
}

// Measure computes wrap data and column counts for every unmeasured line
// and then lays out Y, including the heights of block widgets, up to and
// including the total height. The table is resized to the line count of
// text first.
func (g *Geometry) Measure(text Text, tokens [][]Token, deco *Decorations, cfg MeasureConfig) {
	n := text.LineCount()
	if g.LineCount() != n {
		g.Resize(n)
	}
	l := New(text, tokens, deco, g)
	tab := cfg.tabColumnCount()

	for i := 0; i < n; i++ {
		if g.WrapData[i] != nil && g.ColumnCounts[i] != Unmeasured {
			continue
		}
		wd := ComputeWrapData(l.Line(i), cfg)
		g.WrapData[i] = &wd
		g.ColumnCounts[i] = l.Line(i).MeasureColumnCount(tab)
		g.truncateY(i + 1)
	}
	g.layoutY(l)
}

// layoutY extends Y from its current length to LineCount()+1 entries.
func (g *Geometry) layoutY(l Layout) {
	n := l.LineCount()
	start := len(g.Y)
	if start >= n+1 {
		return
	}

	y := 0.0
	if start > 0 {
		prev := l.Line(start - 1)
		y = prev.Y() + prev.Height()
	}
	ys := g.Y
	blocks := l.Blocks(start, n)
	for b, ok := blocks.Next(); ok; b, ok = blocks.Next() {
		switch b.Kind {
		case BlockKindLine:
			ys = append(ys, y)
			y += b.Line.Height()
		case BlockKindWidget:
			y += b.Widget.Height
		}
	}
	g.Y = append(ys, y)
}
