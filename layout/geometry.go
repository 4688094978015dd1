package layout

import "math"

const (
	// Unmeasured marks a column count that has not been computed yet.
	Unmeasured = -1
	// NoFold is the fold column of an unfolded line.
	NoFold = math.MaxInt
)

// WrapData describes where a line breaks into rows.
//
// Each entry of Wraps is a position in the line's inline stream (text
// advances it by its byte length, a widget by one) before which a row
// break is inserted. Entries are strictly ascending. Continuation rows
// start at IndentColumnCount.
type WrapData struct {
	Wraps             []int
	IndentColumnCount int
}

// Geometry is the per-line geometry table, stored as parallel slices with
// one slot per logical line.
//
// Y holds the top of every line in document space followed by the total
// height, so it has LineCount()+1 entries once fully laid out. It may be
// shorter while lines are being (re)measured; Y is always a valid prefix.
type Geometry struct {
	Y            []float64
	ColumnCounts []int
	FoldColumns  []int
	Scales       []float64
	WrapData     []*WrapData
}

// NewGeometry returns a table for lineCount unmeasured, unfolded lines.
func NewGeometry(lineCount int) *Geometry {
	g := &Geometry{}
	g.Resize(lineCount)
	return g
}

func (g *Geometry) LineCount() int { return len(g.ColumnCounts) }

// Resize grows or shrinks the table to lineCount slots. New slots are
// unmeasured and unfolded. The trailing total height is always dropped.
func (g *Geometry) Resize(lineCount int) {
	lineCount = max(lineCount, 0)
	n := g.LineCount()
	if lineCount < n {
		g.ColumnCounts = g.ColumnCounts[:lineCount]
		g.FoldColumns = g.FoldColumns[:lineCount]
		g.Scales = g.Scales[:lineCount]
		clear(g.WrapData[lineCount:])
		g.WrapData = g.WrapData[:lineCount]
	}
	for i := n; i < lineCount; i++ {
		g.ColumnCounts = append(g.ColumnCounts, Unmeasured)
		g.FoldColumns = append(g.FoldColumns, NoFold)
		g.Scales = append(g.Scales, 1)
		g.WrapData = append(g.WrapData, nil)
	}
	g.truncateY(min(n, lineCount))
}

// Invalidate drops the measurement of line so the next Measure recomputes
// its wrap data, column count and every y below it.
func (g *Geometry) Invalidate(line int) {
	g.ColumnCounts[line] = Unmeasured
	g.WrapData[line] = nil
	g.truncateY(line + 1)
}

// InvalidateAll drops every measurement.
func (g *Geometry) InvalidateAll() {
	for i := range g.ColumnCounts {
		g.ColumnCounts[i] = Unmeasured
		g.WrapData[i] = nil
	}
	g.Y = g.Y[:0]
}

// InvalidateY drops y values from line onwards. Use it when block inlays at
// or after line change.
func (g *Geometry) InvalidateY(line int) {
	g.truncateY(max(line, 0))
}

// Fold renders the columns of line beyond column at scale.
func (g *Geometry) Fold(line, column int, scale float64) {
	g.FoldColumns[line] = max(column, 0)
	g.Scales[line] = scale
	g.truncateY(line + 1)
}

// Unfold restores line to its natural scale.
func (g *Geometry) Unfold(line int) {
	g.FoldColumns[line] = NoFold
	g.Scales[line] = 1
	g.truncateY(line + 1)
}

// IsLaidOut reports whether every line is measured and Y is complete.
func (g *Geometry) IsLaidOut() bool {
	if len(g.Y) != g.LineCount()+1 {
		return false
	}
	for i, wd := range g.WrapData {
		if wd == nil || g.ColumnCounts[i] == Unmeasured {
			return false
		}
	}
	return true
}

func (g *Geometry) truncateY(n int) {
	if len(g.Y) > n {
		g.Y = g.Y[:n]
	}
}
