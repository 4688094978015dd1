package layout

import "math"

// PositionToPoint maps a document position to the top-left corner of its
// cell in document space.
func (l Layout) PositionToPoint(line, offset int, affinity Affinity, tabColumnCount int) (x, y float64) {
	ln := l.Line(line)
	row, column := ln.ByteAndAffinityToRowAndColumn(offset, affinity, tabColumnCount)
	return ln.ColumnToX(column), ln.Y() + float64(row)*ln.Scale()
}

// PointToPosition maps a point in document space to the nearest document
// position. Points above the document resolve to its start, points below it
// to the end of the last line, and points in the gap left by block widgets
// to the start of the following line.
func (l Layout) PointToPosition(x, y float64, tabColumnCount int) (line, offset int, affinity Affinity) {
	n := l.LineCount()
	if n == 0 {
		return 0, 0, After
	}

	line = min(l.FindFirstLineEndingAfterY(y), n-1)
	ln := l.Line(line)
	top := ln.Y()
	switch {
	case y < top:
		return line, 0, Before
	case y >= top+ln.Height():
		if line+1 < n {
			return line + 1, 0, Before
		}
		offset, affinity = ln.RowAndColumnToByteAndAffinity(ln.RowCount()-1, math.MaxInt, tabColumnCount)
		return line, offset, affinity
	}

	row := 0
	if ln.Scale() > 0 {
		row = clampInt(int((y-top)/ln.Scale()), 0, ln.RowCount()-1)
	}
	offset, affinity = ln.RowAndColumnToByteAndAffinity(row, ln.XToColumn(x), tabColumnCount)
	return line, offset, affinity
}
