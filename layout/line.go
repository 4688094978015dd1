package layout

import (
	"fmt"

	"github.com/iw2rmb/weft/internal/grapheme"
)

// Line is a read-only view of one logical line: its text, tokens and inline
// inlays together with its slot of the geometry table. It borrows all of
// them and is cheap to copy.
type Line struct {
	index int

	y           float64
	hasY        bool
	columnCount int
	foldColumn  int
	scale       float64
	wrapData    *WrapData

	text   string
	tokens []Token
	inlays []InlineInlay
}

func (l Line) Index() int            { return l.index }
func (l Line) Text() string          { return l.text }
func (l Line) Tokens() []Token       { return l.tokens }
func (l Line) Inlays() []InlineInlay { return l.inlays }
func (l Line) FoldColumn() int       { return l.foldColumn }
func (l Line) Scale() float64        { return l.scale }

// IsLaidOut reports whether wrap data, column count and y are all known.
func (l Line) IsLaidOut() bool {
	return l.hasY && l.wrapData != nil && l.columnCount != Unmeasured
}

// Y returns the top of the line in document space.
func (l Line) Y() float64 {
	if !l.hasY {
		panic(fmt.Sprintf("layout: y of line %d is not laid out", l.index))
	}
	return l.y
}

func (l Line) RowCount() int {
	return len(l.mustWrapData().Wraps) + 1
}

func (l Line) ColumnCount() int {
	if l.columnCount == Unmeasured {
		panic(fmt.Sprintf("layout: column count of line %d is not measured", l.index))
	}
	return l.columnCount
}

// WrapIndentColumnCount returns the column continuation rows start at.
func (l Line) WrapIndentColumnCount() int {
	return l.mustWrapData().IndentColumnCount
}

func (l Line) Height() float64 {
	return float64(l.RowCount()) * l.scale
}

func (l Line) Width() float64 {
	return l.ColumnToX(l.ColumnCount())
}

// ColumnToX maps a column to x: columns up to the fold column map one to
// one, columns beyond it advance by scale.
func (l Line) ColumnToX(column int) float64 {
	return float64(min(column, l.foldColumn)) + float64(max(column-l.foldColumn, 0))*l.scale
}

// XToColumn returns the column whose span contains x.
func (l Line) XToColumn(x float64) int {
	if x <= 0 {
		return 0
	}
	fold := float64(l.foldColumn)
	if x <= fold {
		return int(x)
	}
	if l.scale <= 0 {
		return l.foldColumn
	}
	return l.foldColumn + int((x-fold)/l.scale)
}

func (l Line) Inlines() *Inlines {
	return newInlines(l.text, l.inlays)
}

// Wrappeds panics if the line has no wrap data.
func (l Line) Wrappeds() *Wrappeds {
	return newWrappeds(l.Inlines(), l.mustWrapData().Wraps)
}

// ByteAndAffinityToRowAndColumn maps a byte offset in the line to the row
// and column the cursor is drawn at. Inlay text and widgets take columns
// but never match a byte; at a wrap or inlay boundary affinity picks the
// side. It panics if offset is not a grapheme boundary of the line.
func (l Line) ByteAndAffinityToRowAndColumn(offset int, affinity Affinity, tabColumnCount int) (row, column int) {
	indent := l.WrapIndentColumnCount()
	if offset == 0 && affinity == Before {
		return 0, 0
	}

	current := 0
	it := l.Wrappeds()
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		switch w.Kind {
		case WrappedKindText:
			if w.IsInlay {
				column += grapheme.ColumnCount(w.Text, tabColumnCount)
				continue
			}
			g := grapheme.Widths(w.Text, tabColumnCount)
			for g.Next() {
				if current == offset && affinity == After {
					return row, column
				}
				current += len(g.Str())
				column += g.Width()
				if current == offset && affinity == Before {
					return row, column
				}
			}
		case WrappedKindWidget:
			column += w.Widget.ColumnCount
		case WrappedKindWrap:
			row++
			column = indent
		}
	}
	if current == offset && affinity == After {
		return row, column
	}
	panic(fmt.Sprintf("layout: byte %d (%v) is not a boundary of line %d", offset, affinity, l.index))
}

// RowAndColumnToByteAndAffinity is the inverse of
// ByteAndAffinityToRowAndColumn. A column on inlay text or a widget
// resolves to the boundary before it; a column past the end of a row
// resolves to the end of that row. A column inside a continuation row's
// indent resolves to the row's first position. It panics if the line has
// no such row.
func (l Line) RowAndColumnToByteAndAffinity(row, column, tabColumnCount int) (offset int, affinity Affinity) {
	indent := l.WrapIndentColumnCount()
	column = max(column, 0)

	currentRow, currentColumn := 0, 0
	it := l.Wrappeds()
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		switch w.Kind {
		case WrappedKindText:
			if w.IsInlay {
				next := currentColumn + grapheme.ColumnCount(w.Text, tabColumnCount)
				if currentRow == row && currentColumn <= column && column < next {
					return offset, Before
				}
				currentColumn = next
				continue
			}
			g := grapheme.Widths(w.Text, tabColumnCount)
			for g.Next() {
				next := currentColumn + g.Width()
				if currentRow == row && currentColumn <= column && column < next {
					return offset, After
				}
				offset += len(g.Str())
				currentColumn = next
			}
		case WrappedKindWidget:
			next := currentColumn + w.Widget.ColumnCount
			if currentRow == row && currentColumn <= column && column < next {
				return offset, Before
			}
			currentColumn = next
		case WrappedKindWrap:
			if currentRow == row {
				return offset, Before
			}
			currentRow++
			currentColumn = indent
			if currentRow == row && column < indent {
				column = indent
			}
		}
	}
	if currentRow == row {
		return offset, After
	}
	panic(fmt.Sprintf("layout: row %d is outside line %d", row, l.index))
}

func (l Line) mustWrapData() *WrapData {
	if l.wrapData == nil {
		panic(fmt.Sprintf("layout: wrap data of line %d is not computed", l.index))
	}
	return l.wrapData
}
