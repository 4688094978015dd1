package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/weft/internal/grapheme"
	"github.com/iw2rmb/weft/layout"
)

// widgetCell fills the cells reserved by inline and block widgets.
const widgetCell = "░"

// renderContent draws the rows visible from m.top. Only the lines between
// the first line ending after the top and the first line starting after
// the bottom are walked.
func (m *Model) renderContent() string {
	h := m.contentHeight()
	if h <= 0 {
		return ""
	}
	m.measure()
	l := m.layout()

	rows := make([]string, h)
	lineNums := make([]int, h)
	for i := range lineNums {
		lineNums[i] = -1
	}

	start := l.FindFirstLineEndingAfterY(m.top)
	end := l.FindFirstLineStartingAfterY(m.top + float64(h))
	y := 0.0
	if start > 0 {
		prev := l.Line(start - 1)
		y = prev.Y() + prev.Height()
	}

	blocks := l.Blocks(start, end)
	for b, ok := blocks.Next(); ok; b, ok = blocks.Next() {
		switch b.Kind {
		case layout.BlockKindLine:
			first := screenRow(b.Line.Y(), m.top)
			for r, text := range m.renderLine(b.Line) {
				s := first + r
				if s < 0 || s >= h {
					continue
				}
				rows[s] = text
				if r == 0 {
					lineNums[s] = b.Line.Index()
				}
			}
			y = b.Line.Y() + b.Line.Height()
		case layout.BlockKindWidget:
			first := screenRow(y, m.top)
			fill := m.cfg.Style.BlockWidget.Render(strings.Repeat(widgetCell, m.contentWidth()))
			for r := range int(math.Ceil(b.Widget.Height)) {
				if s := first + r; s >= 0 && s < h {
					rows[s] = fill
				}
			}
			y += b.Widget.Height
		}
	}

	if m.cfg.ShowLineNums {
		digits := gutterDigits(l.LineCount())
		for s := range rows {
			rows[s] = m.renderGutter(lineNums[s], digits) + rows[s]
		}
	}
	return strings.Join(rows, "\n")
}

func screenRow(y, top float64) int {
	return int(math.Floor(y - top))
}

// renderLine returns one rendered string per row of ln.
func (m *Model) renderLine(ln layout.Line) []string {
	st := m.cfg.Style
	tab := m.cfg.TabColumnCount

	limit := m.contentWidth()
	cursorRow, cursorColumn := -1, -1
	if m.focused && m.cursor.Line == ln.Index() {
		cursorRow, cursorColumn = ln.ByteAndAffinityToRowAndColumn(m.cursor.Byte, m.cursor.Affinity, tab)
	}

	var (
		rows         []string
		sb           strings.Builder
		row, column  int
		offset       int
		cursorDrawn  bool
		tokenAtBytes = newTokenCursor(ln.Tokens())
	)
	// Cells past the content width are dropped.
	cell := func(s string, width int, style lipgloss.Style) {
		if column+width > limit {
			column += width
			return
		}
		if !cursorDrawn && row == cursorRow && column == cursorColumn && width > 0 {
			style = st.Cursor
			cursorDrawn = true
		}
		sb.WriteString(style.Render(s))
		column += width
	}
	endRow := func() {
		if !cursorDrawn && row == cursorRow && column < limit {
			sb.WriteString(st.Cursor.Render(" "))
			cursorDrawn = true
		}
		rows = append(rows, sb.String())
		sb.Reset()
	}

	it := ln.Wrappeds()
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		switch w.Kind {
		case layout.WrappedKindText:
			for g, width := range grapheme.All(w.Text, tab) {
				style := st.Inlay
				if !w.IsInlay {
					style = st.token(tokenAtBytes.kindAt(offset))
					offset += len(g)
				}
				if g == "\t" {
					g = strings.Repeat(" ", width)
				}
				cell(g, width, style)
			}
		case layout.WrappedKindWidget:
			n := w.Widget.ColumnCount
			cell(strings.Repeat(widgetCell, n), n, st.Widget)
		case layout.WrappedKindWrap:
			endRow()
			row++
			column = ln.WrapIndentColumnCount()
			sb.WriteString(strings.Repeat(" ", column))
		}
	}
	endRow()
	return rows
}

func (m Model) renderGutter(line, digits int) string {
	numStyle := m.cfg.Style.LineNum
	num := fmt.Sprintf("%*s", digits, "")
	if line >= 0 {
		num = fmt.Sprintf("%*d", digits, line+1)
		if m.focused && line == m.cursor.Line {
			numStyle = m.cfg.Style.LineNumActive
		}
	}
	return numStyle.Render(num) + m.cfg.Style.Gutter.Render(" ")
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// tokenCursor resolves the token kind at increasing byte offsets.
type tokenCursor struct {
	tokens []layout.Token
	i      int
	start  int
}

func newTokenCursor(tokens []layout.Token) *tokenCursor {
	return &tokenCursor{tokens: tokens}
}

func (c *tokenCursor) kindAt(offset int) layout.TokenKind {
	for c.i < len(c.tokens) && offset >= c.start+c.tokens[c.i].Len {
		c.start += c.tokens[c.i].Len
		c.i++
	}
	if c.i == len(c.tokens) {
		return layout.TokenUnknown
	}
	return c.tokens[c.i].Kind
}
