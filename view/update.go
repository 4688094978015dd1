package view

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/weft/buffer"
	"github.com/iw2rmb/weft/layout"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.moveBuffer(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft}, layout.After)
	case key.Matches(msg, km.Right):
		m.moveBuffer(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight}, layout.Before)
	case key.Matches(msg, km.Up):
		m.moveRows(-1)
	case key.Matches(msg, km.Down):
		m.moveRows(1)

	case key.Matches(msg, km.WordLeft):
		m.moveBuffer(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft}, layout.After)
	case key.Matches(msg, km.WordRight):
		m.moveBuffer(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight}, layout.Before)

	case key.Matches(msg, km.Home):
		m.moveInRow(0)
	case key.Matches(msg, km.End):
		m.moveInRow(maxColumn)
	case key.Matches(msg, km.LineStart):
		m.moveBuffer(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome}, layout.After)
	case key.Matches(msg, km.LineEnd):
		m.moveBuffer(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd}, layout.After)
	case key.Matches(msg, km.DocStart):
		m.moveBuffer(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome}, layout.After)
	case key.Matches(msg, km.DocEnd):
		m.moveBuffer(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd}, layout.After)

	case key.Matches(msg, km.PageUp):
		m.moveRows(-max(m.contentHeight(), 1))
	case key.Matches(msg, km.PageDown):
		m.moveRows(max(m.contentHeight(), 1))

	default:
		return m, nil
	}

	m.followCursor()
	m.rebuildContent()
	return m, nil
}

const maxColumn = int(^uint(0) >> 1)

// moveBuffer applies a logical move and forgets the goal column.
func (m *Model) moveBuffer(mv buffer.Move, affinity layout.Affinity) {
	p := m.buf.Move(buffer.Pos{Line: m.cursor.Line, Byte: m.cursor.Byte}, mv)
	m.cursor = Cursor{Line: p.Line, Byte: p.Byte, Affinity: affinity}
	m.goalColumn = -1
}

// moveInRow moves to column of the cursor's row.
func (m *Model) moveInRow(column int) {
	m.measure()
	ln := m.layout().Line(m.cursor.Line)
	tab := m.cfg.TabColumnCount
	row, _ := ln.ByteAndAffinityToRowAndColumn(m.cursor.Byte, m.cursor.Affinity, tab)
	offset, affinity := ln.RowAndColumnToByteAndAffinity(row, column, tab)
	m.cursor = Cursor{Line: m.cursor.Line, Byte: offset, Affinity: affinity}
	m.goalColumn = -1
}

// moveRows moves the cursor delta rows up or down, crossing line
// boundaries and skipping block widgets. The column is kept across
// consecutive vertical moves.
func (m *Model) moveRows(delta int) {
	m.measure()
	l := m.layout()
	tab := m.cfg.TabColumnCount

	line := m.cursor.Line
	row, column := l.Line(line).ByteAndAffinityToRowAndColumn(m.cursor.Byte, m.cursor.Affinity, tab)
	if m.goalColumn < 0 {
		m.goalColumn = column
	}

	row += delta
	for row < 0 && line > 0 {
		line--
		row += l.Line(line).RowCount()
	}
	for row >= l.Line(line).RowCount() && line < l.LineCount()-1 {
		row -= l.Line(line).RowCount()
		line++
	}
	ln := l.Line(line)
	row = min(max(row, 0), ln.RowCount()-1)

	offset, affinity := ln.RowAndColumnToByteAndAffinity(row, m.goalColumn, tab)
	m.cursor = Cursor{Line: line, Byte: offset, Affinity: affinity}
}
