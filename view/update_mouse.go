package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const wheelRows = 3

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		m.scrollTo(m.top - wheelRows)
	case tea.MouseButtonWheelDown:
		m.scrollTo(m.top + wheelRows)
	case tea.MouseButtonLeft:
		if !m.focused || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		m.hitTest(msg.X, msg.Y)
	default:
		return m, nil
	}

	m.rebuildContent()
	return m, nil
}

// hitTest places the cursor at the document position under screen cell
// (x, y).
func (m *Model) hitTest(x, y int) {
	m.measure()
	docX := float64(max(x-m.gutterWidth(), 0))
	docY := m.top + float64(y)
	line, offset, affinity := m.layout().PointToPosition(docX, docY, m.cfg.TabColumnCount)
	m.cursor = Cursor{Line: line, Byte: offset, Affinity: affinity}
	m.goalColumn = -1
	m.log.Debug("hit test",
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Int("line", line),
		zap.Int("byte", offset),
		zap.Stringer("affinity", affinity),
	)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
