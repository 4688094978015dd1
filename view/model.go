package view

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/weft/buffer"
	"github.com/iw2rmb/weft/layout"
	"github.com/iw2rmb/weft/syntax"
)

// Cursor is a position in the document. Affinity picks the side drawn at
// wrap and inlay boundaries.
type Cursor struct {
	Line     int
	Byte     int
	Affinity layout.Affinity
}

// Model is a Bubble Tea component that renders a laid out document.
type Model struct {
	cfg    Config
	log    *zap.Logger
	buf    *buffer.Buffer
	tokens [][]layout.Token
	deco   *layout.Decorations
	geom   *layout.Geometry

	focused  bool
	viewport viewport.Model

	// top is the document y shown on the first screen row.
	top float64
	// measuredWidth is the wrap column the geometry was measured with.
	measuredWidth int

	cursor     Cursor
	goalColumn int
}

// New tokenizes cfg.Text and builds a focused Model. It fails only when
// cfg.Language names no known lexer.
func New(cfg Config) (Model, error) {
	cfg = cfg.normalized()
	buf := buffer.New(cfg.Text)
	lines := buf.Lines()
	tokens, err := syntax.Tokenize(cfg.Language, lines)
	if err != nil {
		return Model{}, fmt.Errorf("view: %w", err)
	}

	m := Model{
		cfg:           cfg,
		log:           cfg.Logger,
		buf:           buf,
		tokens:        tokens,
		deco:          normalizeDecorations(cfg.Decorations, lines),
		geom:          layout.NewGeometry(buf.LineCount()),
		focused:       true,
		viewport:      viewport.New(0, 0),
		measuredWidth: -1,
		goalColumn:    -1,
	}
	m.rebuildContent()
	return m, nil
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Layout returns the measured layout of the document.
func (m *Model) Layout() layout.Layout {
	m.measure()
	return m.layout()
}

func (m Model) Cursor() Cursor { return m.cursor }

// SetCursor moves the cursor to the nearest grapheme boundary of c and
// scrolls it into view.
func (m Model) SetCursor(c Cursor) Model {
	p := m.buf.Clamp(buffer.Pos{Line: c.Line, Byte: c.Byte})
	m.cursor = Cursor{Line: p.Line, Byte: p.Byte, Affinity: c.Affinity}
	m.goalColumn = -1
	m.followCursor()
	m.rebuildContent()
	return m
}

// Top returns the document y shown on the first row.
func (m Model) Top() float64 { return m.top }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.followCursor()
	m.rebuildContent()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) layout() layout.Layout {
	return layout.New(m.buf, m.tokens, m.deco, m.geom)
}

// measure brings the geometry up to date with the current content width.
func (m *Model) measure() {
	width := 0
	if m.cfg.WrapMode != layout.WrapNone {
		width = m.contentWidth()
	}
	if width != m.measuredWidth {
		m.geom.InvalidateAll()
		m.measuredWidth = width
	}
	if m.geom.IsLaidOut() {
		return
	}

	start := time.Now()
	m.geom.Measure(m.buf, m.tokens, m.deco, layout.MeasureConfig{
		TabColumnCount: m.cfg.TabColumnCount,
		WrapColumn:     width,
		WrapMode:       m.cfg.WrapMode,
	})
	m.log.Debug("measured layout",
		zap.Int("lines", m.buf.LineCount()),
		zap.Int("wrap_column", width),
		zap.Stringer("wrap_mode", m.cfg.WrapMode),
		zap.Duration("took", time.Since(start)),
	)
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
	m.viewport.SetYOffset(0)
}

func (m Model) contentHeight() int {
	return max(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}

func (m Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	return max(w, 0)
}

func (m *Model) scrollTo(top float64) {
	m.measure()
	limit := max(m.layout().Height()-float64(m.contentHeight()), 0)
	m.top = math.Floor(min(max(top, 0), limit))
}

func (m *Model) followCursor() {
	h := float64(m.contentHeight())
	if h <= 0 {
		return
	}
	m.measure()
	_, y := m.layout().PositionToPoint(m.cursor.Line, m.cursor.Byte, m.cursor.Affinity, m.cfg.TabColumnCount)
	switch {
	case y < m.top:
		m.scrollTo(y)
	case y+1 > m.top+h:
		m.scrollTo(y + 1 - h)
	default:
		m.scrollTo(m.top)
	}
}
