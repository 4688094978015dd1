package view

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/weft/layout"
)

// Config configures the view Model.
type Config struct {
	// Document text.
	Text string

	// Chroma lexer name used to tokenize Text. Empty means plain text.
	Language string

	// Inline and block inlays. Anchors are clamped to the document.
	Decorations *layout.Decorations

	// Layout options. TabColumnCount defaults to 4.
	TabColumnCount int
	WrapMode       layout.WrapMode

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// KeyMap defaults to DefaultKeyMap when it has no bindings.
	KeyMap KeyMap

	// Logger receives debug events for measure passes and hit tests.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

func (c Config) normalized() Config {
	if c.TabColumnCount <= 0 {
		c.TabColumnCount = 4
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

func normalizeDecorations(d *layout.Decorations, lines []string) *layout.Decorations {
	if d == nil {
		return nil
	}
	out := &layout.Decorations{
		Inline: make([][]layout.InlineInlay, len(lines)),
		Block:  layout.NormalizeBlockInlays(d.Block, len(lines)),
	}
	for i := range out.Inline {
		if i < len(d.Inline) {
			out.Inline[i] = layout.NormalizeInlineInlays(d.Inline[i], len(lines[i]))
		}
	}
	return out
}
