package layout

import (
	"sort"
	"strings"
)

type InlayKind int

const (
	InlayKindText InlayKind = iota
	InlayKindWidget
)

// InlineWidget is an opaque handle for a widget rendered inside a line. It
// occupies a fixed number of columns.
type InlineWidget struct {
	ID          int
	ColumnCount int
}

// BlockWidget is an opaque handle for a widget rendered between lines.
// Height is measured in rows.
type BlockWidget struct {
	ID     int
	Height float64
}

// InlineInlay is view-only content anchored at a byte offset within one
// line. Byte must sit on a grapheme boundary.
type InlineInlay struct {
	Byte   int
	Kind   InlayKind
	Text   string
	Widget InlineWidget
}

// TextInlay returns a text inlay anchored at offset.
func TextInlay(offset int, text string) InlineInlay {
	return InlineInlay{Byte: offset, Kind: InlayKindText, Text: text}
}

// WidgetInlay returns a widget inlay anchored at offset.
func WidgetInlay(offset int, w InlineWidget) InlineInlay {
	return InlineInlay{Byte: offset, Kind: InlayKindWidget, Widget: w}
}

// BlockInlay anchors a widget before logical line Line. Line may equal the
// line count, which places the widget after the last line.
type BlockInlay struct {
	Line   int
	Widget BlockWidget
}

// Decorations holds the inline inlay table (one sorted slice per line) and
// the block inlay table (sorted by line). Either may be empty.
type Decorations struct {
	Inline [][]InlineInlay
	Block  []BlockInlay
}

func (d *Decorations) inline(line int) []InlineInlay {
	if d == nil || line < 0 || line >= len(d.Inline) {
		return nil
	}
	return d.Inline[line]
}

func (d *Decorations) block() []BlockInlay {
	if d == nil {
		return nil
	}
	return d.Block
}

// NormalizeInlineInlays clamps anchors into [0, lineLen], drops empty text
// inlays and newlines inside inlay text, and stable-sorts by anchor.
func NormalizeInlineInlays(inlays []InlineInlay, lineLen int) []InlineInlay {
	if len(inlays) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]InlineInlay, 0, len(inlays))
	for _, in := range inlays {
		in.Byte = clampInt(in.Byte, 0, lineLen)
		if in.Kind == InlayKindText {
			in.Text = sanitizeSingleLine(in.Text)
			if in.Text == "" {
				continue
			}
		}
		if in.Kind == InlayKindWidget && in.Widget.ColumnCount < 0 {
			in.Widget.ColumnCount = 0
		}
		out = append(out, in)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Byte < out[j].Byte
	})
	return out
}

// NormalizeBlockInlays clamps lines into [0, lineCount] and stable-sorts by
// line.
func NormalizeBlockInlays(inlays []BlockInlay, lineCount int) []BlockInlay {
	if len(inlays) == 0 {
		return nil
	}
	out := make([]BlockInlay, len(inlays))
	for i, in := range inlays {
		in.Line = clampInt(in.Line, 0, max(lineCount, 0))
		out[i] = in
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Line < out[j].Line
	})
	return out
}

func sanitizeSingleLine(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return s
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
