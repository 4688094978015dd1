package layout

import "iter"

type InlineKind int

const (
	InlineKindText InlineKind = iota
	InlineKindWidget
)

// Inline is one item of a line's text merged with its inline inlays.
// Text is set for InlineKindText, Widget for InlineKindWidget.
type Inline struct {
	Kind    InlineKind
	IsInlay bool
	Text    string
	Widget  InlineWidget
}

// Inlines yields a line's raw text interleaved with its inline inlays in
// byte order. Raw fragments (IsInlay false) concatenate to the line text.
type Inlines struct {
	text     string
	position int
	inlays   sideTable[InlineInlay]
}

func newInlines(text string, inlays []InlineInlay) *Inlines {
	return &Inlines{
		text:   text,
		inlays: newSideTable(inlays, func(in InlineInlay) int { return in.Byte }),
	}
}

func (it *Inlines) Next() (Inline, bool) {
	it.inlays.skipBefore(it.position)
	if inlay, ok := it.inlays.takeAt(it.position); ok {
		if inlay.Kind == InlayKindWidget {
			return Inline{Kind: InlineKindWidget, IsInlay: true, Widget: inlay.Widget}, true
		}
		return Inline{Kind: InlineKindText, IsInlay: true, Text: inlay.Text}, true
	}

	rest := it.text[it.position:]
	if rest == "" {
		return Inline{}, false
	}
	n := it.inlays.span(it.position, len(rest))
	it.position += n
	return Inline{Kind: InlineKindText, Text: rest[:n]}, true
}

func (it *Inlines) All() iter.Seq[Inline] {
	return func(yield func(Inline) bool) {
		for in, ok := it.Next(); ok; in, ok = it.Next() {
			if !yield(in) {
				return
			}
		}
	}
}
