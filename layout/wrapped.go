package layout

import "iter"

type WrappedKind int

const (
	WrappedKindText WrappedKind = iota
	WrappedKindWidget
	WrappedKindWrap
)

// Wrapped is one item of a line's inline stream cut at its wrap positions.
type Wrapped struct {
	Kind    WrappedKind
	IsInlay bool
	Text    string
	Widget  InlineWidget
}

// Wrappeds yields the items of an Inlines sequence with a WrappedKindWrap
// marker at every wrap position. Text runs straddling a wrap are split;
// widgets are never split.
type Wrappeds struct {
	inlines  *Inlines
	wraps    sideTable[int]
	position int

	pending    Inline
	hasPending bool
}

func newWrappeds(inlines *Inlines, wraps []int) *Wrappeds {
	return &Wrappeds{
		inlines: inlines,
		wraps:   newSideTable(wraps, identity),
	}
}

func (it *Wrappeds) Next() (Wrapped, bool) {
	if _, ok := it.wraps.takeAt(it.position); ok {
		return Wrapped{Kind: WrappedKindWrap}, true
	}
	if !it.hasPending {
		in, ok := it.inlines.Next()
		if !ok {
			return Wrapped{}, false
		}
		it.pending, it.hasPending = in, true
	}

	in := it.pending
	if in.Kind == InlineKindWidget {
		it.hasPending = false
		it.position++
		return Wrapped{Kind: WrappedKindWidget, IsInlay: true, Widget: in.Widget}, true
	}

	n := it.wraps.span(it.position, len(in.Text))
	it.position += n
	if n < len(in.Text) {
		it.pending.Text = in.Text[n:]
	} else {
		it.hasPending = false
	}
	return Wrapped{Kind: WrappedKindText, IsInlay: in.IsInlay, Text: in.Text[:n]}, true
}

func (it *Wrappeds) All() iter.Seq[Wrapped] {
	return func(yield func(Wrapped) bool) {
		for w, ok := it.Next(); ok; w, ok = it.Next() {
			if !yield(w) {
				return
			}
		}
	}
}
