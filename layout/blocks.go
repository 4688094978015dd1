package layout

import "iter"

type BlockKind int

const (
	BlockKindLine BlockKind = iota
	BlockKindWidget
)

// Block is either a laid out line or a block widget placed between lines.
type Block struct {
	Kind   BlockKind
	Line   Line
	Widget BlockWidget
}

// Blocks merges a range of lines with the block inlay table. A widget
// anchored at line i is yielded before line i.
type Blocks struct {
	lines    *Lines
	inlays   sideTable[BlockInlay]
	position int
}

func (it *Blocks) Next() (Block, bool) {
	if inlay, ok := it.inlays.takeAt(it.position); ok {
		return Block{Kind: BlockKindWidget, Widget: inlay.Widget}, true
	}
	line, ok := it.lines.Next()
	if !ok {
		return Block{}, false
	}
	it.position++
	return Block{Kind: BlockKindLine, Line: line}, true
}

func (it *Blocks) All() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for b, ok := it.Next(); ok; b, ok = it.Next() {
			if !yield(b) {
				return
			}
		}
	}
}
