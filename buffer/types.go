package buffer

import (
	"cmp"

	"github.com/iw2rmb/weft/internal/grapheme"
)

// Pos points into the document by (line, byte offset).
type Pos struct {
	Line int
	Byte int
}

func ComparePos(a, b Pos) int {
	if c := cmp.Compare(a.Line, b.Line); c != 0 {
		return c
	}
	return cmp.Compare(a.Byte, b.Byte)
}

// Clamp returns the nearest valid position to p: the line is clamped to the
// document and the byte offset is moved back to the grapheme boundary at or
// before it.
func (b *Buffer) Clamp(p Pos) Pos {
	p.Line = clampInt(p.Line, 0, len(b.lines)-1)
	line := b.lines[p.Line]
	if p.Byte <= 0 {
		p.Byte = 0
		return p
	}
	if p.Byte >= len(line) {
		p.Byte = len(line)
		return p
	}
	at := 0
	for _, c := range grapheme.Split(line) {
		if at+len(c) > p.Byte {
			break
		}
		at += len(c)
	}
	p.Byte = at
	return p
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
