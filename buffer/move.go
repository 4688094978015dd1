package buffer

import "github.com/iw2rmb/weft/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move returns the position reached from p by m. Vertical motion depends on
// wrapping and is left to the layout.
func (b *Buffer) Move(p Pos, m Move) Pos {
	p = b.Clamp(p)
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Line]
	lastLine := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if p.Byte > 0 {
			return Pos{Line: p.Line, Byte: p.Byte - len(grapheme.Last(line[:p.Byte]))}
		}
		if p.Line == 0 {
			return p
		}
		return Pos{Line: p.Line - 1, Byte: len(b.lines[p.Line-1])}
	case DirRight:
		if p.Byte < len(line) {
			return Pos{Line: p.Line, Byte: p.Byte + len(grapheme.First(line[p.Byte:]))}
		}
		if p.Line == lastLine {
			return p
		}
		return Pos{Line: p.Line + 1, Byte: 0}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Line]

	switch dir {
	case DirLeft:
		return Pos{Line: p.Line, Byte: prevWordBoundary(line, p.Byte)}
	case DirRight:
		return Pos{Line: p.Line, Byte: nextWordBoundary(line, p.Byte)}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome:
		return Pos{Line: p.Line}
	case DirEnd:
		return Pos{Line: p.Line, Byte: len(b.lines[p.Line])}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastLine := len(b.lines) - 1

	switch dir {
	case DirHome, DirLeft:
		return Pos{}
	case DirEnd, DirRight:
		return Pos{Line: lastLine, Byte: len(b.lines[lastLine])}
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line string, at int) int {
	for at > 0 && grapheme.IsSpace(grapheme.Last(line[:at])) {
		at -= len(grapheme.Last(line[:at]))
	}
	for at > 0 && !grapheme.IsSpace(grapheme.Last(line[:at])) {
		at -= len(grapheme.Last(line[:at]))
	}
	return at
}

func nextWordBoundary(line string, at int) int {
	for at < len(line) && grapheme.IsSpace(grapheme.First(line[at:])) {
		at += len(grapheme.First(line[at:]))
	}
	for at < len(line) && !grapheme.IsSpace(grapheme.First(line[at:])) {
		at += len(grapheme.First(line[at:]))
	}
	return at
}
