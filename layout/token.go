package layout

type TokenKind int

const (
	TokenUnknown TokenKind = iota
	TokenWhitespace
	TokenComment
	TokenKeyword
	TokenIdentifier
	TokenString
	TokenNumber
	TokenOperator
	TokenPunctuation
)

// Token is a lexical span over a line's bytes. Tokens of one line are
// contiguous and ordered; only Len matters to the layout.
type Token struct {
	Len  int
	Kind TokenKind
}

// Text is the read-only line store a Layout borrows.
type Text interface {
	LineCount() int
	Line(i int) string
}
