// Package syntax splits document lines into layout tokens using Chroma
// lexers.
package syntax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/iw2rmb/weft/layout"
)

// ErrUnknownLanguage is returned when no lexer matches the requested name.
var ErrUnknownLanguage = errors.New("syntax: unknown language")

// Detect returns the lexer name matching filename, or "" if none does.
func Detect(filename string) string {
	lex := lexers.Match(filename)
	if lex == nil {
		return ""
	}
	return lex.Config().Name
}

// Tokenize returns one token slice per line. The tokens of each line cover
// its bytes exactly. An empty language yields plain tokens.
func Tokenize(language string, lines []string) ([][]layout.Token, error) {
	if language == "" {
		return plain(lines), nil
	}
	lex := lexers.Get(language)
	if lex == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
	lex = chroma.Coalesce(lex)

	it, err := lex.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", language, err)
	}

	out := make([][]layout.Token, len(lines))
	line := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		kind := kindOf(tok.Type)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				line++
			}
			if line >= len(lines) {
				break
			}
			k := kind
			if k == layout.TokenUnknown && strings.TrimSpace(part) == "" {
				k = layout.TokenWhitespace
			}
			out[line] = appendToken(out[line], len(part), k)
		}
	}

	// Lexers may normalize input; keep coverage exact regardless.
	for i, toks := range out {
		if covered(toks) != len(lines[i]) {
			out[i] = plainLine(lines[i])
		}
	}
	return out, nil
}

func appendToken(toks []layout.Token, n int, kind layout.TokenKind) []layout.Token {
	if n == 0 {
		return toks
	}
	if last := len(toks) - 1; last >= 0 && toks[last].Kind == kind {
		toks[last].Len += n
		return toks
	}
	return append(toks, layout.Token{Len: n, Kind: kind})
}

func kindOf(t chroma.TokenType) layout.TokenKind {
	switch t.SubCategory() {
	case chroma.LiteralString:
		return layout.TokenString
	case chroma.LiteralNumber:
		return layout.TokenNumber
	}
	switch t.Category() {
	case chroma.Keyword:
		return layout.TokenKeyword
	case chroma.Name:
		return layout.TokenIdentifier
	case chroma.Comment:
		return layout.TokenComment
	case chroma.Operator:
		return layout.TokenOperator
	case chroma.Punctuation:
		return layout.TokenPunctuation
	}
	if t == chroma.TextWhitespace {
		return layout.TokenWhitespace
	}
	return layout.TokenUnknown
}

func plain(lines []string) [][]layout.Token {
	out := make([][]layout.Token, len(lines))
	for i, line := range lines {
		out[i] = plainLine(line)
	}
	return out
}

func plainLine(line string) []layout.Token {
	if line == "" {
		return nil
	}
	return []layout.Token{{Len: len(line), Kind: layout.TokenUnknown}}
}

func covered(toks []layout.Token) int {
	n := 0
	for _, t := range toks {
		n += t.Len
	}
	return n
}
