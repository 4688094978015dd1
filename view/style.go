package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/weft/layout"
)

// Style controls the view's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	// Text styles document graphemes whose token kind has no entry in
	// Tokens.
	Text   lipgloss.Style
	Tokens map[layout.TokenKind]lipgloss.Style

	Inlay       lipgloss.Style
	Widget      lipgloss.Style
	BlockWidget lipgloss.Style
	Cursor      lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Tokens: map[layout.TokenKind]lipgloss.Style{
			layout.TokenComment:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			layout.TokenKeyword:     lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
			layout.TokenString:      lipgloss.NewStyle().Foreground(lipgloss.Color("150")),
			layout.TokenNumber:      lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
			layout.TokenOperator:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			layout.TokenPunctuation: lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		},
		Inlay:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
		Widget:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		BlockWidget: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
	}
}

func (s Style) token(kind layout.TokenKind) lipgloss.Style {
	if st, ok := s.Tokens[kind]; ok {
		return st
	}
	return s.Text
}
