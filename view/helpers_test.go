package view

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func renderer(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	r.SetHasDarkBackground(true)
	return r
}

// plainStyle renders without escape sequences.
func plainStyle() Style {
	r := renderer(termenv.Ascii)
	return Style{
		Gutter:        r.NewStyle(),
		LineNum:       r.NewStyle(),
		LineNumActive: r.NewStyle(),
		Text:          r.NewStyle(),
		Inlay:         r.NewStyle(),
		Widget:        r.NewStyle(),
		BlockWidget:   r.NewStyle(),
		Cursor:        r.NewStyle().Reverse(true),
	}
}

func mustNew(t *testing.T, cfg Config) Model {
	t.Helper()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func viewRows(m Model) []string {
	rows := strings.Split(m.View(), "\n")
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], " ")
	}
	return rows
}
