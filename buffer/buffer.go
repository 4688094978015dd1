package buffer

import (
	"fmt"
	"os"
	"strings"
)

// Buffer is a read-only document snapshot. It satisfies layout.Text.
type Buffer struct {
	lines []string
}

// New splits text into lines at '\n'. A trailing '\r' on each line is
// dropped. The result always has at least one line.
func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

// ReadFile loads the document at path.
func ReadFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return New(string(data)), nil
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns line i without its terminator. It panics if i is out of range.
func (b *Buffer) Line(i int) string { return b.lines[i] }

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

func splitLines(text string) []string {
	parts := strings.Split(text, "\n")
	for i, s := range parts {
		parts[i] = strings.TrimSuffix(s, "\r")
	}
	return parts
}
