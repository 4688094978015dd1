package main

import (
	"path/filepath"
	"testing"

	"github.com/iw2rmb/weft/buffer"
	"github.com/iw2rmb/weft/layout"
)

func TestParseWrapMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want layout.WrapMode
	}{
		{in: "none", want: layout.WrapNone},
		{in: "word", want: layout.WrapWord},
		{in: "grapheme", want: layout.WrapGrapheme},
	} {
		got, err := parseWrapMode(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("parseWrapMode(%q): got (%v, %v), want %v", tc.in, got, err, tc.want)
		}
	}
	if _, err := parseWrapMode("soft"); err == nil {
		t.Fatalf("parseWrapMode(soft): expected error")
	}
}

func TestHintDecorations(t *testing.T) {
	deco := hintDecorations(buffer.New("abc\n\nxy"))
	if len(deco.Block) != 1 || deco.Block[0].Line != 0 {
		t.Fatalf("block inlays: got %+v", deco.Block)
	}
	if got := deco.Inline[0]; len(got) != 1 || got[0].Byte != 3 || got[0].Text != "  3B" {
		t.Fatalf("line 0 inlays: got %+v", got)
	}
	if got := deco.Inline[1]; got != nil {
		t.Fatalf("empty line inlays: got %+v", got)
	}
}

func TestRun_Errors(t *testing.T) {
	if err := run([]string{"-wrap", "soft"}); err == nil {
		t.Fatalf("run with bad wrap mode: expected error")
	}
	if err := run([]string{filepath.Join(t.TempDir(), "missing.txt")}); err == nil {
		t.Fatalf("run with missing file: expected error")
	}
	if err := run([]string{"-version"}); err != nil {
		t.Fatalf("run -version: %v", err)
	}
}
