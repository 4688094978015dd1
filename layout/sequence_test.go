package layout

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInlines_WidgetSplitsText(t *testing.T) {
	w := InlineWidget{ID: 1, ColumnCount: 2}
	got := collectInlines(newInlines("abcdef", []InlineInlay{WidgetInlay(3, w)}))
	want := []Inline{
		{Kind: InlineKindText, Text: "abc"},
		{Kind: InlineKindWidget, IsInlay: true, Widget: w},
		{Kind: InlineKindText, Text: "def"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("inlines mismatch (-want +got):\n%s", diff)
	}
}

func TestInlines_AnchorsAtStartEndAndSameOffset(t *testing.T) {
	got := collectInlines(newInlines("ab", []InlineInlay{
		TextInlay(0, "<"),
		TextInlay(1, "x"),
		TextInlay(1, "y"),
		TextInlay(2, ">"),
		TextInlay(9, "dropped"),
	}))
	want := []Inline{
		{Kind: InlineKindText, IsInlay: true, Text: "<"},
		{Kind: InlineKindText, Text: "a"},
		{Kind: InlineKindText, IsInlay: true, Text: "x"},
		{Kind: InlineKindText, IsInlay: true, Text: "y"},
		{Kind: InlineKindText, Text: "b"},
		{Kind: InlineKindText, IsInlay: true, Text: ">"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("inlines mismatch (-want +got):\n%s", diff)
	}
}

func TestInlines_ReconstructsLineText(t *testing.T) {
	cases := []struct {
		text   string
		inlays []InlineInlay
	}{
		{text: ""},
		{text: "plain"},
		{text: "", inlays: []InlineInlay{TextInlay(0, "only")}},
		{text: "a界b", inlays: []InlineInlay{TextInlay(1, "|"), TextInlay(4, "|"), WidgetInlay(5, InlineWidget{ColumnCount: 1})}},
		{text: "func main() {}", inlays: []InlineInlay{TextInlay(4, " "), TextInlay(9, "/*args*/"), TextInlay(14, " // end")}},
	}
	for _, tc := range cases {
		var sb strings.Builder
		for in := range newInlines(tc.text, tc.inlays).All() {
			if !in.IsInlay {
				sb.WriteString(in.Text)
			}
		}
		if got := sb.String(); got != tc.text {
			t.Fatalf("reconstructed %q, want %q", got, tc.text)
		}
	}
}

func TestWrappeds_SplitsRunsAtWraps(t *testing.T) {
	inlines := newInlines("hello world", nil)
	got := collectWrappeds(newWrappeds(inlines, []int{5}))
	want := []Wrapped{
		{Kind: WrappedKindText, Text: "hello"},
		{Kind: WrappedKindWrap},
		{Kind: WrappedKindText, Text: " world"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("wrappeds mismatch (-want +got):\n%s", diff)
	}
}

func TestWrappeds_WrapsAtInlayBoundariesAndInsideInlays(t *testing.T) {
	w := InlineWidget{ID: 2, ColumnCount: 4}
	inlines := newInlines("abcd", []InlineInlay{TextInlay(2, "XYZ"), WidgetInlay(4, w)})
	// Stream positions: a=0 b=1 X=2 Y=3 Z=4 c=5 d=6 widget=7.
	got := collectWrappeds(newWrappeds(inlines, []int{2, 3, 7}))
	want := []Wrapped{
		{Kind: WrappedKindText, Text: "ab"},
		{Kind: WrappedKindWrap},
		{Kind: WrappedKindText, IsInlay: true, Text: "X"},
		{Kind: WrappedKindWrap},
		{Kind: WrappedKindText, IsInlay: true, Text: "YZ"},
		{Kind: WrappedKindText, Text: "cd"},
		{Kind: WrappedKindWrap},
		{Kind: WrappedKindWidget, IsInlay: true, Widget: w},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("wrappeds mismatch (-want +got):\n%s", diff)
	}
}

func TestWrappeds_OneMarkerPerWrap(t *testing.T) {
	l, _ := measured([]string{"aa bb cc dd ee ff gg hh", "x", "\tindented text that wraps"}, nil,
		MeasureConfig{TabColumnCount: 4, WrapColumn: 6, WrapMode: WrapWord})
	for line := range l.Lines(0, l.LineCount()).All() {
		markers := 0
		for w := range line.Wrappeds().All() {
			if w.Kind == WrappedKindWrap {
				markers++
			}
		}
		if got, want := markers+1, line.RowCount(); got != want {
			t.Fatalf("line %d: %d rows from markers, want %d", line.Index(), got, want)
		}
	}
}

func TestBlocks_WidgetInsertedBeforeLine(t *testing.T) {
	widget := BlockWidget{ID: 9, Height: 1}
	l, _ := measured([]string{"a", "b", "c"}, &Decorations{Block: []BlockInlay{{Line: 1, Widget: widget}}}, MeasureConfig{})

	var got []string
	for b := range l.Blocks(0, 3).All() {
		got = append(got, blockLabel(b))
	}
	want := []string{"line 0", "widget 9", "line 1", "line 2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestBlocks_RangeSkipsEarlierWidgetsAndKeepsTrailing(t *testing.T) {
	deco := &Decorations{Block: []BlockInlay{
		{Line: 0, Widget: BlockWidget{ID: 1, Height: 1}},
		{Line: 1, Widget: BlockWidget{ID: 2, Height: 1}},
		{Line: 2, Widget: BlockWidget{ID: 3, Height: 1}},
		{Line: 3, Widget: BlockWidget{ID: 4, Height: 1}},
	}}
	l, _ := measured([]string{"a", "b", "c"}, deco, MeasureConfig{})

	var got []string
	for b := range l.Blocks(2, 99).All() {
		got = append(got, blockLabel(b))
	}
	want := []string{"widget 3", "line 2", "widget 4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func blockLabel(b Block) string {
	switch b.Kind {
	case BlockKindWidget:
		return "widget " + strconv.Itoa(b.Widget.ID)
	default:
		return "line " + strconv.Itoa(b.Line.Index())
	}
}
