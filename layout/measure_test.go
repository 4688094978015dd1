package layout

import "testing"

func TestMeasure_WordWrapRowsAndColumns(t *testing.T) {
	l, _ := measured([]string{"hello world"}, nil, MeasureConfig{WrapColumn: 5, WrapMode: WrapWord})
	line := l.Line(0)
	if got, want := line.RowCount(), 2; got != want {
		t.Fatalf("row count: got %d, want %d", got, want)
	}
	// "hello " hangs one column past the wrap column.
	if got, want := line.ColumnCount(), 6; got != want {
		t.Fatalf("column count: got %d, want %d", got, want)
	}
}

func TestMeasure_RowCountMatchesWraps(t *testing.T) {
	text := []string{"", "a", "a b c d e f g h", "\tx y z", "longwordlongword"}
	for _, mode := range []WrapMode{WrapNone, WrapWord, WrapGrapheme} {
		l, g := measured(text, nil, MeasureConfig{WrapColumn: 3, WrapMode: mode})
		for i := range text {
			if got, want := l.Line(i).RowCount(), len(g.WrapData[i].Wraps)+1; got != want {
				t.Fatalf("%v line %d: row count %d, want %d", mode, i, got, want)
			}
		}
	}
}

func TestMeasure_InvalidateRecomputesFromLine(t *testing.T) {
	text := textLines{"aaaa", "bb", "cc"}
	g := NewGeometry(len(text))
	g.Measure(text, nil, nil, MeasureConfig{WrapColumn: 2, WrapMode: WrapGrapheme})
	if got, want := g.Y, []float64{0, 2, 3, 4}; !equalFloats(got, want) {
		t.Fatalf("Y: got %v, want %v", got, want)
	}

	text[1] = "bbbbbb"
	g.Invalidate(1)
	if got, want := len(g.Y), 2; got != want {
		t.Fatalf("len(Y) after invalidate: got %d, want %d", got, want)
	}
	g.Measure(text, nil, nil, MeasureConfig{WrapColumn: 2, WrapMode: WrapGrapheme})
	if got, want := g.Y, []float64{0, 2, 5, 6}; !equalFloats(got, want) {
		t.Fatalf("Y after re-measure: got %v, want %v", got, want)
	}
}

func TestMeasure_FoldScalesHeightAndUnfoldRestores(t *testing.T) {
	text := textLines{"a", "b", "c"}
	g := NewGeometry(len(text))
	g.Measure(text, nil, nil, MeasureConfig{})

	g.Fold(1, 0, 0.5)
	g.Measure(text, nil, nil, MeasureConfig{})
	if got, want := g.Y, []float64{0, 1, 1.5, 2.5}; !equalFloats(got, want) {
		t.Fatalf("Y after fold: got %v, want %v", got, want)
	}

	g.Unfold(1)
	g.Measure(text, nil, nil, MeasureConfig{})
	if got, want := g.Y, []float64{0, 1, 2, 3}; !equalFloats(got, want) {
		t.Fatalf("Y after unfold: got %v, want %v", got, want)
	}
}

func TestMeasure_ResizeFollowsLineCount(t *testing.T) {
	g := NewGeometry(2)
	g.Measure(textLines{"a", "b"}, nil, nil, MeasureConfig{})

	g.Measure(textLines{"a", "b", "c", "d"}, nil, nil, MeasureConfig{})
	if got, want := g.LineCount(), 4; got != want {
		t.Fatalf("line count after growth: got %d, want %d", got, want)
	}
	if got, want := g.Y, []float64{0, 1, 2, 3, 4}; !equalFloats(got, want) {
		t.Fatalf("Y after growth: got %v, want %v", got, want)
	}

	g.Measure(textLines{"a"}, nil, nil, MeasureConfig{})
	if got, want := g.Y, []float64{0, 1}; !equalFloats(got, want) {
		t.Fatalf("Y after shrink: got %v, want %v", got, want)
	}
}

func TestMeasure_InvalidateYPicksUpBlockWidgets(t *testing.T) {
	text := textLines{"a", "b"}
	deco := &Decorations{}
	g := NewGeometry(2)
	g.Measure(text, nil, deco, MeasureConfig{})

	deco.Block = []BlockInlay{{Line: 1, Widget: BlockWidget{Height: 3}}}
	g.InvalidateY(1)
	g.Measure(text, nil, deco, MeasureConfig{})
	if got, want := g.Y, []float64{0, 4, 5}; !equalFloats(got, want) {
		t.Fatalf("Y with block widget: got %v, want %v", got, want)
	}
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
