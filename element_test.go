package weft

import (
	"math"
	"testing"
)

// recordingContent counts MeasureContent calls and records the constraints
// it was handed, returning a fixed content size.
type recordingContent struct {
	Element
	size        Size
	measures    int
	constraints []Size
}

func newRecording(size Size, opts ...Option) *recordingContent {
	r := &recordingContent{size: size}
	r.Init(r, opts...)
	return r
}

func (r *recordingContent) MeasureContent(available Size) Size {
	r.measures++
	r.constraints = append(r.constraints, available)
	return r.size
}

func TestElement_Measure_LeafDesiredSize(t *testing.T) {
	type tc struct {
		opts      []Option
		available Size
		want      Size
	}

	tests := map[string]tc{
		"bare leaf desires nothing": {
			available: NewSize(100, 100),
			want:      Size{},
		},
		"explicit size": {
			opts:      []Option{WithSize(30, 20)},
			available: NewSize(100, 100),
			want:      NewSize(30, 20),
		},
		"explicit size under infinite constraint": {
			opts:      []Option{WithSize(30, 20)},
			available: InfiniteSize(),
			want:      NewSize(30, 20),
		},
		"explicit size ignores smaller constraint": {
			opts:      []Option{WithSize(30, 20)},
			available: NewSize(10, 10),
			want:      NewSize(30, 20),
		},
		"margin inflates desired size": {
			opts:      []Option{WithSize(30, 20), WithMarginAll(5)},
			available: NewSize(100, 100),
			want:      NewSize(40, 30),
		},
		"min size raises desired": {
			opts:      []Option{WithMinSize(25, 15)},
			available: NewSize(100, 100),
			want:      NewSize(25, 15),
		},
		"max size caps explicit": {
			opts:      []Option{WithSize(300, 200), WithMaxSize(50, 40)},
			available: NewSize(100, 100),
			want:      NewSize(50, 40),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := New(tt.opts...)
			if got := e.Measure(tt.available); got != tt.want {
				t.Errorf("Measure(%v) = %v, want %v", tt.available, got, tt.want)
			}
		})
	}
}

func TestElement_Measure_Idempotent(t *testing.T) {
	r := newRecording(NewSize(50, 40))
	available := NewSize(200, 100)

	first := r.Measure(available)
	second := r.Measure(available)

	if first != second {
		t.Errorf("repeated Measure = %v then %v, want identical", first, second)
	}
	if r.measures != 1 {
		t.Errorf("MeasureContent called %d times, want 1 (skip-on-clean)", r.measures)
	}
}

func TestElement_Measure_ChangedConstraintRemeasures(t *testing.T) {
	r := newRecording(NewSize(50, 40))

	r.Measure(NewSize(200, 100))
	r.Measure(NewSize(300, 100))

	if r.measures != 2 {
		t.Errorf("MeasureContent called %d times, want 2", r.measures)
	}
}

func TestElement_Measure_InvalidateForcesRemeasure(t *testing.T) {
	r := newRecording(NewSize(50, 40))
	available := NewSize(200, 100)

	r.Measure(available)
	r.InvalidateMeasure()
	r.Measure(available)

	if r.measures != 2 {
		t.Errorf("MeasureContent called %d times, want 2 after invalidation", r.measures)
	}
}

func TestElement_Measure_MarginDeflatesConstraint(t *testing.T) {
	r := newRecording(NewSize(10, 10), WithMarginAll(5))

	r.Measure(NewSize(100, 80))

	if len(r.constraints) != 1 {
		t.Fatalf("MeasureContent called %d times, want 1", len(r.constraints))
	}
	if got, want := r.constraints[0], NewSize(90, 70); got != want {
		t.Errorf("content constraint = %v, want %v", got, want)
	}
}

func TestElement_Measure_NonNegativity(t *testing.T) {
	type tc struct {
		available Size
	}

	tests := map[string]tc{
		"zero available":     {available: Size{}},
		"negative available": {available: Size{Width: -50, Height: -10}},
		"NaN available":      {available: Size{Width: math.NaN(), Height: math.NaN()}},
		"infinite available": {available: InfiniteSize()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := New(WithSize(30, 20), WithMarginAll(4))
			d := e.Measure(tt.available)
			if d.Width < 0 || d.Height < 0 {
				t.Errorf("DesiredSize = %v, want non-negative dimensions", d)
			}
			if math.IsNaN(d.Width) || math.IsNaN(d.Height) {
				t.Errorf("DesiredSize = %v, want non-NaN dimensions", d)
			}

			e.Arrange(NewRect(0, 0, tt.available.Width, tt.available.Height))
			b := e.Bounds()
			if b.Width < 0 || b.Height < 0 {
				t.Errorf("Bounds = %+v, want non-negative dimensions", b)
			}
		})
	}
}

func TestElement_Measure_InvisibleDesiresNothing(t *testing.T) {
	e := New(WithSize(30, 20), WithHidden())

	if got := e.Measure(NewSize(100, 100)); got != (Size{}) {
		t.Errorf("invisible Measure = %v, want zero size", got)
	}
}

func TestElement_Measure_InfiniteContentClampsToZero(t *testing.T) {
	r := newRecording(Size{Width: Inf, Height: 10})

	d := r.Measure(InfiniteSize())

	if d.Width != 0 {
		t.Errorf("DesiredSize.Width = %v, want 0 for infinite content size", d.Width)
	}
	if d.Height != 10 {
		t.Errorf("DesiredSize.Height = %v, want 10", d.Height)
	}
}

func TestElement_Arrange_SetsBounds(t *testing.T) {
	e := New(WithSize(30, 20))
	e.Measure(NewSize(100, 100))

	e.Arrange(NewRect(10, 15, 60, 40))

	if got, want := e.Bounds(), NewRect(10, 15, 60, 40); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestElement_Arrange_DeflatesMargin(t *testing.T) {
	e := New(WithSize(30, 20), WithMargin(ThicknessLTRB(5, 10, 15, 20)))
	e.Measure(NewSize(100, 100))

	e.Arrange(NewRect(0, 0, 100, 100))

	if got, want := e.Bounds(), NewRect(5, 10, 80, 70); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestElement_Arrange_BeforeMeasurePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Arrange before Measure should panic")
		}
	}()

	New(WithSize(10, 10)).Arrange(NewRect(0, 0, 50, 50))
}

func TestElement_Arrange_InvisibleClearsBounds(t *testing.T) {
	e := New(WithSize(30, 20))
	e.Measure(NewSize(100, 100))
	e.Arrange(NewRect(0, 0, 50, 50))

	e.SetVisible(false)
	e.Arrange(NewRect(0, 0, 50, 50))

	if got := e.Bounds(); got != (Rect{}) {
		t.Errorf("invisible Bounds = %+v, want zero rect", got)
	}
}
