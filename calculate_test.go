package weft

import "testing"

func TestCalculate_FiniteAvailableFillsRoot(t *testing.T) {
	root := NewStackPanel()
	root.AddChild(New(WithSize(30, 20)))

	Calculate(root, NewSize(200, 150))

	if got := root.Bounds(); got != NewRect(0, 0, 200, 150) {
		t.Errorf("root.Bounds() = %+v, want the full available extent", got)
	}
}

func TestCalculate_InfiniteAxisUsesDesiredExtent(t *testing.T) {
	root := NewStackPanel()
	root.SetSpacing(5)
	root.AddChild(New(WithSize(30, 20)), New(WithSize(40, 30)))

	Calculate(root, Size{Width: 200, Height: Inf})

	// Width is pinned by the constraint; height collapses to the content.
	if got := root.Bounds(); got != NewRect(0, 0, 200, 55) {
		t.Errorf("root.Bounds() = %+v, want {0 0 200 55}", got)
	}
}

func TestCalculate_NestedPanels(t *testing.T) {
	root := NewDockPanel()
	header := New(WithHeight(30))
	SetDock(header, DockTop)

	body := NewGrid()
	body.AddColumns("100,*")
	sidebar := New()
	SetColumn(sidebar, 0)
	main := New()
	SetColumn(main, 1)
	body.AddChild(sidebar, main)

	root.AddChild(header, body)

	Calculate(root, NewSize(400, 300))

	if got := header.Bounds(); got != NewRect(0, 0, 400, 30) {
		t.Errorf("header.Bounds() = %+v, want {0 0 400 30}", got)
	}
	if got := body.Bounds(); got != NewRect(0, 30, 400, 270) {
		t.Errorf("body.Bounds() = %+v, want {0 30 400 270}", got)
	}
	if got := sidebar.Bounds(); got != NewRect(0, 30, 100, 270) {
		t.Errorf("sidebar.Bounds() = %+v, want {0 30 100 270}", got)
	}
	if got := main.Bounds(); got != NewRect(100, 30, 300, 270) {
		t.Errorf("main.Bounds() = %+v, want {100 30 300 270}", got)
	}
}

func TestCalculate_RecomputesAfterMutation(t *testing.T) {
	root := NewDockPanel()
	header := New(WithHeight(30))
	SetDock(header, DockTop)
	body := New()
	root.AddChild(header, body)

	Calculate(root, NewSize(400, 300))
	if got := body.Bounds(); got != NewRect(0, 30, 400, 270) {
		t.Fatalf("body.Bounds() = %+v, want {0 30 400 270}", got)
	}

	header.SetHeight(50)
	Calculate(root, NewSize(400, 300))

	if got := body.Bounds(); got != NewRect(0, 50, 400, 250) {
		t.Errorf("body.Bounds() after mutation = %+v, want {0 50 400 250}", got)
	}
	if root.NeedsMeasure() || root.NeedsArrange() {
		t.Error("tree should be clean after recalculation")
	}
}

func TestCalculate_MarginsComposeThroughNesting(t *testing.T) {
	root := NewStackPanel()
	inner := NewStackPanel(WithMarginAll(10))
	leaf := New(WithSize(30, 20), WithMarginAll(5))
	inner.AddChild(leaf)
	root.AddChild(inner)

	Calculate(root, NewSize(200, 200))

	// Inner desired: leaf 30x20 inflated by 5 on each side = 40x30,
	// inflated again by the inner panel's own margin = 60x50.
	if got := root.DesiredSize(); got != NewSize(60, 50) {
		t.Errorf("root.DesiredSize() = %v, want {60 50}", got)
	}
	// Inner spans the root's width minus its margin; the leaf sits inside
	// both margins.
	if got := inner.Bounds(); got != NewRect(10, 10, 180, 30) {
		t.Errorf("inner.Bounds() = %+v, want {10 10 180 30}", got)
	}
	if got := leaf.Bounds(); got != NewRect(15, 15, 170, 20) {
		t.Errorf("leaf.Bounds() = %+v, want {15 15 170 20}", got)
	}
}

func TestCalculate_NilRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Calculate(nil) should panic")
		}
	}()

	Calculate(nil, NewSize(100, 100))
}
