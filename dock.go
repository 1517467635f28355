package weft

var _ Content = (*DockPanel)(nil)

// DockPanel lays out children by peeling slices off the edges of its
// content rectangle. Each child's [Dock] attachment (default DockLeft)
// chooses the edge; when LastChildFill is on (the default), the last
// visible child receives whatever rectangle remains.
type DockPanel struct {
	Element
	lastChildFill bool
	spacing       float64
}

// NewDockPanel creates a DockPanel with LastChildFill enabled.
func NewDockPanel(opts ...Option) *DockPanel {
	p := &DockPanel{lastChildFill: true}
	p.Init(p, opts...)
	return p
}

// LastChildFill returns whether the last visible child fills the remaining
// space instead of docking.
func (p *DockPanel) LastChildFill() bool {
	return p.lastChildFill
}

// SetLastChildFill updates the fill behavior and invalidates layout.
func (p *DockPanel) SetLastChildFill(fill bool) {
	if p.lastChildFill == fill {
		return
	}
	p.lastChildFill = fill
	p.InvalidateMeasure()
}

// Spacing returns the gap left after each docked child.
func (p *DockPanel) Spacing() float64 {
	return p.spacing
}

// SetSpacing updates the gap left after each docked child.
// Negative and NaN values clamp to 0.
func (p *DockPanel) SetSpacing(spacing float64) {
	p.spacing = clampSpacing(spacing)
	p.InvalidateMeasure()
}

// lastVisibleIndex returns the index of the last visible child, -1 if none.
func (p *DockPanel) lastVisibleIndex() int {
	for i := len(p.children) - 1; i >= 0; i-- {
		if p.children[i].IsVisible() {
			return i
		}
	}
	return -1
}

// MeasureContent measures children in declaration order against a shrinking
// remaining size.
//
// Edge-docked children are measured twice: once with infinite extent on the
// docked axis to learn their natural size, then again with that size clamped
// to the remaining extent, so size-dependent content (wrapping text, for
// example) reacts to the space it will actually get rather than to infinity.
// The fill child is measured last against whatever remains.
func (p *DockPanel) MeasureContent(available Size) Size {
	last := p.lastVisibleIndex()
	if last < 0 {
		return Size{}
	}

	remW, remH := available.Width, available.Height
	var accW, accH float64 // extent consumed along each axis by docked children
	var desW, desH float64 // running desired-size maxima

	for i, child := range p.children {
		if !child.IsVisible() {
			continue
		}

		if p.lastChildFill && i == last {
			d := child.Measure(NewSize(remW, remH))
			desW = max(desW, accW+d.Width)
			desH = max(desH, accH+d.Height)
			continue
		}

		sp := 0.0
		if i != last {
			sp = p.spacing
		}

		switch GetDock(child) {
		case DockLeft, DockRight:
			child.Measure(Size{Width: Inf, Height: remH})
			w := min(child.DesiredSize().Width, remW)
			d := child.Measure(NewSize(w, remH))
			desH = max(desH, accH+d.Height)
			accW += w + sp
			remW = max(0, remW-w-sp)
			desW = max(desW, accW)
		case DockTop, DockBottom:
			child.Measure(Size{Width: remW, Height: Inf})
			h := min(child.DesiredSize().Height, remH)
			d := child.Measure(NewSize(remW, h))
			desW = max(desW, accW+d.Width)
			accH += h + sp
			remH = max(0, remH-h-sp)
			desH = max(desH, accH)
		}
	}

	return NewSize(desW, desH)
}

// ArrangeContent re-walks children in the same order, maintaining four
// shrinking edges. Each docked child gets min(desired, remaining) on its
// axis and the full remaining cross extent; the fill child gets the
// leftover rectangle.
func (p *DockPanel) ArrangeContent(content Rect) {
	last := p.lastVisibleIndex()
	if last < 0 {
		return
	}

	left, top := content.X, content.Y
	right, bottom := content.Right(), content.Bottom()

	for i, child := range p.children {
		if !child.IsVisible() {
			continue
		}

		remW := max(0, right-left)
		remH := max(0, bottom-top)

		if p.lastChildFill && i == last {
			child.Arrange(NewRect(left, top, remW, remH))
			continue
		}

		sp := 0.0
		if i != last {
			sp = p.spacing
		}
		d := child.DesiredSize()

		switch GetDock(child) {
		case DockLeft:
			w := min(d.Width, remW)
			child.Arrange(NewRect(left, top, w, remH))
			left += w + sp
		case DockRight:
			w := min(d.Width, remW)
			child.Arrange(NewRect(right-w, top, w, remH))
			right -= w + sp
		case DockTop:
			h := min(d.Height, remH)
			child.Arrange(NewRect(left, top, remW, h))
			top += h + sp
		case DockBottom:
			h := min(d.Height, remH)
			child.Arrange(NewRect(left, bottom-h, remW, h))
			bottom -= h + sp
		}
	}
}
