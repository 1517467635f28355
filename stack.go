package weft

// Orientation specifies the main axis of a StackPanel.
type Orientation uint8

const (
	Vertical   Orientation = iota // Children stacked top-to-bottom (default)
	Horizontal                    // Children stacked left-to-right
)

var _ Content = (*StackPanel)(nil)

// StackPanel lays out visible children sequentially along a single axis,
// separated by Spacing. Each child keeps its own desired extent on the main
// axis and receives the panel's full extent on the cross axis.
type StackPanel struct {
	Element
	orientation Orientation
	spacing     float64
}

// NewStackPanel creates a vertical StackPanel with the given element options.
func NewStackPanel(opts ...Option) *StackPanel {
	p := &StackPanel{}
	p.Init(p, opts...)
	return p
}

// Orientation returns the panel's main axis.
func (p *StackPanel) Orientation() Orientation {
	return p.orientation
}

// SetOrientation updates the panel's main axis and invalidates layout.
func (p *StackPanel) SetOrientation(o Orientation) {
	if p.orientation == o {
		return
	}
	p.orientation = o
	p.InvalidateMeasure()
}

// Spacing returns the gap between adjacent visible children.
func (p *StackPanel) Spacing() float64 {
	return p.spacing
}

// SetSpacing updates the gap between adjacent visible children.
// Negative and NaN values clamp to 0.
func (p *StackPanel) SetSpacing(spacing float64) {
	p.spacing = clampSpacing(spacing)
	p.InvalidateMeasure()
}

// MeasureContent measures each visible child with infinite extent on the
// main axis and the available extent on the cross axis, accumulating main
// extents (plus spacing between visible children) and the maximum cross
// extent.
func (p *StackPanel) MeasureContent(available Size) Size {
	var usedMain, maxCross float64
	first := true
	for _, child := range p.children {
		if !child.IsVisible() {
			continue
		}
		if !first {
			usedMain += p.spacing
		}
		if p.orientation == Vertical {
			d := child.Measure(Size{Width: available.Width, Height: Inf})
			usedMain += d.Height
			maxCross = max(maxCross, d.Width)
		} else {
			d := child.Measure(Size{Width: Inf, Height: available.Height})
			usedMain += d.Width
			maxCross = max(maxCross, d.Height)
		}
		first = false
	}
	if p.orientation == Vertical {
		return NewSize(maxCross, usedMain)
	}
	return NewSize(usedMain, maxCross)
}

// ArrangeContent places visible children at an accumulating main-axis
// offset, each with its own desired main extent and the panel's full cross
// extent. Invisible children consume no space and no spacing.
func (p *StackPanel) ArrangeContent(content Rect) {
	offset := 0.0
	first := true
	for _, child := range p.children {
		if !child.IsVisible() {
			continue
		}
		if !first {
			offset += p.spacing
		}
		d := child.DesiredSize()
		if p.orientation == Vertical {
			child.Arrange(NewRect(content.X, content.Y+offset, content.Width, d.Height))
			offset += d.Height
		} else {
			child.Arrange(NewRect(content.X+offset, content.Y, d.Width, content.Height))
			offset += d.Width
		}
		first = false
	}
}
