package weft

// IsVisible returns whether this element participates in layout.
// Invisible elements are fully skipped by containers: they are not
// measured, reserve no space, and receive no spacing.
func (e *Element) IsVisible() bool {
	return e.visible
}

// SetVisible shows or hides the element and invalidates layout.
func (e *Element) SetVisible(visible bool) {
	if e.visible == visible {
		return
	}
	e.visible = visible
	e.InvalidateMeasure()
}

// Margin returns the element's outer insets.
func (e *Element) Margin() Thickness {
	return e.margin
}

// SetMargin updates the element's outer insets and invalidates layout.
func (e *Element) SetMargin(margin Thickness) {
	e.margin = margin
	e.InvalidateMeasure()
}

// SetWidth sets an explicit width in device-independent pixels.
func (e *Element) SetWidth(width float64) {
	e.width = width
	e.widthSet = true
	e.InvalidateMeasure()
}

// SetHeight sets an explicit height in device-independent pixels.
func (e *Element) SetHeight(height float64) {
	e.height = height
	e.heightSet = true
	e.InvalidateMeasure()
}

// SetSize sets an explicit width and height.
func (e *Element) SetSize(width, height float64) {
	e.width, e.height = width, height
	e.widthSet, e.heightSet = true, true
	e.InvalidateMeasure()
}

// MinSize returns the minimum size constraint.
func (e *Element) MinSize() Size {
	return e.minSize
}

// SetMinSize updates the minimum size constraint and invalidates layout.
func (e *Element) SetMinSize(s Size) {
	e.minSize = NewSize(s.Width, s.Height)
	e.InvalidateMeasure()
}

// MaxSize returns the maximum size constraint.
func (e *Element) MaxSize() Size {
	return e.maxSize
}

// SetMaxSize updates the maximum size constraint and invalidates layout.
func (e *Element) SetMaxSize(s Size) {
	e.maxSize = NewSize(s.Width, s.Height)
	e.InvalidateMeasure()
}

// DesiredSize returns the size computed by the most recent measure pass,
// including the element's margin. Always non-negative and finite.
func (e *Element) DesiredSize() Size {
	return e.desiredSize
}

// Bounds returns the rectangle assigned by the most recent arrange pass,
// after margin deflation. Consumers read this to know what to paint where.
func (e *Element) Bounds() Rect {
	return e.bounds
}
