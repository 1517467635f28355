package weft

// Option configures an Element at construction time.
type Option func(*Element)

// --- Dimension Options ---

// WithWidth sets an explicit width in device-independent pixels.
func WithWidth(dips float64) Option {
	return func(e *Element) {
		e.width = dips
		e.widthSet = true
	}
}

// WithHeight sets an explicit height in device-independent pixels.
func WithHeight(dips float64) Option {
	return func(e *Element) {
		e.height = dips
		e.heightSet = true
	}
}

// WithSize sets both explicit width and height.
func WithSize(width, height float64) Option {
	return func(e *Element) {
		e.width, e.height = width, height
		e.widthSet, e.heightSet = true, true
	}
}

// WithMinSize sets the minimum size constraint.
func WithMinSize(width, height float64) Option {
	return func(e *Element) {
		e.minSize = NewSize(width, height)
	}
}

// WithMaxSize sets the maximum size constraint.
func WithMaxSize(width, height float64) Option {
	return func(e *Element) {
		e.maxSize = NewSize(width, height)
	}
}

// --- Spacing Options ---

// WithMargin sets the element's outer insets.
func WithMargin(margin Thickness) Option {
	return func(e *Element) {
		e.margin = margin
	}
}

// WithMarginAll sets the same outer inset on all four sides.
func WithMarginAll(dips float64) Option {
	return func(e *Element) {
		e.margin = ThicknessAll(dips)
	}
}

// --- Visibility Options ---

// WithHidden creates the element invisible. Invisible elements are fully
// skipped by containers.
func WithHidden() Option {
	return func(e *Element) {
		e.visible = false
	}
}
