package layout

import "math"

// Inf is the positive-infinity sentinel for an unconstrained axis.
var Inf = math.Inf(1)

// Size represents a width/height pair in device-independent pixels.
// Either axis may be Inf to indicate "no constraint".
type Size struct {
	Width, Height float64
}

// NewSize creates a Size with both dimensions sanitized: negative values and
// NaN are clamped to 0, positive infinity is preserved.
func NewSize(width, height float64) Size {
	return Size{Width: sanitize(width), Height: sanitize(height)}
}

// InfiniteSize returns a Size unconstrained on both axes.
func InfiniteSize() Size {
	return Size{Width: Inf, Height: Inf}
}

// sanitize clamps a dimension to be non-negative and never NaN.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// IsFinite returns true if both dimensions are finite.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.Width, 1) && !math.IsInf(s.Height, 1)
}

// Deflate returns the Size shrunk by the given Thickness on each axis.
// Dimensions never go below zero; infinite dimensions stay infinite.
func (s Size) Deflate(t Thickness) Size {
	return NewSize(s.Width-t.Horizontal(), s.Height-t.Vertical())
}

// Inflate returns the Size grown by the given Thickness on each axis.
func (s Size) Inflate(t Thickness) Size {
	return NewSize(s.Width+t.Horizontal(), s.Height+t.Vertical())
}

// Max returns the componentwise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}
