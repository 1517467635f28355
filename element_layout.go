package weft

import "math"

// --- Measure/arrange protocol ---
//
// Every element moves through Unmeasured -> Measured -> Arranged, re-entering
// the cycle whenever it is invalidated. Measure is idempotent: an unchanged
// constraint with no intervening mutation returns the cached DesiredSize.
// Arrange requires a prior Measure; containers measure all children before
// arranging any.

// Measure computes the element's DesiredSize under the given constraint.
// Either axis of available may be Inf to indicate "no constraint".
//
// The element's margin is deflated from the constraint, the content strategy
// is consulted, and the result is inflated back and clamped to the declared
// explicit/min/max sizes. The result is always finite, non-negative, and
// never NaN. Invisible elements desire the zero size.
func (e *Element) Measure(available Size) Size {
	available = NewSize(available.Width, available.Height)

	if !e.visible {
		e.desiredSize = Size{}
		e.lastAvailable = available
		e.needsMeasure = false
		e.measured = true
		return e.desiredSize
	}

	// Skip-on-clean: same constraint, no mutation since the last pass.
	if !e.needsMeasure && e.measured && available == e.lastAvailable {
		return e.desiredSize
	}

	constraint := available.Deflate(e.margin)
	constraint = NewSize(
		constrainDim(constraint.Width, e.widthSet, e.width, e.minSize.Width, e.maxSize.Width),
		constrainDim(constraint.Height, e.heightSet, e.height, e.minSize.Height, e.maxSize.Height),
	)

	var content Size
	if e.content != nil {
		content = e.content.MeasureContent(constraint)
	}

	desired := NewSize(
		finiteDim(constrainDim(content.Width, e.widthSet, e.width, e.minSize.Width, e.maxSize.Width)),
		finiteDim(constrainDim(content.Height, e.heightSet, e.height, e.minSize.Height, e.maxSize.Height)),
	)

	e.desiredSize = desired.Inflate(e.margin)
	e.lastAvailable = available
	e.needsMeasure = false
	e.measured = true
	return e.desiredSize
}

// Arrange positions the element within the final bounds its owner has chosen.
// The bounds may be smaller or larger than DesiredSize. Margin is deflated
// before the content strategy places children; Bounds records the result.
//
// Calling Arrange on an element that has never been measured is a programmer
// error and panics: a parent cannot soundly place a child whose size it never
// asked for.
func (e *Element) Arrange(final Rect) {
	final = NewRect(final.X, final.Y, final.Width, final.Height)

	if !e.visible {
		e.bounds = Rect{}
		e.needsArrange = false
		return
	}
	if !e.measured {
		panic("weft: Arrange called before Measure; containers must measure all children before arranging any")
	}

	content := final.Deflate(e.margin)
	if e.content != nil {
		e.content.ArrangeContent(content)
	}
	e.bounds = content
	e.needsArrange = false
}

// constrainDim resolves one axis: an explicit size overrides the incoming
// value, then the min/max bounds clamp it. Min wins over max.
func constrainDim(v float64, set bool, explicit, minVal, maxVal float64) float64 {
	if set {
		v = explicit
	}
	if v < minVal {
		v = minVal
	}
	if maxVal >= minVal && v > maxVal {
		v = maxVal
	}
	return v
}

// finiteDim clamps an infinite desired dimension to 0. A content strategy
// measured against an unconstrained axis must not desire infinity.
func finiteDim(v float64) float64 {
	if math.IsInf(v, 1) {
		return 0
	}
	return v
}

// clampSpacing keeps a spacing distance non-negative and never NaN.
func clampSpacing(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
