package weft

// InvalidateMeasure marks this element and its ancestors as needing a new
// measure pass (and therefore a new arrange pass). Propagation stops at the
// first ancestor already marked, so repeated invalidation is idempotent and
// does no redundant walking.
//
// Called automatically by every layout-affecting setter; call it manually
// after mutating state a custom MeasureContent depends on.
func (e *Element) InvalidateMeasure() {
	for el := e; el != nil && !el.needsMeasure; el = el.parent {
		el.needsMeasure = true
		el.needsArrange = true
	}
}

// InvalidateArrange marks this element and its ancestors as needing a new
// arrange pass without discarding measure results. Propagation stops at the
// first already-marked ancestor.
func (e *Element) InvalidateArrange() {
	for el := e; el != nil && !el.needsArrange; el = el.parent {
		el.needsArrange = true
	}
}

// NeedsMeasure returns whether this element requires a measure pass.
func (e *Element) NeedsMeasure() bool {
	return e.needsMeasure
}

// NeedsArrange returns whether this element requires an arrange pass.
func (e *Element) NeedsArrange() bool {
	return e.needsArrange
}
