package layout

// Thickness represents edge insets on four sides of a box.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// ThicknessAll creates a Thickness with the same value on all sides.
func ThicknessAll(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// ThicknessSymmetric creates a Thickness with horizontal (left/right) and
// vertical (top/bottom) values.
func ThicknessSymmetric(horizontal, vertical float64) Thickness {
	return Thickness{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// ThicknessLTRB creates a Thickness from explicit Left, Top, Right, Bottom values.
func ThicknessLTRB(left, top, right, bottom float64) Thickness {
	return Thickness{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns the sum of Left and Right.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns the sum of Top and Bottom.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// IsZero returns true if all four insets are zero.
func (t Thickness) IsZero() bool {
	return t.Left == 0 && t.Top == 0 && t.Right == 0 && t.Bottom == 0
}
