// layout.go re-exports geometry and track types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package weft

import "github.com/grindlemire/go-weft/internal/layout"

// Size represents a width/height pair in device-independent pixels.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Thickness represents edge insets on four sides of a box.
type Thickness = layout.Thickness

// GridLength represents a track sizing rule (pixel, star, or auto).
type GridLength = layout.GridLength

// GridUnit specifies how a GridLength is interpreted.
type GridUnit = layout.GridUnit

const (
	UnitAuto  = layout.UnitAuto
	UnitPixel = layout.UnitPixel
	UnitStar  = layout.UnitStar
)

// Track is a single row or column slot in a grid.
type Track = layout.Track

// Inf is the positive-infinity sentinel for an unconstrained axis.
var Inf = layout.Inf

// NewSize creates a Size with non-negative, non-NaN dimensions.
func NewSize(width, height float64) Size {
	return layout.NewSize(width, height)
}

// InfiniteSize returns a Size unconstrained on both axes.
func InfiniteSize() Size {
	return layout.InfiniteSize()
}

// NewRect creates a Rect with non-negative, non-NaN dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// ThicknessAll creates a Thickness with the same value on all sides.
func ThicknessAll(v float64) Thickness {
	return layout.ThicknessAll(v)
}

// ThicknessSymmetric creates a Thickness with horizontal and vertical values.
func ThicknessSymmetric(horizontal, vertical float64) Thickness {
	return layout.ThicknessSymmetric(horizontal, vertical)
}

// ThicknessLTRB creates a Thickness from Left, Top, Right, Bottom values.
func ThicknessLTRB(left, top, right, bottom float64) Thickness {
	return layout.ThicknessLTRB(left, top, right, bottom)
}

// Auto creates a GridLength that sizes to content.
func Auto() GridLength {
	return layout.Auto()
}

// Pixel creates a GridLength with an absolute extent.
func Pixel(v float64) GridLength {
	return layout.Pixel(v)
}

// Star creates a GridLength with a proportional weight.
func Star(weight float64) GridLength {
	return layout.Star(weight)
}

// NewTrack creates a Track with the given sizing rule and no min/max bounds.
func NewTrack(length GridLength) *Track {
	return layout.NewTrack(length)
}

// ParseGridLength parses a single track sizing rule such as "Auto", "2*",
// or "150". Unparseable input degrades to Auto.
func ParseGridLength(s string) GridLength {
	return layout.ParseGridLength(s)
}

// ParseTrackList parses a comma-separated list of track sizing rules,
// e.g. "100,Auto,*", into new tracks.
func ParseTrackList(s string) []*Track {
	return layout.ParseTrackList(s)
}
