package layout

import "math"

// Track is a single row or column slot in a grid. It pairs a sizing rule
// with min/max clamp bounds.
//
// actualSize and offset are layout-pass scratch state: recomputed by
// ResolveTracks/PositionTracks every pass and never carried across passes.
// They are not part of the track's logical identity.
type Track struct {
	Length GridLength
	Min    float64
	Max    float64

	actualSize float64
	offset     float64
}

// NewTrack creates a Track with the given sizing rule and an unbounded
// [0, +Inf) clamp range.
func NewTrack(length GridLength) *Track {
	return &Track{Length: length, Max: Inf}
}

// ActualSize returns the extent computed by the most recent layout pass.
func (t *Track) ActualSize() float64 {
	return t.actualSize
}

// Offset returns the position computed by the most recent layout pass,
// relative to the grid's content origin.
func (t *Track) Offset() float64 {
	return t.offset
}

// clampTrack restricts v to [minVal, maxVal] and to be non-negative.
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clampTrack(v, minVal, maxVal float64) float64 {
	if v < minVal {
		v = minVal
	}
	if maxVal >= minVal && v > maxVal {
		v = maxVal
	}
	return sanitize(v)
}

// ResolveTracks computes the actual size of every track along one axis.
//
// available is the extent the tracks may occupy (possibly Inf); spacing is
// the gap between adjacent tracks; auto[i] is the content contribution
// maximum for track i, gathered by the caller from the children covering
// that track (only read for Auto tracks, and for Star tracks when available
// is infinite).
//
// Pixel tracks consume their clamped value. Auto tracks consume their
// clamped contribution. Star tracks split whatever usable extent remains
// proportionally by weight, each clamped to its own min/max; no second
// distribution pass runs if clamping makes the total diverge from the
// remainder. With an infinite available extent, star tracks size to content
// like Auto tracks, since there is no finite space to apportion.
func ResolveTracks(tracks []*Track, available, spacing float64, auto []float64) {
	if len(tracks) == 0 {
		return
	}

	infinite := math.IsInf(available, 1)
	usable := available
	if !infinite {
		usable = sanitize(available - spacing*float64(len(tracks)-1))
	}

	used := 0.0
	starWeight := 0.0
	for i, t := range tracks {
		switch t.Length.Unit {
		case UnitPixel:
			t.actualSize = clampTrack(t.Length.Value, t.Min, t.Max)
			used += t.actualSize
		case UnitAuto:
			t.actualSize = clampTrack(contribution(auto, i), t.Min, t.Max)
			used += t.actualSize
		case UnitStar:
			if infinite {
				t.actualSize = clampTrack(contribution(auto, i), t.Min, t.Max)
				used += t.actualSize
			} else {
				starWeight += max(0, t.Length.Value)
			}
		}
	}

	if infinite {
		return
	}

	remaining := max(0, usable-used)
	for _, t := range tracks {
		if !t.Length.IsStar() {
			continue
		}
		share := 0.0
		if starWeight > 0 {
			share = remaining * max(0, t.Length.Value) / starWeight
		}
		t.actualSize = clampTrack(share, t.Min, t.Max)
	}
}

// PositionTracks assigns each track's offset as a running prefix sum of
// actual sizes plus spacing between tracks. Returns the total extent
// occupied by the tracks, including interior spacing.
func PositionTracks(tracks []*Track, spacing float64) float64 {
	offset := 0.0
	for i, t := range tracks {
		if i > 0 {
			offset += spacing
		}
		t.offset = offset
		offset += t.actualSize
	}
	return offset
}

// SpanExtent sums the actual sizes of tracks[start:start+span] plus the
// interior spacing between them. Callers must pass in-bounds values.
func SpanExtent(tracks []*Track, start, span int, spacing float64) float64 {
	extent := 0.0
	for i := start; i < start+span; i++ {
		extent += tracks[i].actualSize
	}
	if span > 1 {
		extent += spacing * float64(span-1)
	}
	return extent
}

func contribution(auto []float64, i int) float64 {
	if i < len(auto) {
		return auto[i]
	}
	return 0
}
