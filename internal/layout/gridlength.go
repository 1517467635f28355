package layout

import (
	"strconv"
	"strings"
)

// GridUnit specifies how a GridLength is interpreted.
type GridUnit uint8

const (
	UnitAuto  GridUnit = iota // Size determined by content
	UnitPixel                 // Absolute device-independent pixels
	UnitStar                  // Proportional share of leftover space
)

// GridLength represents a track sizing rule: absolute, proportional, or
// size-to-content. Immutable.
type GridLength struct {
	Value float64
	Unit  GridUnit
}

// Auto returns a GridLength that sizes to content.
func Auto() GridLength {
	return GridLength{Unit: UnitAuto}
}

// Pixel returns a GridLength with an absolute extent. Negative and NaN
// values are clamped to 0.
func Pixel(v float64) GridLength {
	return GridLength{Value: sanitize(v), Unit: UnitPixel}
}

// Star returns a GridLength with a proportional weight. Negative and NaN
// weights are clamped to 0.
func Star(weight float64) GridLength {
	return GridLength{Value: sanitize(weight), Unit: UnitStar}
}

// IsAuto returns true if this length sizes to content.
func (g GridLength) IsAuto() bool { return g.Unit == UnitAuto }

// IsPixel returns true if this length is absolute.
func (g GridLength) IsPixel() bool { return g.Unit == UnitPixel }

// IsStar returns true if this length is proportional.
func (g GridLength) IsStar() bool { return g.Unit == UnitStar }

// ParseGridLength parses a single track sizing rule:
//
//	"Auto"  size to content (case-insensitive)
//	"*"     star with weight 1
//	"2*"    star with the given weight
//	"150"   absolute pixels
//
// Unparseable input degrades to Auto rather than failing; layout inputs are
// clamped, never rejected.
func ParseGridLength(s string) GridLength {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return Auto()
	}
	if s == "*" {
		return Star(1)
	}
	if weight, ok := strings.CutSuffix(s, "*"); ok {
		w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
		if err != nil {
			return Auto()
		}
		return Star(w)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Auto()
	}
	return Pixel(v)
}

// ParseTrackList parses a comma-separated list of track sizing rules,
// e.g. "100,Auto,*" or "2*, *, 48", into new tracks.
func ParseTrackList(s string) []*Track {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tracks := make([]*Track, len(parts))
	for i, part := range parts {
		tracks[i] = NewTrack(ParseGridLength(part))
	}
	return tracks
}
