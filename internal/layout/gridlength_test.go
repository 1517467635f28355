package layout

import "testing"

func TestGridLength_Constructors(t *testing.T) {
	if got := Auto(); !got.IsAuto() {
		t.Errorf("Auto() = %+v, want auto", got)
	}
	if got := Pixel(150); !got.IsPixel() || got.Value != 150 {
		t.Errorf("Pixel(150) = %+v", got)
	}
	if got := Star(2); !got.IsStar() || got.Value != 2 {
		t.Errorf("Star(2) = %+v", got)
	}
	if got := Pixel(-10); got.Value != 0 {
		t.Errorf("Pixel(-10).Value = %v, want 0", got.Value)
	}
	if got := Star(-1); got.Value != 0 {
		t.Errorf("Star(-1).Value = %v, want 0", got.Value)
	}
}

func TestParseGridLength(t *testing.T) {
	type tc struct {
		input string
		want  GridLength
	}

	tests := map[string]tc{
		"auto lowercase":       {input: "auto", want: Auto()},
		"auto capitalized":     {input: "Auto", want: Auto()},
		"bare star":            {input: "*", want: Star(1)},
		"weighted star":        {input: "2*", want: Star(2)},
		"fractional star":      {input: "0.5*", want: Star(0.5)},
		"star with whitespace": {input: " 3 *", want: Star(3)},
		"pixels":               {input: "150", want: Pixel(150)},
		"fractional pixels":    {input: "12.5", want: Pixel(12.5)},
		"empty degrades":       {input: "", want: Auto()},
		"garbage degrades":     {input: "banana", want: Auto()},
		"garbage star weight":  {input: "x*", want: Auto()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseGridLength(tt.input); got != tt.want {
				t.Errorf("ParseGridLength(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTrackList(t *testing.T) {
	tracks := ParseTrackList("100, Auto, *")
	if len(tracks) != 3 {
		t.Fatalf("ParseTrackList returned %d tracks, want 3", len(tracks))
	}
	if tracks[0].Length != Pixel(100) {
		t.Errorf("tracks[0].Length = %+v, want Pixel(100)", tracks[0].Length)
	}
	if tracks[1].Length != Auto() {
		t.Errorf("tracks[1].Length = %+v, want Auto", tracks[1].Length)
	}
	if tracks[2].Length != Star(1) {
		t.Errorf("tracks[2].Length = %+v, want Star(1)", tracks[2].Length)
	}
	if tracks[0].Max != Inf {
		t.Errorf("tracks[0].Max = %v, want +Inf", tracks[0].Max)
	}

	if got := ParseTrackList("  "); got != nil {
		t.Errorf("ParseTrackList(blank) = %v, want nil", got)
	}
}
