package weft

import (
	"github.com/grindlemire/go-weft/internal/debug"
	"github.com/grindlemire/go-weft/internal/layout"
)

var _ Content = (*Grid)(nil)

// Grid arranges children in two-dimensional cells formed by row and column
// tracks. Tracks size to an absolute extent (Pixel), to their content
// (Auto), or to a proportional share of leftover space (Star). Children are
// assigned cells through the attached Row/Column/RowSpan/ColumnSpan
// properties; with AutoIndexing on (the default), children missing an
// assignment flow into the first free cell in collection order.
type Grid struct {
	Element
	rows, cols   []*Track
	autoIndexing bool
	spacing      float64

	// placements holds the cells resolved by the last measure pass.
	// Rebuilt every pass; arrange reuses it.
	placements map[*Element]cell
}

// cell is a resolved, grid-clamped placement.
type cell struct {
	row, col         int
	rowSpan, colSpan int
}

// NewGrid creates a Grid with AutoIndexing enabled and no tracks. A grid
// with no tracks on an axis gets a single default star track synthesized at
// layout time.
func NewGrid(opts ...Option) *Grid {
	g := &Grid{autoIndexing: true}
	g.Init(g, opts...)
	return g
}

// --- Track configuration ---

// AddRow appends a row track with the given sizing rule and returns it so
// Min/Max bounds can be set.
func (g *Grid) AddRow(length GridLength) *Track {
	t := NewTrack(length)
	g.rows = append(g.rows, t)
	g.InvalidateMeasure()
	return t
}

// AddColumn appends a column track with the given sizing rule and returns it.
func (g *Grid) AddColumn(length GridLength) *Track {
	t := NewTrack(length)
	g.cols = append(g.cols, t)
	g.InvalidateMeasure()
	return t
}

// AddRows appends row tracks parsed from a comma-separated sizing list,
// e.g. "Auto,*,2*".
func (g *Grid) AddRows(list string) {
	g.rows = append(g.rows, ParseTrackList(list)...)
	g.InvalidateMeasure()
}

// AddColumns appends column tracks parsed from a comma-separated sizing
// list, e.g. "100,Auto,*".
func (g *Grid) AddColumns(list string) {
	g.cols = append(g.cols, ParseTrackList(list)...)
	g.InvalidateMeasure()
}

// RowDefinitions returns the row tracks in order.
func (g *Grid) RowDefinitions() []*Track {
	return g.rows
}

// ColumnDefinitions returns the column tracks in order.
func (g *Grid) ColumnDefinitions() []*Track {
	return g.cols
}

// AutoIndexing returns whether unassigned children are auto-placed.
func (g *Grid) AutoIndexing() bool {
	return g.autoIndexing
}

// SetAutoIndexing toggles auto-placement and invalidates layout.
// With auto-placement off, unassigned rows and columns default to 0.
func (g *Grid) SetAutoIndexing(enabled bool) {
	if g.autoIndexing == enabled {
		return
	}
	g.autoIndexing = enabled
	g.InvalidateMeasure()
}

// Spacing returns the uniform gap between adjacent rows and columns.
func (g *Grid) Spacing() float64 {
	return g.spacing
}

// SetSpacing updates the uniform gap between adjacent rows and columns.
// Negative and NaN values clamp to 0.
func (g *Grid) SetSpacing(spacing float64) {
	g.spacing = clampSpacing(spacing)
	g.InvalidateMeasure()
}

// ensureTracks guarantees at least one track per axis. An empty axis gets a
// single default star track, which then persists in the definitions.
func (g *Grid) ensureTracks() {
	if len(g.rows) == 0 {
		g.rows = append(g.rows, NewTrack(Star(1)))
	}
	if len(g.cols) == 0 {
		g.cols = append(g.cols, NewTrack(Star(1)))
	}
}

// --- Measure ---

// MeasureContent resolves child placements, measures every visible child
// against the available content size, then sizes and positions both track
// axes. The desired size is the total extent of the resolved tracks.
//
// With an infinite available extent, star tracks size to content like Auto
// tracks; true proportional distribution happens when arrange supplies the
// final extent.
func (g *Grid) MeasureContent(available Size) Size {
	g.ensureTracks()
	g.resolvePlacements()

	for _, child := range g.children {
		if !child.IsVisible() {
			continue
		}
		child.Measure(available)
	}

	layout.ResolveTracks(g.cols, available.Width, g.spacing, g.columnContributions())
	layout.ResolveTracks(g.rows, available.Height, g.spacing, g.rowContributions())
	w := layout.PositionTracks(g.cols, g.spacing)
	h := layout.PositionTracks(g.rows, g.spacing)
	return NewSize(w, h)
}

// columnContributions gathers per-column auto sizing maxima: each visible
// child contributes its desired width divided across its column span, with
// the span's interior spacing subtracted first. Spanning tracks are not
// solved exactly; each covered track independently estimates its share.
func (g *Grid) columnContributions() []float64 {
	auto := make([]float64, len(g.cols))
	for _, child := range g.children {
		if !child.IsVisible() {
			continue
		}
		c, ok := g.placements[child]
		if !ok {
			continue
		}
		addContribution(auto, c.col, c.colSpan, child.DesiredSize().Width, g.spacing)
	}
	return auto
}

// rowContributions is the row-axis analogue of columnContributions.
func (g *Grid) rowContributions() []float64 {
	auto := make([]float64, len(g.rows))
	for _, child := range g.children {
		if !child.IsVisible() {
			continue
		}
		c, ok := g.placements[child]
		if !ok {
			continue
		}
		addContribution(auto, c.row, c.rowSpan, child.DesiredSize().Height, g.spacing)
	}
	return auto
}

func addContribution(auto []float64, start, span int, desired, spacing float64) {
	share := (desired - spacing*float64(span-1)) / float64(span)
	if share < 0 {
		share = 0
	}
	for i := start; i < start+span && i < len(auto); i++ {
		auto[i] = max(auto[i], share)
	}
}

// --- Arrange ---

// ArrangeContent re-resolves both track axes against the final content size
// (which may differ from the measured available size) and arranges each
// visible child into the rectangle covered by its cells.
func (g *Grid) ArrangeContent(content Rect) {
	g.ensureTracks()

	layout.ResolveTracks(g.cols, content.Width, g.spacing, g.columnContributions())
	layout.ResolveTracks(g.rows, content.Height, g.spacing, g.rowContributions())
	layout.PositionTracks(g.cols, g.spacing)
	layout.PositionTracks(g.rows, g.spacing)

	rows, cols := len(g.rows), len(g.cols)
	for _, child := range g.children {
		if !child.IsVisible() {
			continue
		}
		c, ok := g.placements[child]
		if !ok {
			// Child appeared after the last measure pass; it will be
			// placed when the pending remeasure runs.
			debug.Logf("grid: skipping unplaced child during arrange")
			continue
		}
		c = clampCell(c.row, c.col, c.rowSpan, c.colSpan, rows, cols)

		x := content.X + g.cols[c.col].Offset()
		y := content.Y + g.rows[c.row].Offset()
		w := layout.SpanExtent(g.cols, c.col, c.colSpan, g.spacing)
		h := layout.SpanExtent(g.rows, c.row, c.rowSpan, g.spacing)
		child.Arrange(NewRect(x, y, w, h))
	}
}

// --- Auto-placement ---

// resolvePlacements assigns every visible child a grid-clamped cell,
// executed once per measure pass before track sizing.
//
// With auto-indexing on: children with both row and column explicitly set
// claim their cells first; the rest are processed in collection order, each
// scanning for the first free region that fits its span (along the free
// axis when one index is given, row-major when neither is). Cells are
// marked occupied as soon as they are claimed, so earlier children win any
// contested slot and placement is deterministic.
func (g *Grid) resolvePlacements() {
	rows, cols := len(g.rows), len(g.cols)
	g.placements = make(map[*Element]cell, len(g.children))

	if !g.autoIndexing {
		for _, child := range g.children {
			if !child.IsVisible() {
				continue
			}
			m := gridMetaOf(child)
			g.placements[child] = clampCell(m.row, m.col, m.rowSpan, m.colSpan, rows, cols)
		}
		return
	}

	occ := make([][]bool, rows)
	for i := range occ {
		occ[i] = make([]bool, cols)
	}

	// First pass: fully specified children claim their cells.
	for _, child := range g.children {
		if !child.IsVisible() {
			continue
		}
		m := gridMetaOf(child)
		if m.rowSet && m.colSet {
			c := clampCell(m.row, m.col, m.rowSpan, m.colSpan, rows, cols)
			markOccupied(occ, c)
			g.placements[child] = c
		}
	}

	// Second pass: flow the rest into free cells in collection order.
	for _, child := range g.children {
		if !child.IsVisible() {
			continue
		}
		if _, done := g.placements[child]; done {
			continue
		}
		m := gridMetaOf(child)
		rowSpan := min(max(1, m.rowSpan), rows)
		colSpan := min(max(1, m.colSpan), cols)

		var c cell
		found := false
		switch {
		case m.rowSet:
			row := min(m.row, rows-1)
			rs := min(rowSpan, rows-row)
			for col := 0; col+colSpan <= cols; col++ {
				if fits(occ, row, col, rs, colSpan) {
					c = cell{row: row, col: col, rowSpan: rs, colSpan: colSpan}
					found = true
					break
				}
			}
		case m.colSet:
			col := min(m.col, cols-1)
			cs := min(colSpan, cols-col)
			for row := 0; row+rowSpan <= rows; row++ {
				if fits(occ, row, col, rowSpan, cs) {
					c = cell{row: row, col: col, rowSpan: rowSpan, colSpan: cs}
					found = true
					break
				}
			}
		default:
			for row := 0; row+rowSpan <= rows && !found; row++ {
				for col := 0; col+colSpan <= cols; col++ {
					if fits(occ, row, col, rowSpan, colSpan) {
						c = cell{row: row, col: col, rowSpan: rowSpan, colSpan: colSpan}
						found = true
						break
					}
				}
			}
		}

		if !found {
			// No free region fits; fall back to the origin.
			c = clampCell(0, 0, rowSpan, colSpan, rows, cols)
			debug.Logf("grid: no free cell fits %dx%d span, placing at origin", rowSpan, colSpan)
		}
		markOccupied(occ, c)
		g.placements[child] = c
	}
}

// fits reports whether the region is entirely free. Bounds are the caller's
// responsibility.
func fits(occ [][]bool, row, col, rowSpan, colSpan int) bool {
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			if occ[r][c] {
				return false
			}
		}
	}
	return true
}

func markOccupied(occ [][]bool, c cell) {
	for r := c.row; r < c.row+c.rowSpan; r++ {
		for col := c.col; col < c.col+c.colSpan; col++ {
			occ[r][col] = true
		}
	}
}

// clampCell clamps a row/column/span assignment to the grid's extent.
// Out-of-range values are clamped, never rejected.
func clampCell(row, col, rowSpan, colSpan, rows, cols int) cell {
	row = min(max(0, row), rows-1)
	col = min(max(0, col), cols-1)
	rowSpan = min(max(1, rowSpan), rows-row)
	colSpan = min(max(1, colSpan), cols-col)
	return cell{row: row, col: col, rowSpan: rowSpan, colSpan: colSpan}
}
