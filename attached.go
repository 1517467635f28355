package weft

// --- Attached layout metadata ---
//
// Dock positions and grid cell assignments live in package-level side-tables
// keyed by element identity, not on the element itself. The tables do not
// own the elements: RemoveChild/RemoveAllChildren drop a removed element's
// entries so the tables cannot grow past the live tree. All access happens
// on the single layout thread.

// Dock specifies which edge of a DockPanel a child attaches to.
type Dock uint8

const (
	// DockLeft attaches the child to the left edge (default).
	DockLeft Dock = iota
	// DockTop attaches the child to the top edge.
	DockTop
	// DockRight attaches the child to the right edge.
	DockRight
	// DockBottom attaches the child to the bottom edge.
	DockBottom
)

// gridMeta holds a child's grid cell assignment. Row and column are
// tri-state: unset entries are resolved by auto-placement.
type gridMeta struct {
	row, col         int
	rowSet, colSet   bool
	rowSpan, colSpan int
}

var (
	dockTable = map[*Element]Dock{}
	gridTable = map[*Element]*gridMeta{}
)

// SetDock attaches the element to the given DockPanel edge.
func SetDock(w Widget, d Dock) {
	e := mustElement(w, "SetDock")
	dockTable[e] = d
	e.InvalidateMeasure()
}

// GetDock returns the element's dock edge, DockLeft if never set.
func GetDock(w Widget) Dock {
	return dockTable[mustElement(w, "GetDock")]
}

// SetRow assigns the element's grid row. Negative values clamp to 0.
func SetRow(w Widget, row int) {
	e := mustElement(w, "SetRow")
	m := ensureGridMeta(e)
	m.row = max(0, row)
	m.rowSet = true
	e.InvalidateMeasure()
}

// GetRow returns the element's grid row, 0 if never set.
func GetRow(w Widget) int {
	return gridMetaOf(mustElement(w, "GetRow")).row
}

// SetColumn assigns the element's grid column. Negative values clamp to 0.
func SetColumn(w Widget, col int) {
	e := mustElement(w, "SetColumn")
	m := ensureGridMeta(e)
	m.col = max(0, col)
	m.colSet = true
	e.InvalidateMeasure()
}

// GetColumn returns the element's grid column, 0 if never set.
func GetColumn(w Widget) int {
	return gridMetaOf(mustElement(w, "GetColumn")).col
}

// SetRowSpan sets how many rows the element covers. Values below 1 clamp to 1.
func SetRowSpan(w Widget, span int) {
	e := mustElement(w, "SetRowSpan")
	ensureGridMeta(e).rowSpan = max(1, span)
	e.InvalidateMeasure()
}

// GetRowSpan returns how many rows the element covers, 1 if never set.
func GetRowSpan(w Widget) int {
	return gridMetaOf(mustElement(w, "GetRowSpan")).rowSpan
}

// SetColumnSpan sets how many columns the element covers. Values below 1
// clamp to 1.
func SetColumnSpan(w Widget, span int) {
	e := mustElement(w, "SetColumnSpan")
	ensureGridMeta(e).colSpan = max(1, span)
	e.InvalidateMeasure()
}

// GetColumnSpan returns how many columns the element covers, 1 if never set.
func GetColumnSpan(w Widget) int {
	return gridMetaOf(mustElement(w, "GetColumnSpan")).colSpan
}

// gridMetaOf returns a copy of the element's grid metadata, with defaults
// (row/column unset, spans 1) when none has been attached.
func gridMetaOf(e *Element) gridMeta {
	if m, ok := gridTable[e]; ok {
		return *m
	}
	return gridMeta{rowSpan: 1, colSpan: 1}
}

func ensureGridMeta(e *Element) *gridMeta {
	if m, ok := gridTable[e]; ok {
		return m
	}
	m := &gridMeta{rowSpan: 1, colSpan: 1}
	gridTable[e] = m
	return m
}

// detachMetadata drops every side-table entry for an element leaving the
// tree. The removal hook that keeps the weak association from leaking.
func detachMetadata(e *Element) {
	delete(dockTable, e)
	delete(gridTable, e)
}
