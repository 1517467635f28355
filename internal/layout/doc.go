// Package layout provides the geometry primitives and track-sizing math for
// the retained-mode layout engine.
//
// All values are in device-independent pixels (float64). [Inf] marks an
// unconstrained axis during measurement. Types are re-exported through the
// root weft package for public consumption.
//
// The package is pure math: it knows nothing about the element tree. Panels
// in the root package call [ResolveTracks] and [PositionTracks] with
// contribution data they gather from their children.
package layout
