// Package weft provides a retained-mode layout engine for Go.
//
// Users import this single package for the complete public API: the element
// tree, the measure/arrange protocol, the stacking, docking, and grid
// containers, and the attached-property accessors that configure them.
//
// Layout runs in two synchronous phases. [Element.Measure] asks each element
// for its desired size under a proposed constraint; [Element.Arrange] assigns
// each element a final rectangle and positions its children. [Calculate] runs
// both phases over a tree. The engine produces geometry only; rendering,
// input, and windowing are the caller's concern.
package weft
