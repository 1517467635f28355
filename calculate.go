package weft

import (
	"math"

	"github.com/grindlemire/go-weft/internal/debug"
)

// Calculate performs a full measure and arrange pass on the tree rooted at
// root. Either axis of available may be Inf; the root is arranged to the
// available extent where finite and to its own desired size where not.
//
// Within the pass, every child is measured (in collection order) before any
// child is arranged; this is a hard precondition of the protocol, enforced
// by [Element.Arrange].
func Calculate(root Widget, available Size) {
	e := mustElement(root, "Calculate")

	debug.Logger().Debug().
		Float64("width", available.Width).
		Float64("height", available.Height).
		Msg("layout pass")

	desired := e.Measure(available)

	w := available.Width
	if math.IsInf(w, 1) {
		w = desired.Width
	}
	h := available.Height
	if math.IsInf(h, 1) {
		h = desired.Height
	}
	e.Arrange(NewRect(0, 0, w, h))
}
