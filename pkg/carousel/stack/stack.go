// Package stack implements the stacked carousel engine: a deck of cards
// where the current card renders front and center while neighbors recede
// behind it with decreasing scale and growing horizontal offset.
//
// The engine is pure geometry plus index transitions. The current index is
// owned by the host; VisualProps derives per-card parameters from the
// distance to it, and the transition functions (IndexAfterDrag,
// IndexAfterTap) propose a new index for the host to commit. The engine
// never mutates host state.
package stack

import (
	"github.com/driftui/drift/pkg/carousel"
	"github.com/driftui/drift/pkg/geom"
)

// DragThreshold is the horizontal translation, in host units, a drag must
// exceed before it moves the current index. Shorter drags snap back.
const DragThreshold = 25.0

// Props are the per-card visual parameters derived from the card's distance
// to the current index. They are ephemeral: recomputed on every render and
// never stored.
type Props struct {
	// Scale is the card's render scale, 1 at the current index. It is not
	// clamped below 0; a config whose size ratio exceeds 1/|offset| produces
	// negative scale and the host must guard against rendering it.
	Scale float64

	// XOffset is the horizontal shift from the stack center in host units.
	XOffset float64

	// ZIndex orders the deck: totalItems − |offset|, so cards nearer the
	// current index always stack above further ones.
	ZIndex int

	// Opacity is 1 for cards within the visible window and 0 beyond it.
	// There is no intermediate fade.
	Opacity float64

	// Selected reports whether the host should render the selection
	// highlight: only the current card, and only when the config asks.
	Selected bool
}

// VisualProps computes the visual parameters for the card at the given
// signed distance from the current index (itemIndex − currentIndex).
func VisualProps(offsetFromCurrent, totalItems int, cfg carousel.StackConfig) Props {
	distance := geom.AbsInt(offsetFromCurrent)

	scale := 1.0
	if offsetFromCurrent != 0 {
		scale = 1 - float64(distance)*cfg.CardSizeDifferenceRatio
	}

	opacity := 0.0
	if distance <= cfg.VisibleCardIndexDifference {
		opacity = 1
	}

	return Props{
		Scale:    scale,
		XOffset:  float64(offsetFromCurrent) * cfg.CardOffsetDifference,
		ZIndex:   totalItems - distance,
		Opacity:  opacity,
		Selected: cfg.ShowSelected && offsetFromCurrent == 0,
	}
}

// IndexAfterDrag proposes the index following a completed drag gesture with
// the given final horizontal translation. A drag past DragThreshold moves
// the index by exactly one step (leftward drags advance, rightward drags
// go back) regardless of how far past the threshold the drag went. The
// index clamps at the ends; there is no wraparound.
func IndexAfterDrag(current, totalItems int, translationX float64) int {
	switch {
	case translationX < -DragThreshold && current < totalItems-1:
		return current + 1
	case translationX > DragThreshold && current > 0:
		return current - 1
	default:
		return current
	}
}

// IndexAfterTap proposes the index following a tap on the card at tapIndex.
// Tapping a non-current card steps the index exactly one position toward
// the tapped card and does not activate it. Tapping the current card keeps
// the index and reports activate=true, telling the host to invoke the
// card's action exactly once.
func IndexAfterTap(current, tapIndex int) (next int, activate bool) {
	if tapIndex == current {
		return current, true
	}
	return current + geom.Sign(tapIndex-current), false
}
