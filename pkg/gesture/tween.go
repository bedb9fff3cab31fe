package gesture

import (
	"math"

	"github.com/driftui/drift/pkg/geom"
)

// ResetTween describes the snap-back animation from a captured zoom state
// to rest. The bridge owns no clock; the host drives the tween by sampling
// At with its own animation time, then commits Done when the animation
// finishes.
type ResetTween struct {
	from ZoomState
}

// NewResetTween captures the state to animate back from. The falling edge
// of ZoomState.Active is the usual trigger.
func NewResetTween(from ZoomState) ResetTween {
	return ResetTween{from: from}
}

// At returns the interpolated state at normalized time t in [0, 1], eased
// with a snappy profile. t is clamped; At(0) is the captured state with
// Active already false, At(1) equals Rest() except for the anchor, which
// only clears on Done.
func (rt ResetTween) At(t float64) ZoomState {
	e := SnappyEase(geom.Clamp(t, 0, 1))
	return ZoomState{
		Active: false,
		Zoom:   geom.Lerp(rt.from.Zoom, 1, e),
		Anchor: rt.from.Anchor,
		Drag: geom.Vec2{
			X: geom.Lerp(rt.from.Drag.X, 0, e),
			Y: geom.Lerp(rt.from.Drag.Y, 0, e),
		},
	}
}

// Done returns the fully reset state: exactly Rest(), anchor cleared, so
// nothing stale can affect the next gesture's start.
func (rt ResetTween) Done() ZoomState {
	return Rest()
}

// SnappyEase is the snap-back easing curve: a cubic ease-out that covers
// most of the distance early and settles gently. Input and output are in
// [0, 1] for in-range t.
func SnappyEase(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
