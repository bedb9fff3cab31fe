package gesture

import "github.com/driftui/drift/pkg/geom"

// Hysteresis thresholds for downstream adoption of bridge values. Raw
// recognizer samples arrive at display rate and wobble; consumers only
// re-render when a change clears these.
const (
	// ZoomEpsilon is the minimum |Δzoom| worth adopting.
	ZoomEpsilon = 0.01

	// DragEpsilon is the minimum per-axis |Δ| of the drag offset worth
	// adopting.
	DragEpsilon = 5.0
)

// Filter applies hysteresis between the bridge's raw output and the values
// a host actually renders with. It keeps the last adopted state and lets a
// new sample through only when it moved far enough to matter.
//
// A Filter is owned by a single render subtree and written only from its
// gesture callbacks; it needs no locking.
type Filter struct {
	adopted ZoomState
}

// NewFilter returns a filter whose adopted state starts at rest.
func NewFilter() *Filter {
	return &Filter{adopted: Rest()}
}

// Adopted returns the state the host should currently render with.
func (f *Filter) Adopted() ZoomState {
	return f.adopted
}

// Offer presents a new bridge state. The zoom is adopted only when it moved
// more than ZoomEpsilon; the drag only when either axis moved more than
// DragEpsilon. Active and Anchor changes always pass through; they are
// discrete edges, not continuous samples. Returns the adopted state and
// whether anything changed.
func (f *Filter) Offer(next ZoomState) (ZoomState, bool) {
	changed := false

	if geom.Abs(next.Zoom-f.adopted.Zoom) > ZoomEpsilon {
		f.adopted.Zoom = next.Zoom
		changed = true
	}
	if geom.Abs(next.Drag.X-f.adopted.Drag.X) > DragEpsilon ||
		geom.Abs(next.Drag.Y-f.adopted.Drag.Y) > DragEpsilon {
		f.adopted.Drag = next.Drag
		changed = true
	}
	if next.Active != f.adopted.Active {
		f.adopted.Active = next.Active
		changed = true
	}
	if next.Anchor != f.adopted.Anchor {
		f.adopted.Anchor = next.Anchor
		changed = true
	}

	return f.adopted, changed
}

// Reset snaps the filter back to rest, bypassing hysteresis. Hosts call
// this when the reset animation completes.
func (f *Filter) Reset() {
	f.adopted = Rest()
}
