package gesture

import (
	"testing"

	"github.com/driftui/drift/pkg/geom"
)

func TestFilterZoomHysteresis(t *testing.T) {
	f := NewFilter()

	// Below epsilon: rejected.
	next := Rest()
	next.Zoom = 1.005
	if _, changed := f.Offer(next); changed {
		t.Error("zoom delta below epsilon should not be adopted")
	}
	if f.Adopted().Zoom != 1 {
		t.Errorf("Adopted zoom = %v, want 1", f.Adopted().Zoom)
	}

	// Above epsilon: adopted.
	next.Zoom = 1.2
	adopted, changed := f.Offer(next)
	if !changed || adopted.Zoom != 1.2 {
		t.Errorf("Offer(zoom=1.2) = (%v, %v), want adoption", adopted.Zoom, changed)
	}
}

func TestFilterDragHysteresis(t *testing.T) {
	tests := []struct {
		name  string
		drag  geom.Vec2
		adopt bool
	}{
		{name: "both axes below epsilon", drag: geom.Vec2{X: 3, Y: 4}, adopt: false},
		{name: "x above epsilon", drag: geom.Vec2{X: 6, Y: 0}, adopt: true},
		{name: "y above epsilon", drag: geom.Vec2{X: 0, Y: -7}, adopt: true},
		{name: "exactly epsilon is not enough", drag: geom.Vec2{X: 5, Y: 5}, adopt: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter()
			next := Rest()
			next.Drag = tt.drag

			_, changed := f.Offer(next)
			if changed != tt.adopt {
				t.Errorf("Offer(drag=%v) changed = %v, want %v", tt.drag, changed, tt.adopt)
			}
		})
	}
}

func TestFilterActiveEdgePassesThrough(t *testing.T) {
	f := NewFilter()

	next := Rest()
	next.Active = true
	if _, changed := f.Offer(next); !changed {
		t.Error("Active edge should always pass through the filter")
	}
	if !f.Adopted().Active {
		t.Error("Adopted state should be active")
	}
}

func TestFilterReset(t *testing.T) {
	f := NewFilter()

	next := Rest()
	next.Active = true
	next.Zoom = 3
	next.Drag = geom.Vec2{X: 40, Y: 40}
	f.Offer(next)

	f.Reset()
	if f.Adopted() != Rest() {
		t.Errorf("after Reset, Adopted() = %+v, want rest", f.Adopted())
	}
}

func TestFilterAccumulatesFromAdopted(t *testing.T) {
	// Hysteresis compares against the adopted value, not the last offer:
	// many tiny increments below epsilon never accumulate into adoption.
	f := NewFilter()

	next := Rest()
	for i := 0; i < 20; i++ {
		next.Zoom += 0.004
		f.Offer(next)
	}

	// 20 × 0.004 = 0.08 total movement, every single offer compared to the
	// adopted zoom at the time, so adoption happened as soon as the gap
	// exceeded epsilon.
	if f.Adopted().Zoom == 1 {
		t.Error("zoom should eventually be adopted once the gap to the adopted value exceeds epsilon")
	}
}
