package gesture

import "github.com/driftui/drift/pkg/geom"

// Phase is the lifecycle stage of a gesture sample, delivered in
// recognizer-dispatch order: began → changed* → ended|cancelled.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Kind identifies which recognizer produced an event.
type Kind int

const (
	KindPinch Kind = iota
	KindPan
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindPinch:
		return "pinch"
	case KindPan:
		return "pan"
	default:
		return "unknown"
	}
}

// MinPanTouches is the minimum number of touches a pan sample needs to be
// recognized. Single-finger pans are reserved for scrolling and ignored.
const MinPanTouches = 2

// Event is one gesture sample from the host's recognizers.
type Event struct {
	Kind  Kind
	Phase Phase

	// Scale is the pinch's reported cumulative scale. Pinch events only.
	Scale float64

	// Location is the gesture centroid in view coordinates, used to derive
	// the anchor on pinch-began. Pinch events only.
	Location geom.Point

	// Bounds is the size of the view the gesture happened in, used to
	// normalize Location.
	Bounds geom.Size

	// Translation is the pan's cumulative translation. Pan events only.
	Translation geom.Vec2

	// Touches is the number of fingers in the pan sample.
	Touches int
}

// ZoomState is the bridge's output: the zoom transform the host should
// apply. It is a plain comparable value so hosts can suppress redundant
// propagation with ==.
type ZoomState struct {
	// Active is true while a gesture is in flight. Its falling edge is the
	// host's cue to run the reset animation.
	Active bool

	// Zoom is the magnification, never below 1.
	Zoom float64

	// Anchor is the pinch origin normalized to [0,1]×[0,1] in view space,
	// captured once per gesture on pinch-began.
	Anchor geom.Point

	// Drag is the two-finger pan translation in view coordinates.
	Drag geom.Vec2
}

// Rest returns the bridge's rest state: zoom 1, no drag, inactive.
func Rest() ZoomState {
	return ZoomState{Zoom: 1}
}

// Reduce applies one gesture sample and returns the next state. It is a
// pure function of its inputs; the caller owns the state value and decides
// when to commit it.
func Reduce(s ZoomState, e Event) ZoomState {
	switch e.Kind {
	case KindPinch:
		return reducePinch(s, e)
	case KindPan:
		return reducePan(s, e)
	default:
		return s
	}
}

func reducePinch(s ZoomState, e Event) ZoomState {
	switch e.Phase {
	case PhaseBegan:
		s.Anchor = normalize(e.Location, e.Bounds)
		s.Zoom = max(1, e.Scale)
		s.Active = true
	case PhaseChanged:
		// Anchor stays where the gesture began.
		s.Zoom = max(1, e.Scale)
		s.Active = true
	case PhaseEnded, PhaseCancelled:
		s.Active = false
	}
	return s
}

func reducePan(s ZoomState, e Event) ZoomState {
	switch e.Phase {
	case PhaseBegan, PhaseChanged:
		if e.Touches < MinPanTouches {
			return s
		}
		s.Drag = e.Translation
		s.Active = true
	case PhaseEnded, PhaseCancelled:
		s.Active = false
	}
	return s
}

// normalize maps a view-space location to [0,1]×[0,1]. Degenerate bounds
// normalize to the origin rather than dividing by zero.
func normalize(p geom.Point, bounds geom.Size) geom.Point {
	var n geom.Point
	if bounds.Width > 0 {
		n.X = p.X / bounds.Width
	}
	if bounds.Height > 0 {
		n.Y = p.Y / bounds.Height
	}
	return n
}
