// Package gesture implements the pinch-zoom gesture bridge: a small state
// machine turning continuous two-finger gesture samples into a zoom state
// the render host can apply to its content.
//
// # Model
//
// The bridge is a reducer: (ZoomState, Event) → ZoomState. Events carry the
// recognizer kind (pinch or pan), the phase (began, changed, ended,
// cancelled), and the raw sample values. The reducer applies events in
// recognizer-dispatch order and never defends against out-of-order
// anomalies: it simply reflects the most recent event, with last-write-wins
// semantics for Active, Zoom, and Drag.
//
// The anchor is captured once, on pinch-began, normalized to the view
// bounds, and stays fixed for the rest of the gesture. Pans require at
// least two touches; single-finger pans are not recognized and leave the
// state untouched.
//
// # Downstream adoption
//
// Hosts should run bridge output through a Filter before re-rendering: it
// suppresses jitter by adopting a new zoom only when it moved more than
// ZoomEpsilon and a new drag only when either axis moved more than
// DragEpsilon.
//
// # Reset
//
// When a gesture ends (ended and cancelled are treated identically) the
// state deactivates and the host animates back to rest. The animation
// itself belongs to the host; ResetTween provides the eased interpolation
// to sample, and its Done state (exactly Rest()) clears the captured
// anchor so a stale anchor can never leak into the next gesture.
package gesture
