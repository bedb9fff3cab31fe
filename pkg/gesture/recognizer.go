package gesture

// Recognizer identifies a gesture recognizer in the simultaneous-recognition
// negotiation.
type Recognizer int

const (
	RecognizerPinch Recognizer = iota
	RecognizerPan
)

// AllowSimultaneous is the recognizer negotiation policy: it answers
// whether the asking recognizer may run at the same time as the other one.
//
// The policy is deliberately asymmetric. The pan recognizer asking about
// the pinch gets yes, so a two-finger drag can zoom and translate at once.
// The pinch asking about the pan gets no: the negotiation has a single
// authoritative direction, which prevents both recognizers from churning
// the same state twice per sample.
func AllowSimultaneous(asking, other Recognizer) bool {
	return asking == RecognizerPan && other == RecognizerPinch
}
