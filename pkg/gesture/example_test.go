package gesture_test

import (
	"fmt"

	"github.com/driftui/drift/pkg/geom"
	"github.com/driftui/drift/pkg/gesture"
)

func ExampleReduce() {
	s := gesture.Rest()

	s = gesture.Reduce(s, gesture.Event{
		Kind:     gesture.KindPinch,
		Phase:    gesture.PhaseBegan,
		Scale:    2,
		Location: geom.Point{X: 50, Y: 50},
		Bounds:   geom.Size{Width: 100, Height: 100},
	})
	fmt.Printf("active %v zoom %.1f anchor (%.1f, %.1f)\n", s.Active, s.Zoom, s.Anchor.X, s.Anchor.Y)

	s = gesture.Reduce(s, gesture.Event{Kind: gesture.KindPinch, Phase: gesture.PhaseEnded})
	fmt.Println("active", s.Active)
	// Output:
	// active true zoom 2.0 anchor (0.5, 0.5)
	// active false
}

func ExampleSnappyEase() {
	fmt.Printf("%.3f %.3f %.3f\n", gesture.SnappyEase(0), gesture.SnappyEase(0.5), gesture.SnappyEase(1))
	// Output:
	// 0.000 0.875 1.000
}
