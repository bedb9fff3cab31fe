package stack_test

import (
	"fmt"

	"github.com/driftui/drift/pkg/carousel"
	"github.com/driftui/drift/pkg/carousel/stack"
)

func ExampleVisualProps() {
	cfg := carousel.DefaultStackConfig()
	for offset := -1; offset <= 2; offset++ {
		p := stack.VisualProps(offset, 5, cfg)
		fmt.Printf("offset %+d: scale %.1f xOffset %+.0f z %d opacity %.0f\n",
			offset, p.Scale, p.XOffset, p.ZIndex, p.Opacity)
	}
	// Output:
	// offset -1: scale 0.9 xOffset -40 z 4 opacity 1
	// offset +0: scale 1.0 xOffset +0 z 5 opacity 1
	// offset +1: scale 0.9 xOffset +40 z 4 opacity 1
	// offset +2: scale 0.8 xOffset +80 z 3 opacity 1
}

func ExampleIndexAfterDrag() {
	fmt.Println(stack.IndexAfterDrag(1, 5, -60)) // past the threshold, advance
	fmt.Println(stack.IndexAfterDrag(1, 5, 10))  // short drag, snap back
	fmt.Println(stack.IndexAfterDrag(0, 5, 60))  // clamped at the first card
	// Output:
	// 2
	// 1
	// 0
}

func ExampleIndexAfterTap() {
	next, activate := stack.IndexAfterTap(0, 3)
	fmt.Println(next, activate)
	next, activate = stack.IndexAfterTap(3, 3)
	fmt.Println(next, activate)
	// Output:
	// 1 false
	// 3 true
}
