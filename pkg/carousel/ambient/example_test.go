package ambient_test

import (
	"fmt"

	"github.com/driftui/drift/pkg/carousel/ambient"
)

func ExampleWeights() {
	// Halfway between slides 1 and 2: they split the crossfade evenly.
	for _, w := range ambient.Weights(1.5, 4) {
		fmt.Printf("%.1f ", w)
	}
	fmt.Println()
	// Output:
	// 0.0 0.5 0.5 0.0
}

func ExampleCompositeOrder() {
	fmt.Println(ambient.CompositeOrder(4))
	// Output:
	// [3 2 1 0]
}
