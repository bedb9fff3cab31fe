package grid_test

import (
	"fmt"

	"github.com/driftui/drift/pkg/grid"
)

func ExampleCompute() {
	cfg := grid.Config{MinItemWidth: 100, Spacing: 10, ItemAspectRatio: 1}
	l := grid.Compute(340, 5, cfg)
	fmt.Printf("%d columns, %d rows, cells %.1f wide\n", l.Columns, l.Rows, l.CellSize.Width)
	// Output:
	// 3 columns, 2 rows, cells 106.7 wide
}
