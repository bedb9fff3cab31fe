package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftui/drift/pkg/grid"
)

// gridCommand creates the grid layout command.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		width   float64
		count   int
		minItem float64
		spacing float64
		aspect  float64
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the adaptive grid layout for a container width",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := grid.Config{
				MinItemWidth:    minItem,
				Spacing:         spacing,
				ItemAspectRatio: aspect,
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			layout := grid.Compute(width, count, cfg)
			c.Logger.Debug("computed grid", "columns", layout.Columns, "rows", layout.Rows)

			printKeyValue("container", fmt.Sprintf("%.0f", width))
			printKeyValue("columns", fmt.Sprintf("%d", layout.Columns))
			printKeyValue("rows", fmt.Sprintf("%d", layout.Rows))
			printKeyValue("cell", fmt.Sprintf("%.1f × %.1f", layout.CellSize.Width, layout.CellSize.Height))
			printKeyValue("height", fmt.Sprintf("%.1f", layout.ContentHeight))

			for i, f := range layout.Frames(count, cfg) {
				printDetail("item %2d  (%.1f, %.1f)", i, f.Origin.X, f.Origin.Y)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&width, "width", "w", 390, "container width in host units")
	cmd.Flags().IntVarP(&count, "count", "n", 6, "number of items to lay out")
	cmd.Flags().Float64Var(&minItem, "min-item-width", 120, "minimum cell width")
	cmd.Flags().Float64Var(&spacing, "spacing", 12, "gap between cells")
	cmd.Flags().Float64Var(&aspect, "aspect", 1, "cell width/height ratio")
	return cmd
}
