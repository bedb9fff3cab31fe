// Package grid computes simple adaptive tiling layouts.
//
// Given a container width, a minimum item width, and the spacing between
// cells, the layout picks the largest column count whose cells stay at or
// above the minimum width, then stretches the cells to fill the container.
// Items flow row by row in collection order. There is no virtualization;
// every item gets a frame.
package grid

import (
	"math"

	"github.com/driftui/drift/pkg/errors"
	"github.com/driftui/drift/pkg/geom"
)

// Config describes an adaptive grid.
type Config struct {
	// MinItemWidth is the smallest width a cell may take. The layout fits
	// as many columns as it can without shrinking cells below this.
	MinItemWidth float64 `toml:"min_item_width"`

	// Spacing is the gap between adjacent cells, both horizontally and
	// vertically.
	Spacing float64 `toml:"spacing"`

	// ItemAspectRatio is width divided by height for each cell. Zero or
	// negative means square cells.
	ItemAspectRatio float64 `toml:"item_aspect_ratio"`
}

// DefaultConfig returns a grid sized for thumbnail tiles.
func DefaultConfig() Config {
	return Config{
		MinItemWidth:    120,
		Spacing:         12,
		ItemAspectRatio: 1,
	}
}

// Validate reports whether the configuration can produce a layout.
func (c Config) Validate() error {
	if c.MinItemWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "min_item_width must be positive, got %g", c.MinItemWidth)
	}
	if c.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "spacing must be non-negative, got %g", c.Spacing)
	}
	return nil
}

// Layout is the computed tiling for a container width and item count.
type Layout struct {
	// Columns is the number of cells per row, at least 1.
	Columns int

	// CellSize is the stretched size of each cell.
	CellSize geom.Size

	// Rows is the number of rows needed for the item count.
	Rows int

	// ContentHeight is the total height of the tiled content including
	// inter-row spacing.
	ContentHeight float64
}

// Columns returns how many cells of at least cfg.MinItemWidth fit in
// containerWidth with cfg.Spacing between them. Any positive width yields
// at least one column.
func Columns(containerWidth float64, cfg Config) int {
	if containerWidth <= cfg.MinItemWidth {
		return 1
	}
	// n cells need n*min + (n-1)*spacing points of width.
	n := int(math.Floor((containerWidth + cfg.Spacing) / (cfg.MinItemWidth + cfg.Spacing)))
	return max(n, 1)
}

// Compute lays out count items inside containerWidth.
func Compute(containerWidth float64, count int, cfg Config) Layout {
	cols := Columns(containerWidth, cfg)

	cellWidth := (containerWidth - float64(cols-1)*cfg.Spacing) / float64(cols)
	if cellWidth < 0 {
		cellWidth = containerWidth
	}
	ratio := cfg.ItemAspectRatio
	if ratio <= 0 {
		ratio = 1
	}
	cellHeight := cellWidth / ratio

	rows := 0
	if count > 0 {
		rows = (count + cols - 1) / cols
	}
	height := 0.0
	if rows > 0 {
		height = float64(rows)*cellHeight + float64(rows-1)*cfg.Spacing
	}

	return Layout{
		Columns:       cols,
		CellSize:      geom.Size{Width: cellWidth, Height: cellHeight},
		Rows:          rows,
		ContentHeight: height,
	}
}

// Frame returns the rectangle for the item at index within the layout.
// Indices beyond the laid-out count still produce frames on the same flow.
func (l Layout) Frame(index int, cfg Config) geom.Rect {
	col := index % l.Columns
	row := index / l.Columns
	return geom.Rect{
		Origin: geom.Point{
			X: float64(col) * (l.CellSize.Width + cfg.Spacing),
			Y: float64(row) * (l.CellSize.Height + cfg.Spacing),
		},
		Size: l.CellSize,
	}
}

// Frames returns the rectangles for count items in row-major order.
func (l Layout) Frames(count int, cfg Config) []geom.Rect {
	frames := make([]geom.Rect, count)
	for i := range frames {
		frames[i] = l.Frame(i, cfg)
	}
	return frames
}
