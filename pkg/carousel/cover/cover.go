// Package cover implements the cover-flow carousel metrics: per-card width,
// scale, opacity, mask height, and offset correction derived from the card's
// continuous scroll position.
//
// Metrics must be recomputed on every scroll observation; there is nothing
// to cache, the whole point is that they track the live offset.
//
// Scale and opacity decay linearly with distance from the focused position
// and are deliberately not clamped below 0. Hosts must treat negative values
// as 0 when rendering; the overshoot is part of the contract so that
// downstream consumers can detect how far past the fade-out point a card
// has traveled.
package cover

import "github.com/driftui/drift/pkg/carousel"

// Metrics are the per-card visual parameters at one scroll position.
type Metrics struct {
	// Progress is the card's signed, unbounded distance from the focused
	// position in card units: 0 when aligned, negative once scrolled past,
	// positive while upcoming.
	Progress float64

	// ResizedWidth is the card's width after shrinking toward the
	// configured minimum as it leaves focus, in either direction.
	ResizedWidth float64

	// Scale is 1 − scaleValue·|progress|, unclamped.
	Scale float64

	// Opacity is 1 − opacityValue·|progress|, unclamped.
	Opacity float64

	// MaskHeight keeps the visual bottom edge unclipped while the card
	// scales. Equal to the raw height when scaling is disabled.
	MaskHeight float64

	// TotalOffset is the horizontal correction that keeps the shrinking
	// card's focal edge stable.
	TotalOffset float64
}

// Progress converts a card's scroll-relative leading-edge position into
// focus progress in card units.
func Progress(minX float64, cfg carousel.CoverConfig) float64 {
	return minX / (cfg.CardWidth + cfg.Spacing)
}

// Compute derives the metrics for one card.
//
// minX is the distance from the scroll viewport's leading edge to the
// card's leading edge. baseWidth and height are the card's natural size as
// measured by the host's layout pass.
func Compute(minX, baseWidth, height float64, cfg carousel.CoverConfig) Metrics {
	diffWidth := cfg.CardWidth - cfg.MinimumCardWidth
	progress := Progress(minX, cfg)
	absProgress := progress
	if absProgress < 0 {
		absProgress = -absProgress
	}

	// Width shrinks as the card scrolls away from focus in either
	// direction, capped so it never drops below the minimum width nor
	// grows above the base.
	reducingWidth := diffWidth * progress
	cappedWidth := min(diffWidth, reducingWidth)
	resizedWidth := baseWidth
	if minX > 0 {
		resizedWidth -= cappedWidth
	} else {
		resizedWidth -= min(-cappedWidth, diffWidth)
	}

	scale := 1 - cfg.ScaleValue*absProgress

	maskHeight := height
	if cfg.HasScale {
		maskHeight = scale * height
	}

	// Composite correction keeping the shrinking card's focal edge stable.
	totalOffset := -reducingWidth + min(progress, 1)*diffWidth + max(-progress, 0)*diffWidth

	return Metrics{
		Progress:     progress,
		ResizedWidth: resizedWidth,
		Scale:        scale,
		Opacity:      1 - cfg.OpacityValue*absProgress,
		MaskHeight:   maskHeight,
		TotalOffset:  totalOffset,
	}
}
