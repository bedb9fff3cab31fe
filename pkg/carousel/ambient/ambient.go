// Package ambient implements the ambient carousel blend engine: a stack of
// full-bleed backdrop slides crossfading behind the foreground cards as the
// user scrolls.
//
// The engine maps continuous scroll progress to per-slide opacity with a
// triangular weight: 1 at the centered slide, falling linearly to 0 at a
// distance of one slide, 0 beyond. The backdrop stack composites
// back-to-front (reverse index order) so lower-opacity neighbors never
// occlude the centered slide, and a single blur + darkening overlay +
// vertical gradient mask applies to the composited stack rather than to
// each slide.
package ambient

import (
	"github.com/driftui/drift/pkg/carousel"
	"github.com/driftui/drift/pkg/geom"
)

// Progress converts a horizontal content offset into scroll progress in
// item-count units, using the configured item width and spacing. The host
// observes the offset; the engine only scales it.
func Progress(contentOffsetX float64, cfg carousel.AmbientConfig) float64 {
	stride := cfg.ItemWidth + cfg.ItemSpacing
	if stride == 0 {
		return 0
	}
	return contentOffsetX / stride
}

// Weight returns the crossfade opacity of the backdrop slide at index i for
// the given scroll progress: max(0, 1 − |progress − i|).
func Weight(progress float64, i int) float64 {
	return max(0, 1-geom.Abs(progress-float64(i)))
}

// Weights computes the opacity of every backdrop slide at once. At most two
// adjacent slides carry non-zero weight for any progress value.
func Weights(progress float64, slideCount int) []float64 {
	w := make([]float64, slideCount)
	for i := range w {
		w[i] = Weight(progress, i)
	}
	return w
}

// CompositeOrder returns the slide indices in back-to-front draw order,
// which is reverse index order.
func CompositeOrder(slideCount int) []int {
	order := make([]int, slideCount)
	for i := range order {
		order[i] = slideCount - 1 - i
	}
	return order
}

// Overlay describes the static treatment applied once to the composited
// backdrop stack. It is a description for the host to execute, not an
// effect implementation.
type Overlay struct {
	// BlurRadius of the backdrop blur in host units.
	BlurRadius float64

	// DarkenOpacity of the uniform darkening layer in [0, 1].
	DarkenOpacity float64

	// GradientStart and GradientEnd bound the vertical gradient mask as
	// fractions of backdrop height, top to bottom. The mask fades the
	// backdrop out between the two stops.
	GradientStart float64
	GradientEnd   float64
}

// OverlayFor extracts the backdrop treatment from the configuration.
func OverlayFor(cfg carousel.AmbientConfig) Overlay {
	return Overlay{
		BlurRadius:    cfg.BlurRadius,
		DarkenOpacity: cfg.DarkenOpacity,
		GradientStart: cfg.GradientStart,
		GradientEnd:   cfg.GradientEnd,
	}
}
