package carousel

// =============================================================================
// Stack Carousel Configuration
// =============================================================================

// StackConfig describes the geometry of a stacked carousel: a deck of cards
// where the current card sits front and center and neighbors recede behind
// it with decreasing scale and increasing horizontal offset.
//
// Invariants (caller contract, not validated by engines):
//   - CardSizeDifferenceRatio in [0, 1]
//   - CardOffsetDifference >= 0
//   - VisibleCardIndexDifference >= 0
type StackConfig struct {
	// CardSizeDifferenceRatio is the scale lost per step of distance from
	// the current card. With 0.1, the neighbor renders at 0.9, the card
	// behind it at 0.8, and so on.
	CardSizeDifferenceRatio float64 `toml:"card_size_difference_ratio"`

	// CardOffsetDifference is the horizontal shift, in host units, applied
	// per step of distance from the current card.
	CardOffsetDifference float64 `toml:"card_offset_difference"`

	// VisibleCardIndexDifference is the furthest distance from the current
	// card that still renders. Cards beyond it get opacity 0 (hard cutoff,
	// no fade).
	VisibleCardIndexDifference int `toml:"visible_card_index_difference"`

	// ShowSelected renders a selection highlight on the current card.
	ShowSelected bool `toml:"show_selected"`
}

// DefaultStackConfig returns the stock stacked-deck geometry.
func DefaultStackConfig() StackConfig {
	return StackConfig{
		CardSizeDifferenceRatio:    0.1,
		CardOffsetDifference:       40,
		VisibleCardIndexDifference: 2,
		ShowSelected:               false,
	}
}

// =============================================================================
// Cover Carousel Configuration
// =============================================================================

// CoverConfig describes a cover-flow style carousel: full-width cards that
// shrink toward a minimum width and fade as they scroll away from the
// focused position.
//
// Invariants (caller contract): CardWidth >= MinimumCardWidth >= 0,
// Spacing >= 0, ScaleValue and OpacityValue in [0, 1].
type CoverConfig struct {
	// CardWidth is the full width of a focused card in host units.
	CardWidth float64 `toml:"card_width"`

	// MinimumCardWidth is the width a card shrinks to as it leaves focus.
	MinimumCardWidth float64 `toml:"minimum_card_width"`

	// Spacing is the gap between adjacent cards.
	Spacing float64 `toml:"spacing"`

	// ScaleValue is the scale lost per unit of scroll progress away from
	// focus. The resulting scale is deliberately not clamped below 0; hosts
	// must treat negative values as 0 when rendering.
	ScaleValue float64 `toml:"scale_value"`

	// OpacityValue is the opacity lost per unit of scroll progress away
	// from focus. Unclamped, same host responsibility as ScaleValue.
	OpacityValue float64 `toml:"opacity_value"`

	// HasScale enables the height mask that keeps the visual bottom edge
	// unclipped while the card scales.
	HasScale bool `toml:"has_scale"`
}

// DefaultCoverConfig returns the stock cover-flow geometry.
func DefaultCoverConfig() CoverConfig {
	return CoverConfig{
		CardWidth:        280,
		MinimumCardWidth: 80,
		Spacing:          10,
		ScaleValue:       0.2,
		OpacityValue:     0.5,
		HasScale:         true,
	}
}

// =============================================================================
// Parallax Configuration
// =============================================================================

// ParallaxConfig describes the inner-content parallax applied to cover
// cards: the content drifts slower than the card itself during scroll.
type ParallaxConfig struct {
	// Scale is the fraction of scroll distance the inner content trails by.
	// 0 disables the effect; values are typically well below 1.
	Scale float64 `toml:"scale"`
}

// DefaultParallaxConfig returns the stock parallax strength.
func DefaultParallaxConfig() ParallaxConfig {
	return ParallaxConfig{Scale: 0.5}
}

// =============================================================================
// Ambient Carousel Configuration
// =============================================================================

// AmbientConfig describes an ambient carousel: foreground cards over a
// full-bleed backdrop stack that crossfades between neighboring slides as
// the user scrolls, with a single blur/darken/gradient treatment applied to
// the composited stack.
type AmbientConfig struct {
	// ItemWidth is the width of one foreground card in host units, used to
	// derive scroll progress in item-count units.
	ItemWidth float64 `toml:"item_width"`

	// ItemSpacing is the gap between foreground cards, part of the same
	// progress derivation.
	ItemSpacing float64 `toml:"item_spacing"`

	// BlurRadius is the backdrop blur radius in host units.
	BlurRadius float64 `toml:"blur_radius"`

	// DarkenOpacity is the opacity of the darkening overlay in [0, 1].
	DarkenOpacity float64 `toml:"darken_opacity"`

	// GradientStart and GradientEnd bound the vertical gradient mask as
	// fractions of backdrop height, top to bottom.
	GradientStart float64 `toml:"gradient_start"`
	GradientEnd   float64 `toml:"gradient_end"`
}

// DefaultAmbientConfig returns the stock ambient backdrop treatment.
func DefaultAmbientConfig() AmbientConfig {
	return AmbientConfig{
		ItemWidth:     300,
		ItemSpacing:   16,
		BlurRadius:    90,
		DarkenOpacity: 0.35,
		GradientStart: 0.5,
		GradientEnd:   1.0,
	}
}
