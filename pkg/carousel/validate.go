package carousel

import "github.com/driftui/drift/pkg/errors"

// Validation is opt-in: the engines themselves are total over their input
// domains and never check configs at call time. Callers that prefer to
// reject malformed configurations up front (e.g. when loading user-supplied
// manifests) can run these checks first.

func ratioInUnit(name string, v float64) error {
	if v < 0 || v > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s must be in [0, 1], got %v", name, v)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if v < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s must be non-negative, got %v", name, v)
	}
	return nil
}

// Validate checks the stack configuration's documented invariants.
func (c StackConfig) Validate() error {
	if err := ratioInUnit("card_size_difference_ratio", c.CardSizeDifferenceRatio); err != nil {
		return err
	}
	if err := nonNegative("card_offset_difference", c.CardOffsetDifference); err != nil {
		return err
	}
	if c.VisibleCardIndexDifference < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "visible_card_index_difference must be non-negative, got %d", c.VisibleCardIndexDifference)
	}
	return nil
}

// Validate checks the cover configuration's documented invariants.
func (c CoverConfig) Validate() error {
	if err := nonNegative("minimum_card_width", c.MinimumCardWidth); err != nil {
		return err
	}
	if c.CardWidth < c.MinimumCardWidth {
		return errors.New(errors.ErrCodeInvalidConfig, "card_width (%v) must be at least minimum_card_width (%v)", c.CardWidth, c.MinimumCardWidth)
	}
	if err := nonNegative("spacing", c.Spacing); err != nil {
		return err
	}
	if err := ratioInUnit("scale_value", c.ScaleValue); err != nil {
		return err
	}
	return ratioInUnit("opacity_value", c.OpacityValue)
}

// Validate checks the parallax configuration's documented invariants.
func (c ParallaxConfig) Validate() error {
	return nonNegative("scale", c.Scale)
}

// Validate checks the ambient configuration's documented invariants.
func (c AmbientConfig) Validate() error {
	if err := nonNegative("item_width", c.ItemWidth); err != nil {
		return err
	}
	if err := nonNegative("item_spacing", c.ItemSpacing); err != nil {
		return err
	}
	if err := nonNegative("blur_radius", c.BlurRadius); err != nil {
		return err
	}
	if err := ratioInUnit("darken_opacity", c.DarkenOpacity); err != nil {
		return err
	}
	if err := ratioInUnit("gradient_start", c.GradientStart); err != nil {
		return err
	}
	return ratioInUnit("gradient_end", c.GradientEnd)
}

// ValidateManifest validates every configuration section of a manifest.
func ValidateManifest(m Manifest) error {
	if err := m.Stack.Validate(); err != nil {
		return err
	}
	if err := m.Cover.Validate(); err != nil {
		return err
	}
	if err := m.Parallax.Validate(); err != nil {
		return err
	}
	return m.Ambient.Validate()
}
