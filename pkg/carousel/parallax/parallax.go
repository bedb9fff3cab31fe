// Package parallax computes the inner-content offset that makes a card's
// content drift slower than the card itself during scroll.
//
// The host applies the returned value as a negative offset on the content
// layer; the card keeps its own scroll motion, so the content appears to
// trail behind it.
package parallax

import "github.com/driftui/drift/pkg/carousel"

// LeadingInset is the fixed leading-edge bias, in host units, correcting
// for the scroll container's inset before the parallax factor applies.
const LeadingInset = 30.0

// Offset computes the parallax offset for a card whose leading edge sits at
// minX in scroll space. The result is capped at one card-width's worth of
// parallax so the content never translates past its own card.
func Offset(minX, cardWidth float64, cfg carousel.ParallaxConfig) float64 {
	return min((minX-LeadingInset)*cfg.Scale, cardWidth*cfg.Scale)
}
