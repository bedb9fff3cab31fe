package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/driftui/drift/pkg/carousel"
)

// =============================================================================
// Demo Styles
// =============================================================================

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			Align(lipgloss.Center)

	cardCurrentStyle = cardStyle.
				BorderForeground(colorCyan).
				Foreground(colorWhite).
				Bold(true)

	cardSelectedStyle = cardCurrentStyle.
				BorderForeground(colorGreen)

	demoHelpStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Manifest Loading
// =============================================================================

// loadManifest reads and validates the manifest at path, or returns the
// built-in sample gallery when path is empty.
func loadManifest(path string) (carousel.Manifest, error) {
	if path == "" {
		return sampleManifest(), nil
	}
	m, err := carousel.LoadManifestFile(path)
	if err != nil {
		return carousel.Manifest{}, err
	}
	if err := carousel.ValidateManifest(m); err != nil {
		return carousel.Manifest{}, err
	}
	return m, nil
}

// sampleManifest is the gallery the demos fall back to when no manifest is
// given. Its references cover all three classification kinds.
func sampleManifest() carousel.Manifest {
	m := carousel.DefaultManifest()
	m.Title = "Sample Gallery"
	m.Items = carousel.Collection{
		carousel.NewItem("Sunset Beach", "https://images.example.com/sunset-beach.jpg"),
		carousel.NewItem("Mountain Lake", "https://images.example.com/mountain-lake.jpg"),
		carousel.NewItem("City Nights", "city-nights"),
		carousel.NewItem("Forest Trail", "forest-trail"),
		carousel.NewItem("Desert Dunes", "photo.on.rectangle"),
	}
	return m
}

// =============================================================================
// Rendering Helpers
// =============================================================================

// renderCard draws one card box sized by its render scale. Scale below the
// readable minimum collapses to a sliver; negative scale renders nothing,
// matching the engines' contract that hosts clamp at draw time.
func renderCard(title string, scale float64, current, selected bool) string {
	if scale <= 0 {
		return ""
	}
	width := int(16 * scale)
	if width < 4 {
		width = 4
	}
	if len(title) > width {
		title = title[:width]
	}

	style := cardStyle
	switch {
	case selected:
		style = cardSelectedStyle
	case current:
		style = cardCurrentStyle
	}
	return style.Width(width).Render(title)
}

// renderBar draws a proportional bar for a unit-range value, clamping the
// unclamped engine outputs at the edges of the display.
func renderBar(value float64, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value * float64(width))
	return StyleHighlight.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
}

// demoHelp formats the key legend shown under every demo.
func demoHelp(bindings ...string) string {
	return demoHelpStyle.Render(strings.Join(bindings, "  ·  "))
}

// formatFloat trims a float for the metric tables.
func formatFloat(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
