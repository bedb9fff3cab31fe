package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/driftui/drift/pkg/carousel"
	"github.com/driftui/drift/pkg/carousel/cover"
	"github.com/driftui/drift/pkg/carousel/parallax"
	"github.com/driftui/drift/pkg/observability"
)

// coverCommand creates the cover-flow demo command.
func (c *CLI) coverCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Interactive demo of the cover-flow metrics",
		Long: `Run an interactive terminal demo of the cover-flow carousel: arrow keys
scroll the strip and the per-card metrics track the live offset, including
the inner-content parallax.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}
			if len(m.Items) == 0 {
				return fmt.Errorf("manifest has no items")
			}

			c.Logger.Debug("starting cover demo", "items", len(m.Items))
			_, err = tea.NewProgram(newCoverModel(m)).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "gallery manifest (TOML)")
	return cmd
}

// scrollStep is the offset change per key press in host units.
const scrollStep = 20.0

// coverModel is the bubbletea model for the cover-flow demo.
type coverModel struct {
	items    carousel.Collection
	cfg      carousel.CoverConfig
	parallax carousel.ParallaxConfig

	// offset is the scroll position of the strip's leading edge.
	offset float64

	// baseHeight stands in for the host layout pass's measured card height.
	baseHeight float64
}

func newCoverModel(m carousel.Manifest) coverModel {
	return coverModel{
		items:      m.Items,
		cfg:        m.Cover,
		parallax:   m.Parallax,
		baseHeight: 180,
	}
}

func (m coverModel) Init() tea.Cmd {
	return nil
}

func (m coverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left":
		m.scroll(-scrollStep)
	case "right":
		m.scroll(scrollStep)
	case "home":
		m.scroll(-m.offset)
	}
	return m, nil
}

func (m *coverModel) scroll(delta float64) {
	m.offset += delta
	observability.Layout().OnScrollObservation(context.Background(), "cover", cover.Progress(m.offset, m.cfg))
}

// minXFor returns the card's leading-edge distance from the viewport's
// leading edge at the current scroll position.
func (m coverModel) minXFor(i int) float64 {
	return float64(i)*(m.cfg.CardWidth+m.cfg.Spacing) - m.offset
}

func (m coverModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Cover Flow"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("offset %.0f", m.offset)))
	b.WriteString("\n\n")

	// Strip of cards sized by their resized widths.
	row := make([]string, 0, len(m.items))
	for i, item := range m.items {
		metrics := cover.Compute(m.minXFor(i), m.cfg.CardWidth, m.baseHeight, m.cfg)
		scale := metrics.ResizedWidth / m.cfg.CardWidth
		row = append(row, renderCard(item.Title, scale, isFocused(metrics.Progress), false))
	}
	b.WriteString(strings.Join(row, " "))
	b.WriteString("\n\n")

	for i, item := range m.items {
		minX := m.minXFor(i)
		metrics := cover.Compute(minX, m.cfg.CardWidth, m.baseHeight, m.cfg)
		content := parallax.Offset(minX, m.cfg.CardWidth, m.parallax)

		marker := "  "
		if isFocused(metrics.Progress) {
			marker = StyleHighlight.Render("▸ ")
		}
		line := fmt.Sprintf("%s%-16s progress %7s  width %6.1f  scale %s  opacity %s  mask %6.1f  shift %7.1f  parallax %7.1f",
			marker, item.Title,
			formatFloat(metrics.Progress), metrics.ResizedWidth,
			formatFloat(metrics.Scale), formatFloat(metrics.Opacity),
			metrics.MaskHeight, metrics.TotalOffset, content)
		if isFocused(metrics.Progress) {
			b.WriteString(StyleValue.Render(line))
		} else {
			b.WriteString(StyleDim.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(demoHelp("←/→ scroll", "home reset", "q quit"))
	b.WriteString("\n")

	return b.String()
}

// isFocused marks the card whose progress is within half a card of focus.
func isFocused(progress float64) bool {
	return progress >= -0.5 && progress < 0.5
}
