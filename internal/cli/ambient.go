package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/driftui/drift/pkg/carousel"
	"github.com/driftui/drift/pkg/carousel/ambient"
	"github.com/driftui/drift/pkg/observability"
)

// ambientCommand creates the ambient backdrop demo command.
func (c *CLI) ambientCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "ambient",
		Short: "Interactive demo of the ambient backdrop blend",
		Long: `Run an interactive terminal demo of the ambient carousel backdrop:
arrow keys scroll the foreground strip while the backdrop slide weights
crossfade behind it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}
			if len(m.Items) == 0 {
				return fmt.Errorf("manifest has no items")
			}

			c.Logger.Debug("starting ambient demo", "items", len(m.Items))
			_, err = tea.NewProgram(newAmbientModel(m)).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "gallery manifest (TOML)")
	return cmd
}

// ambientModel is the bubbletea model for the ambient backdrop demo.
type ambientModel struct {
	items  carousel.Collection
	cfg    carousel.AmbientConfig
	offset float64
}

func newAmbientModel(m carousel.Manifest) ambientModel {
	return ambientModel{
		items: m.Items,
		cfg:   m.Ambient,
	}
}

func (m ambientModel) Init() tea.Cmd {
	return nil
}

func (m ambientModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m *ambientModel) scroll(delta float64) {
	m.offset += delta
	observability.Layout().OnScrollObservation(context.Background(), "ambient", ambient.Progress(m.offset, m.cfg))
}

func (m ambientModel) View() string {
	var b strings.Builder

	progress := ambient.Progress(m.offset, m.cfg)
	weights := ambient.Weights(progress, len(m.items))
	overlay := ambient.OverlayFor(m.cfg)

	b.WriteString(StyleTitle.Render("Ambient Backdrop"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("offset %.0f  ·  progress %s", m.offset, formatFloat(progress))))
	b.WriteString("\n\n")

	for i, item := range m.items {
		marker := "  "
		if weights[i] > 0.5 {
			marker = StyleHighlight.Render("▸ ")
		}
		line := fmt.Sprintf("%s%-16s %s %s", marker, item.Title, renderBar(weights[i], 24), formatFloat(weights[i]))
		b.WriteString(line)
		b.WriteString("\n")
	}

	order := ambient.CompositeOrder(len(m.items))
	parts := make([]string, len(order))
	for i, idx := range order {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("composite (back→front): " + strings.Join(parts, " ")))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("overlay: blur %.0f  darken %.2f  gradient %.2f→%.2f",
		overlay.BlurRadius, overlay.DarkenOpacity, overlay.GradientStart, overlay.GradientEnd)))
	b.WriteString("\n\n")
	b.WriteString(demoHelp("←/→ scroll", "home reset", "q quit"))
	b.WriteString("\n")

	return b.String()
}
