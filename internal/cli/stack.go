package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/driftui/drift/pkg/carousel"
	"github.com/driftui/drift/pkg/carousel/stack"
	"github.com/driftui/drift/pkg/observability"
)

// stackCommand creates the stacked-deck demo command.
func (c *CLI) stackCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "stack",
		Short: "Interactive demo of the stacked carousel engine",
		Long: `Run an interactive terminal demo of the stacked carousel: arrow keys
simulate drag gestures, number keys simulate taps on a card.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}
			if len(m.Items) == 0 {
				return fmt.Errorf("manifest has no items")
			}

			c.Logger.Debug("starting stack demo", "items", len(m.Items))
			model := newStackModel(m)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "gallery manifest (TOML)")
	return cmd
}

// dragStep is the simulated drag translation per key press, comfortably past
// stack.DragThreshold so every press moves the deck.
const dragStep = stack.DragThreshold + 10

// stackModel is the bubbletea model for the stacked-deck demo.
type stackModel struct {
	items     carousel.Collection
	cfg       carousel.StackConfig
	current   int
	lastEvent string
}

func newStackModel(m carousel.Manifest) stackModel {
	return stackModel{
		items: m.Items,
		cfg:   m.Stack,
	}
}

func (m stackModel) Init() tea.Cmd {
	return nil
}

func (m stackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "left":
		// Dragging rightward reveals the previous card.
		m.commit(stack.IndexAfterDrag(m.current, len(m.items), dragStep))
		m.lastEvent = fmt.Sprintf("drag +%.0f", dragStep)
		return m, nil

	case "right":
		m.commit(stack.IndexAfterDrag(m.current, len(m.items), -dragStep))
		m.lastEvent = fmt.Sprintf("drag -%.0f", dragStep)
		return m, nil

	default:
		if n := int(key.String()[0] - '1'); len(key.String()) == 1 && n >= 0 && n < len(m.items) {
			next, activate := stack.IndexAfterTap(m.current, n)
			m.commit(next)
			if activate {
				m.lastEvent = fmt.Sprintf("tap %d: activated %q", n+1, m.items[n].Title)
			} else {
				m.lastEvent = fmt.Sprintf("tap %d: stepped toward it", n+1)
			}
		}
		return m, nil
	}
}

// commit moves the current index and reports the change.
func (m *stackModel) commit(next int) {
	if next != m.current {
		observability.Layout().OnIndexChange(context.Background(), "stack", m.current, next)
		m.current = next
	}
}

func (m stackModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Stacked Deck"))
	b.WriteString("\n\n")

	// Draw back-to-front so nearer cards visually stack on top.
	type placed struct {
		index int
		props stack.Props
	}
	cards := make([]placed, 0, len(m.items))
	for i := range m.items {
		p := stack.VisualProps(i-m.current, len(m.items), m.cfg)
		if p.Opacity == 0 {
			continue
		}
		cards = append(cards, placed{index: i, props: p})
	}
	sort.Slice(cards, func(a, b int) bool { return cards[a].props.ZIndex < cards[b].props.ZIndex })

	row := make([]string, 0, len(cards))
	for _, c := range cards {
		row = append(row, renderCard(m.items[c.index].Title, c.props.Scale, c.index == m.current, c.props.Selected))
	}
	b.WriteString(strings.Join(row, " "))
	b.WriteString("\n\n")

	for i, item := range m.items {
		p := stack.VisualProps(i-m.current, len(m.items), m.cfg)
		marker := "  "
		if i == m.current {
			marker = StyleHighlight.Render("▸ ")
		}
		line := fmt.Sprintf("%s%-16s scale %s  offset %7.1f  z %2d  opacity %.0f",
			marker, item.Title, formatFloat(p.Scale), p.XOffset, p.ZIndex, p.Opacity)
		if i == m.current {
			b.WriteString(StyleValue.Render(line))
		} else {
			b.WriteString(StyleDim.Render(line))
		}
		b.WriteString("\n")
	}

	if m.lastEvent != "" {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("last: " + m.lastEvent))
	}
	b.WriteString("\n\n")
	b.WriteString(demoHelp("←/→ drag", "1-9 tap", "q quit"))
	b.WriteString("\n")

	return b.String()
}
