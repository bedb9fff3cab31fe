package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/driftui/drift/pkg/geom"
	"github.com/driftui/drift/pkg/gesture"
	"github.com/driftui/drift/pkg/observability"
)

// zoomCommand creates the pinch-zoom bridge demo command.
func (c *CLI) zoomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zoom",
		Short: "Interactive demo of the pinch-zoom gesture bridge",
		Long: `Run an interactive terminal demo of the pinch-zoom bridge: keys feed
synthetic recognizer samples through the reducer and hysteresis filter, and
releasing the gesture plays the snap-back tween.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Logger.Debug("starting zoom demo")
			_, err := tea.NewProgram(newZoomModel()).Run()
			return err
		},
	}
	return cmd
}

// Demo gesture geometry: a fixed view with the synthetic pinch centroid
// placed off-center so the anchor capture is visible.
var (
	demoBounds   = geom.Size{Width: 400, Height: 300}
	demoCentroid = geom.Point{X: 300, Y: 100}
)

const (
	pinchStep = 0.15
	panStep   = 10.0

	// tweenDuration is the wall-clock length of the snap-back animation.
	tweenDuration = 300 * time.Millisecond
	tweenFPS      = 60
)

// tweenTickMsg drives the snap-back animation frames.
type tweenTickMsg time.Time

// zoomModel is the bubbletea model for the gesture bridge demo.
type zoomModel struct {
	state  gesture.ZoomState
	filter *gesture.Filter

	// scale is the synthetic pinch's cumulative scale while a pinch is live.
	scale    float64
	pinching bool

	// translation is the synthetic two-finger pan's cumulative translation.
	translation geom.Vec2
	panning     bool

	// tween animates the snap back to rest after the gesture ends.
	tween      *gesture.ResetTween
	tweenStart time.Time

	lastEvent string
}

func newZoomModel() zoomModel {
	return zoomModel{
		state:  gesture.Rest(),
		filter: gesture.NewFilter(),
		scale:  1,
	}
}

func (m zoomModel) Init() tea.Cmd {
	return nil
}

func (m zoomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tweenTickMsg:
		return m.stepTween(time.Time(msg))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "+", "=":
			m.feedPinch(pinchStep)
		case "-", "_":
			m.feedPinch(-pinchStep)

		case "up":
			m.feedPan(geom.Vec2{Y: -panStep})
		case "down":
			m.feedPan(geom.Vec2{Y: panStep})
		case "left":
			m.feedPan(geom.Vec2{X: -panStep})
		case "right":
			m.feedPan(geom.Vec2{X: panStep})

		case "enter", " ":
			return m.release()
		}
	}
	return m, nil
}

// feedPinch feeds one synthetic pinch sample into the reducer. The first
// sample of a gesture is the began phase that captures the anchor.
func (m *zoomModel) feedPinch(delta float64) {
	m.cancelTween()

	phase := gesture.PhaseChanged
	if !m.pinching {
		phase = gesture.PhaseBegan
		m.pinching = true
	}
	m.scale += delta

	e := gesture.Event{
		Kind:     gesture.KindPinch,
		Phase:    phase,
		Scale:    m.scale,
		Location: demoCentroid,
		Bounds:   demoBounds,
	}
	m.apply(e)
}

// feedPan feeds one synthetic two-finger pan sample into the reducer.
func (m *zoomModel) feedPan(delta geom.Vec2) {
	m.cancelTween()

	phase := gesture.PhaseChanged
	if !m.panning {
		phase = gesture.PhaseBegan
		m.panning = true
	}
	m.translation = m.translation.Add(delta)

	e := gesture.Event{
		Kind:        gesture.KindPan,
		Phase:       phase,
		Translation: m.translation,
		Touches:     gesture.MinPanTouches,
	}
	m.apply(e)
}

func (m *zoomModel) apply(e gesture.Event) {
	ctx := context.Background()
	observability.Gesture().OnEvent(ctx, e.Kind.String(), e.Phase.String())
	m.state = gesture.Reduce(m.state, e)
	if adopted, changed := m.filter.Offer(m.state); changed {
		observability.Gesture().OnAdopt(ctx, adopted.Zoom, adopted.Drag.X, adopted.Drag.Y)
	}
	m.lastEvent = fmt.Sprintf("%s %s", e.Kind, e.Phase)
}

// release ends whichever gestures are live and starts the snap-back tween.
func (m zoomModel) release() (tea.Model, tea.Cmd) {
	if !m.pinching && !m.panning {
		return m, nil
	}

	if m.pinching {
		m.apply(gesture.Event{Kind: gesture.KindPinch, Phase: gesture.PhaseEnded, Scale: m.scale})
		m.pinching = false
	}
	if m.panning {
		m.apply(gesture.Event{
			Kind:        gesture.KindPan,
			Phase:       gesture.PhaseEnded,
			Translation: m.translation,
			Touches:     gesture.MinPanTouches,
		})
		m.panning = false
	}
	m.scale = 1
	m.translation = geom.Vec2{}

	tween := gesture.NewResetTween(m.filter.Adopted())
	m.tween = &tween
	m.tweenStart = time.Now()
	m.lastEvent = "released: snapping back"
	return m, m.tickTween()
}

func (m zoomModel) tickTween() tea.Cmd {
	return tea.Tick(time.Second/tweenFPS, func(t time.Time) tea.Msg {
		return tweenTickMsg(t)
	})
}

// stepTween advances the snap-back animation one frame, committing the fully
// reset state when the tween completes.
func (m zoomModel) stepTween(now time.Time) (tea.Model, tea.Cmd) {
	if m.tween == nil {
		return m, nil
	}

	t := float64(now.Sub(m.tweenStart)) / float64(tweenDuration)
	if t >= 1 {
		m.state = m.tween.Done()
		m.filter.Reset()
		m.tween = nil
		observability.Gesture().OnReset(context.Background())
		m.lastEvent = "reset complete"
		return m, nil
	}

	m.state = m.tween.At(t)
	m.filter.Offer(m.state)
	return m, m.tickTween()
}

func (m *zoomModel) cancelTween() {
	m.tween = nil
}

func (m zoomModel) View() string {
	var b strings.Builder

	adopted := m.filter.Adopted()

	b.WriteString(StyleTitle.Render("Pinch Zoom"))
	b.WriteString("\n\n")

	status := "at rest"
	if adopted.Active {
		status = "gesture in flight"
	} else if m.tween != nil {
		status = "snapping back"
	}
	b.WriteString(StyleDim.Render(status))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  zoom    %s  %s\n", renderBar((adopted.Zoom-1)/3, 24), formatFloat(adopted.Zoom)))
	b.WriteString(fmt.Sprintf("  anchor  (%s, %s)\n", formatFloat(adopted.Anchor.X), formatFloat(adopted.Anchor.Y)))
	b.WriteString(fmt.Sprintf("  drag    (%.1f, %.1f)\n", adopted.Drag.X, adopted.Drag.Y))

	if m.lastEvent != "" {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("last: " + m.lastEvent))
	}
	b.WriteString("\n\n")
	b.WriteString(demoHelp("+/- pinch", "arrows two-finger pan", "enter release", "q quit"))
	b.WriteString("\n")

	return b.String()
}
