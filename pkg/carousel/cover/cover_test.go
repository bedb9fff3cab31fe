package cover

import (
	"math"
	"testing"

	"github.com/driftui/drift/pkg/carousel"
)

func testConfig() carousel.CoverConfig {
	return carousel.CoverConfig{
		CardWidth:        280,
		MinimumCardWidth: 80,
		Spacing:          10,
		ScaleValue:       0.2,
		OpacityValue:     0.5,
		HasScale:         true,
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeFocused(t *testing.T) {
	// A perfectly aligned card carries no transform at all.
	cfg := testConfig()
	m := Compute(0, cfg.CardWidth, 400, cfg)

	if m.Progress != 0 {
		t.Errorf("Progress = %v, want 0", m.Progress)
	}
	if m.Scale != 1 {
		t.Errorf("Scale = %v, want 1", m.Scale)
	}
	if m.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", m.Opacity)
	}
	if m.ResizedWidth != cfg.CardWidth {
		t.Errorf("ResizedWidth = %v, want %v", m.ResizedWidth, cfg.CardWidth)
	}
	if m.TotalOffset != 0 {
		t.Errorf("TotalOffset = %v, want 0", m.TotalOffset)
	}
	if m.MaskHeight != 400 {
		t.Errorf("MaskHeight = %v, want 400", m.MaskHeight)
	}
}

func TestProgress(t *testing.T) {
	cfg := testConfig() // cardWidth+spacing = 290
	tests := []struct {
		name string
		minX float64
		want float64
	}{
		{name: "aligned", minX: 0, want: 0},
		{name: "one card upcoming", minX: 290, want: 1},
		{name: "half card past", minX: -145, want: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.minX, cfg); !approxEqual(got, tt.want) {
				t.Errorf("Progress(%v) = %v, want %v", tt.minX, got, tt.want)
			}
		})
	}
}

func TestComputeWidthShrinksBothDirections(t *testing.T) {
	cfg := testConfig()
	base := cfg.CardWidth

	upcoming := Compute(145, base, 400, cfg)  // progress 0.5
	scrolled := Compute(-145, base, 400, cfg) // progress -0.5

	wantShrunk := base - (cfg.CardWidth-cfg.MinimumCardWidth)*0.5
	if !approxEqual(upcoming.ResizedWidth, wantShrunk) {
		t.Errorf("upcoming ResizedWidth = %v, want %v", upcoming.ResizedWidth, wantShrunk)
	}
	if !approxEqual(scrolled.ResizedWidth, wantShrunk) {
		t.Errorf("scrolled ResizedWidth = %v, want %v", scrolled.ResizedWidth, wantShrunk)
	}
}

func TestComputeWidthCappedAtMinimum(t *testing.T) {
	cfg := testConfig()
	base := cfg.CardWidth
	diff := cfg.CardWidth - cfg.MinimumCardWidth

	// Far beyond one card of travel in both directions: shrink stops at
	// diffWidth, so the width never drops below the minimum.
	far := Compute(290*3, base, 400, cfg)
	if !approxEqual(far.ResizedWidth, base-diff) {
		t.Errorf("far upcoming ResizedWidth = %v, want %v", far.ResizedWidth, base-diff)
	}

	farPast := Compute(-290*3, base, 400, cfg)
	if !approxEqual(farPast.ResizedWidth, base-diff) {
		t.Errorf("far past ResizedWidth = %v, want %v", farPast.ResizedWidth, base-diff)
	}
}

func TestComputeScaleOpacityLinearDecay(t *testing.T) {
	cfg := testConfig()

	m := Compute(290, cfg.CardWidth, 400, cfg) // progress exactly 1
	if !approxEqual(m.Scale, 0.8) {
		t.Errorf("Scale at progress 1 = %v, want 0.8", m.Scale)
	}
	if !approxEqual(m.Opacity, 0.5) {
		t.Errorf("Opacity at progress 1 = %v, want 0.5", m.Opacity)
	}

	// Decay is symmetric in |progress|.
	back := Compute(-290, cfg.CardWidth, 400, cfg)
	if !approxEqual(back.Scale, m.Scale) || !approxEqual(back.Opacity, m.Opacity) {
		t.Error("scale/opacity decay should be symmetric around focus")
	}
}

func TestComputeUnclampedBeyondFadeOut(t *testing.T) {
	// Three cards of travel: opacity = 1 - 0.5*3 = -0.5. The formula is
	// intentionally unclamped; hosts render negative values as 0.
	cfg := testConfig()
	m := Compute(290*3, cfg.CardWidth, 400, cfg)

	if !approxEqual(m.Opacity, -0.5) {
		t.Errorf("Opacity = %v, want -0.5 (unclamped)", m.Opacity)
	}
	if !approxEqual(m.Scale, 0.4) {
		t.Errorf("Scale = %v, want 0.4", m.Scale)
	}
}

func TestComputeMaskHeight(t *testing.T) {
	cfg := testConfig()

	withScale := Compute(145, cfg.CardWidth, 400, cfg) // progress 0.5, scale 0.9
	if !approxEqual(withScale.MaskHeight, 0.9*400) {
		t.Errorf("MaskHeight = %v, want %v", withScale.MaskHeight, 0.9*400)
	}

	cfg.HasScale = false
	without := Compute(145, cfg.CardWidth, 400, cfg)
	if without.MaskHeight != 400 {
		t.Errorf("MaskHeight without scale = %v, want 400", without.MaskHeight)
	}
}

func TestComputeTotalOffset(t *testing.T) {
	cfg := testConfig()
	diff := cfg.CardWidth - cfg.MinimumCardWidth

	tests := []struct {
		name string
		minX float64
		want float64
	}{
		// -reducing + min(p,1)*diff + max(-p,0)*diff
		{name: "focused", minX: 0, want: 0},
		{name: "upcoming half", minX: 145, want: -0.5*diff + 0.5*diff},
		{name: "upcoming two cards", minX: 580, want: -2*diff + diff},
		{name: "past half", minX: -145, want: 0.5*diff + -0.5*diff + 0.5*diff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compute(tt.minX, cfg.CardWidth, 400, cfg)
			if !approxEqual(m.TotalOffset, tt.want) {
				t.Errorf("TotalOffset(minX=%v) = %v, want %v", tt.minX, m.TotalOffset, tt.want)
			}
		})
	}
}
