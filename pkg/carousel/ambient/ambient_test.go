package ambient

import (
	"math"
	"testing"

	"github.com/driftui/drift/pkg/carousel"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		index    int
		want     float64
	}{
		{name: "centered slide", progress: 2.0, index: 2, want: 1.0},
		{name: "left neighbor at full distance", progress: 2.0, index: 1, want: 0.0},
		{name: "right neighbor at full distance", progress: 2.0, index: 3, want: 0.0},
		{name: "midway between slides", progress: 1.5, index: 1, want: 0.5},
		{name: "midway other side", progress: 1.5, index: 2, want: 0.5},
		{name: "beyond one slide of distance", progress: 0.0, index: 2, want: 0.0},
		{name: "quarter progress", progress: 0.25, index: 0, want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Weight(tt.progress, tt.index); !approxEqual(got, tt.want) {
				t.Errorf("Weight(%v, %d) = %v, want %v", tt.progress, tt.index, got, tt.want)
			}
		})
	}
}

func TestWeightsAtMostTwoVisible(t *testing.T) {
	for _, progress := range []float64{0, 0.3, 1.5, 2.8, 4} {
		visible := 0
		for _, w := range Weights(progress, 5) {
			if w > 0 {
				visible++
			}
		}
		if visible > 2 {
			t.Errorf("progress %v: %d slides visible, want at most 2", progress, visible)
		}
	}
}

func TestWeightsSumDuringCrossfade(t *testing.T) {
	// Between two slides the pair of triangular weights always sums to 1,
	// so the crossfade never dims or overbrightens.
	for _, progress := range []float64{0.2, 0.5, 1.1, 3.9} {
		sum := 0.0
		for _, w := range Weights(progress, 6) {
			sum += w
		}
		if !approxEqual(sum, 1) {
			t.Errorf("progress %v: weights sum to %v, want 1", progress, sum)
		}
	}
}

func TestCompositeOrder(t *testing.T) {
	got := CompositeOrder(4)
	want := []int{3, 2, 1, 0}

	if len(got) != len(want) {
		t.Fatalf("CompositeOrder(4) length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CompositeOrder(4)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestProgress(t *testing.T) {
	cfg := carousel.AmbientConfig{ItemWidth: 300, ItemSpacing: 16}

	tests := []struct {
		name    string
		offsetX float64
		want    float64
	}{
		{name: "at rest", offsetX: 0, want: 0},
		{name: "one item", offsetX: 316, want: 1},
		{name: "two and a half items", offsetX: 790, want: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.offsetX, cfg); !approxEqual(got, tt.want) {
				t.Errorf("Progress(%v) = %v, want %v", tt.offsetX, got, tt.want)
			}
		})
	}
}

func TestProgressZeroStride(t *testing.T) {
	if got := Progress(100, carousel.AmbientConfig{}); got != 0 {
		t.Errorf("Progress with zero stride = %v, want 0", got)
	}
}

func TestOverlayFor(t *testing.T) {
	cfg := carousel.DefaultAmbientConfig()
	o := OverlayFor(cfg)

	if o.BlurRadius != cfg.BlurRadius || o.DarkenOpacity != cfg.DarkenOpacity {
		t.Error("overlay should carry the configured blur and darken values")
	}
	if o.GradientStart != cfg.GradientStart || o.GradientEnd != cfg.GradientEnd {
		t.Error("overlay should carry the configured gradient stops")
	}
}
