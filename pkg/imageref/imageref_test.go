package imageref

import "testing"

func TestResolveClassification(t *testing.T) {
	assets := NewAssetSet("sunset-beach", "mountain")

	tests := []struct {
		name string
		ref  Reference
		want Kind
	}{
		{name: "https url", ref: Reference{Source: "https://example.com/a.png"}, want: KindRemote},
		{name: "http url", ref: Reference{Source: "http://example.com/a.png"}, want: KindRemote},
		{name: "bundled asset", ref: Reference{Source: "sunset-beach"}, want: KindAsset},
		{name: "unknown name falls back to symbol", ref: Reference{Source: "photo.on.rectangle"}, want: KindSymbol},
		{name: "empty source falls back to symbol", ref: Reference{Source: ""}, want: KindSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ref.Resolve(assets)
			if got.Kind != tt.want {
				t.Errorf("Resolve(%q).Kind = %v, want %v", tt.ref.Source, got.Kind, tt.want)
			}
		})
	}
}

func TestResolveRemoteWinsOverCollisions(t *testing.T) {
	// An asset registered under a name starting with "http" can never
	// shadow the remote classification.
	assets := NewAssetSet("https://example.com/a.png")

	got := Reference{Source: "https://example.com/a.png"}.Resolve(assets)
	if got.Kind != KindRemote {
		t.Errorf("Kind = %v, want KindRemote regardless of asset collisions", got.Kind)
	}
}

func TestResolvePlaceholderOnlyForRemote(t *testing.T) {
	assets := NewAssetSet("mountain")

	remote := Reference{Source: "https://example.com/a.png", Placeholder: "spinner"}.Resolve(assets)
	if remote.Placeholder != "spinner" {
		t.Errorf("remote Placeholder = %q, want %q", remote.Placeholder, "spinner")
	}

	asset := Reference{Source: "mountain", Placeholder: "spinner"}.Resolve(assets)
	if asset.Placeholder != "" {
		t.Errorf("asset Placeholder = %q, want empty", asset.Placeholder)
	}

	symbol := Reference{Source: "nope", Placeholder: "spinner"}.Resolve(assets)
	if symbol.Placeholder != "" {
		t.Errorf("symbol Placeholder = %q, want empty", symbol.Placeholder)
	}
}

func TestResolveNilChecker(t *testing.T) {
	got := Reference{Source: "mountain"}.Resolve(nil)
	if got.Kind != KindSymbol {
		t.Errorf("Kind with nil checker = %v, want KindSymbol", got.Kind)
	}
}

func TestResolveReclassifiesEveryCall(t *testing.T) {
	assets := NewAssetSet()
	ref := Reference{Source: "mountain"}

	if got := ref.Resolve(assets); got.Kind != KindSymbol {
		t.Fatalf("Kind = %v, want KindSymbol before asset exists", got.Kind)
	}

	assets["mountain"] = struct{}{}
	if got := ref.Resolve(assets); got.Kind != KindAsset {
		t.Errorf("Kind = %v, want KindAsset after asset appears (no caching)", got.Kind)
	}
}
