// Package imageref implements the image resolution policy: classifying an
// image reference string and selecting the rendering strategy for it.
//
// Classification is derived, never stored: every Resolve call re-evaluates
// the reference from scratch, so a bundle that gains or loses an asset
// between calls is picked up immediately.
//
// The policy is total: an unparseable or unknown reference never fails, it
// falls through to the symbolic fallback.
package imageref

import "strings"

// Kind is the rendering strategy selected for a reference.
type Kind int

const (
	// KindRemote loads over the network through the image provider.
	KindRemote Kind = iota

	// KindAsset renders a bundled asset directly.
	KindAsset

	// KindSymbol renders a symbolic placeholder glyph.
	KindSymbol
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindRemote:
		return "remote"
	case KindAsset:
		return "asset"
	case KindSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// remotePrefix marks remote-loadable references. Matching "http" covers
// both http:// and https:// and deliberately wins over asset or symbol
// names that happen to collide.
const remotePrefix = "http"

// AssetChecker reports whether a bundled asset with the given name exists.
// Hosts back this with their asset bundle; tests with a fixed set.
type AssetChecker interface {
	HasAsset(name string) bool
}

// AssetSet is a fixture AssetChecker backed by a name set, for tests and
// demos.
type AssetSet map[string]struct{}

// NewAssetSet builds an AssetSet from asset names.
func NewAssetSet(names ...string) AssetSet {
	s := make(AssetSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// HasAsset implements AssetChecker.
func (s AssetSet) HasAsset(name string) bool {
	_, ok := s[name]
	return ok
}

// Reference is an image reference as declared by an item: a source string
// plus an optional placeholder shown while a remote source loads.
type Reference struct {
	Source      string
	Placeholder string
}

// Resolution is the selected rendering strategy for one reference.
type Resolution struct {
	Kind Kind

	// Placeholder names the image to show while the remote fetch is
	// pending. Populated only on the remote path; bundled and symbolic
	// references never show a placeholder.
	Placeholder string
}

// Resolve classifies the reference: remote first (prefix match), then
// bundled-asset existence, else symbolic fallback. A nil assets checker is
// treated as an empty bundle.
func (r Reference) Resolve(assets AssetChecker) Resolution {
	if strings.HasPrefix(r.Source, remotePrefix) {
		return Resolution{Kind: KindRemote, Placeholder: r.Placeholder}
	}
	if assets != nil && assets.HasAsset(r.Source) {
		return Resolution{Kind: KindAsset}
	}
	return Resolution{Kind: KindSymbol}
}
