package imagecache

import "fmt"

// Keyer generates cache keys for image variants. Keys hash the source URL
// so arbitrary URLs stay filesystem- and Redis-safe.
type Keyer interface {
	// OriginalKey names the raw fetched bytes of a source URL.
	OriginalKey(url string) string

	// ThumbKey names a downscaled variant at the given bounding size.
	ThumbKey(url string, maxWidth, maxHeight int) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// OriginalKey generates a key for raw image bytes.
func (DefaultKeyer) OriginalKey(url string) string {
	return "img:" + Hash([]byte(url))
}

// ThumbKey generates a key for a downscaled variant.
func (DefaultKeyer) ThumbKey(url string, maxWidth, maxHeight int) string {
	return fmt.Sprintf("thumb:%dx%d:%s", maxWidth, maxHeight, Hash([]byte(url)))
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, e.g.
// separating galleries that share one Redis instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// OriginalKey generates a prefixed key for raw image bytes.
func (k *ScopedKeyer) OriginalKey(url string) string {
	return k.prefix + k.inner.OriginalKey(url)
}

// ThumbKey generates a prefixed key for a downscaled variant.
func (k *ScopedKeyer) ThumbKey(url string, maxWidth, maxHeight int) string {
	return k.prefix + k.inner.ThumbKey(url, maxWidth, maxHeight)
}
