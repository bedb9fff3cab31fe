package carousel

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/driftui/drift/pkg/errors"
)

// Manifest is the declarative description of a gallery: its items plus the
// configuration for each carousel variant. Sections left out of the file
// keep their default values.
type Manifest struct {
	Title    string         `toml:"title"`
	Items    Collection     `toml:"items"`
	Stack    StackConfig    `toml:"stack"`
	Cover    CoverConfig    `toml:"cover"`
	Parallax ParallaxConfig `toml:"parallax"`
	Ambient  AmbientConfig  `toml:"ambient"`
}

// DefaultManifest returns an empty manifest with default configurations.
func DefaultManifest() Manifest {
	return Manifest{
		Stack:    DefaultStackConfig(),
		Cover:    DefaultCoverConfig(),
		Parallax: DefaultParallaxConfig(),
		Ambient:  DefaultAmbientConfig(),
	}
}

// ParseManifest decodes a TOML gallery manifest. Fields absent from the
// document keep their defaults, and items declared without an id receive a
// generated identity token.
func ParseManifest(data []byte) (Manifest, error) {
	m := DefaultManifest()
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse gallery manifest")
	}
	m.Items.ensureIDs()
	return m, nil
}

// LoadManifestFile reads and decodes a TOML gallery manifest from disk.
func LoadManifestFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read manifest %s", path)
	}
	return ParseManifest(data)
}
