// Package cli implements the drift command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/driftui/drift/pkg/buildinfo"
	"github.com/driftui/drift/pkg/imagecache"
	"github.com/driftui/drift/pkg/imageload"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "drift"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "drift",
		Short:        "Drift renders declarative carousel and grid layouts",
		Long:         `Drift is a layout toolkit for card carousels: stacked decks, cover-flow strips, ambient backdrops, and pinch-zoom gestures. The CLI hosts interactive terminal demos of each engine and manages the image cache behind them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.stackCommand())
	root.AddCommand(c.coverCommand())
	root.AddCommand(c.ambientCommand())
	root.AddCommand(c.zoomCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.prefetchCommand())
	root.AddCommand(c.fixturesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Loader Factory
// =============================================================================

// newLoader creates an image loader for CLI use.
func (c *CLI) newLoader(noCache bool) *imageload.Loader {
	return imageload.NewLoader(newImageCache(noCache), c.Logger)
}

func newImageCache(noCache bool) imagecache.Cache {
	if noCache {
		return imagecache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return imagecache.NewNullCache()
	}
	fc, err := imagecache.NewFileCache(dir)
	if err != nil {
		return imagecache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/drift/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
