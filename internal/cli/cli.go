// Package cli implements the notewall command-line interface.
//
// # Commands
//
//   - layout: compute a wall from a note file or MongoDB and write it as JSON
//   - preview: draw the wall in the terminal
//   - watch: interactive wall that follows the terminal width
//   - bucket: print the visual bucket of one identifier
//   - sample: generate a note file with random identifiers
//   - serve: run the HTTP API
//   - cache: manage the local wall cache
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/notewall/pkg/buildinfo"
	"github.com/matzehuels/notewall/pkg/cache"
	"github.com/matzehuels/notewall/pkg/pipeline"
	"github.com/matzehuels/notewall/pkg/source"
	"github.com/matzehuels/notewall/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "notewall"
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

	// themePath is bound to the persistent --theme flag.
	themePath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Notewall lays out notes as a sticky-note wall",
		Long:         `Notewall deals an ordered list of notes into columns and gives every note a stable colour and tilt derived from its id.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.themePath, "theme", "", "theme file (default: $XDG_CONFIG_HOME/notewall/theme.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.bucketCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(src source.Source, noCache bool) (*pipeline.Runner, error) {
	th, err := c.loadTheme()
	if err != nil {
		return nil, err
	}
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(src, cache, th, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// loadTheme reads --theme, or the default theme file when present.
func (c *CLI) loadTheme() (*theme.Theme, error) {
	if c.themePath != "" {
		return theme.Load(c.themePath)
	}
	return theme.LoadOrDefault("")
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/notewall/).
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
