// Package theme loads the palettes and breakpoint tables used to decorate a
// wall from a TOML file.
//
// A theme file only needs the keys it overrides; everything else keeps the
// built-in value:
//
//	colors = ["bg-rose-100", "bg-sky-100"]
//
//	[breakpoints.notes]
//	compare = "below"
//	tiers = [
//	    { max_width = 600, columns = 1, gap = 12 },
//	]
//	default = { columns = 2, gap = 24 }
//
//	[swatches]
//	"bg-sky-100" = "#e0f2fe"
package theme

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/notewall/pkg/errors"
	"github.com/matzehuels/notewall/pkg/layout"
)

const appName = "notewall"

// Theme holds every caller-supplied visual constant.
type Theme struct {
	Colors      layout.Palette                `toml:"colors" json:"colors"`
	Rotations   layout.Palette                `toml:"rotations" json:"rotations"`
	Breakpoints map[string]layout.Breakpoints `toml:"breakpoints" json:"breakpoints"`

	// Swatches maps colour tokens to hex colours for terminal previews.
	Swatches map[string]string `toml:"swatches" json:"swatches,omitempty"`
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		Colors:    append(layout.Palette(nil), layout.DefaultColors...),
		Rotations: append(layout.Palette(nil), layout.DefaultRotations...),
		Breakpoints: map[string]layout.Breakpoints{
			layout.PresetNotes: layout.NotesBreakpoints(),
			layout.PresetAlbum: layout.AlbumBreakpoints(),
		},
		Swatches: map[string]string{
			"bg-rose-100":   "#ffe4e6",
			"bg-yellow-100": "#fef9c3",
			"bg-blue-100":   "#dbeafe",
			"bg-green-100":  "#dcfce7",
			"bg-purple-100": "#f3e8ff",
			"bg-orange-100": "#ffedd5",
		},
	}
}

// DefaultPath returns the theme location following the XDG convention
// (~/.config/notewall/theme.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "theme.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "theme.toml"), nil
}

// Load reads the theme file at path on top of the defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "theme %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read theme %s", path)
	}
	return Parse(string(data))
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
// An empty path means DefaultPath.
func LoadOrDefault(path string) (*Theme, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}
	t, err := Load(path)
	if errors.Is(err, errors.ErrCodeNotFound) {
		return Default(), nil
	}
	return t, err
}

// Parse decodes TOML text on top of the defaults and validates the result.
func Parse(text string) (*Theme, error) {
	t := Default()
	md, err := toml.Decode(text, t)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode theme")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown theme keys: %s", strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks palettes and every breakpoint table.
func (t *Theme) Validate() error {
	if err := t.Colors.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "colors")
	}
	if err := t.Rotations.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "rotations")
	}
	for _, name := range t.Presets() {
		if err := t.Breakpoints[name].Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "breakpoints.%s", name)
		}
	}
	return nil
}

// Presets returns the configured breakpoint table names, sorted.
func (t *Theme) Presets() []string {
	names := make([]string, 0, len(t.Breakpoints))
	for name := range t.Breakpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the breakpoint table called name. An empty name selects
// the notes table.
func (t *Theme) Preset(name string) (layout.Breakpoints, error) {
	if name == "" {
		name = layout.PresetNotes
	}
	bp, ok := t.Breakpoints[name]
	if !ok {
		return layout.Breakpoints{}, errors.New(errors.ErrCodeInvalidArgument, "unknown breakpoint preset %q (have %s)", name, strings.Join(t.Presets(), ", "))
	}
	return bp, nil
}

// Swatch returns the hex colour configured for a colour token, or fallback.
func (t *Theme) Swatch(token, fallback string) string {
	if hex, ok := t.Swatches[token]; ok {
		return hex
	}
	return fallback
}
