package layout

import (
	"sort"

	"github.com/matzehuels/notewall/pkg/errors"
)

// Compare selects how a tier bound is matched against a viewport width.
// The zero value behaves like Below.
type Compare string

const (
	// Below matches widths strictly below the tier bound.
	Below Compare = "below"
	// AtMost matches widths up to and including the tier bound.
	AtMost Compare = "at_most"
)

// Tier is one step of a responsive breakpoint table.
type Tier struct {
	MaxWidth int `json:"max_width,omitempty" toml:"max_width"`
	Columns  int `json:"columns" toml:"columns"`
	Gap      int `json:"gap,omitempty" toml:"gap"`
}

// Breakpoints maps a viewport width to a column count.
//
// Tiers are tried from the narrowest bound up; the first that admits the
// width wins. Widths beyond every bound use Default.
type Breakpoints struct {
	Compare Compare `json:"compare" toml:"compare"`
	Tiers   []Tier  `json:"tiers" toml:"tiers"`
	Default Tier    `json:"default" toml:"default"`
}

// NotesBreakpoints is the tier table of the love notes wall.
func NotesBreakpoints() Breakpoints {
	return Breakpoints{
		Compare: Below,
		Tiers: []Tier{
			{MaxWidth: 640, Columns: 1, Gap: 16},
			{MaxWidth: 768, Columns: 2, Gap: 20},
		},
		Default: Tier{Columns: 3, Gap: 24},
	}
}

// AlbumBreakpoints is the tier table of the photo album.
func AlbumBreakpoints() Breakpoints {
	return Breakpoints{
		Compare: AtMost,
		Tiers: []Tier{
			{MaxWidth: 500, Columns: 1},
			{MaxWidth: 700, Columns: 2},
			{MaxWidth: 1100, Columns: 3},
		},
		Default: Tier{Columns: 4},
	}
}

// Validate checks that every tier yields at least one column and that the
// comparison mode is known.
func (b Breakpoints) Validate() error {
	switch b.Compare {
	case "", Below, AtMost:
	default:
		return errors.New(errors.ErrCodeInvalidArgument, "unknown breakpoint comparison %q", b.Compare)
	}
	for i, t := range b.Tiers {
		if t.Columns < 1 {
			return errors.New(errors.ErrCodeInvalidArgument, "tier %d (max width %d) must have >= 1 columns, got %d", i, t.MaxWidth, t.Columns)
		}
		if t.MaxWidth < 0 {
			return errors.New(errors.ErrCodeInvalidArgument, "tier %d has negative max width %d", i, t.MaxWidth)
		}
	}
	if b.Default.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidArgument, "default tier must have >= 1 columns, got %d", b.Default.Columns)
	}
	return nil
}

// Resolve returns the tier that applies to width.
func (b Breakpoints) Resolve(width int) (Tier, error) {
	if width < 0 {
		return Tier{}, errors.New(errors.ErrCodeInvalidArgument, "width must be >= 0, got %d", width)
	}
	if err := b.Validate(); err != nil {
		return Tier{}, err
	}

	tiers := make([]Tier, len(b.Tiers))
	copy(tiers, b.Tiers)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MaxWidth < tiers[j].MaxWidth })

	for _, t := range tiers {
		if b.admits(t, width) {
			return t, nil
		}
	}
	return b.Default, nil
}

// Columns is Resolve reduced to the column count.
func (b Breakpoints) Columns(width int) (int, error) {
	t, err := b.Resolve(width)
	if err != nil {
		return 0, err
	}
	return t.Columns, nil
}

func (b Breakpoints) admits(t Tier, width int) bool {
	if b.Compare == AtMost {
		return width <= t.MaxWidth
	}
	return width < t.MaxWidth
}

// Preset names.
const (
	PresetNotes = "notes"
	PresetAlbum = "album"
)

// Preset returns the built-in breakpoint table called name.
func Preset(name string) (Breakpoints, error) {
	switch name {
	case PresetNotes, "":
		return NotesBreakpoints(), nil
	case PresetAlbum:
		return AlbumBreakpoints(), nil
	}
	return Breakpoints{}, errors.New(errors.ErrCodeInvalidArgument, "unknown breakpoint preset %q (want %s or %s)", name, PresetNotes, PresetAlbum)
}
