package layout

import (
	"testing"

	"github.com/matzehuels/notewall/pkg/errors"
)

func TestNotesBreakpoints(t *testing.T) {
	bp := NotesBreakpoints()
	tests := []struct {
		width   int
		columns int
		gap     int
	}{
		{0, 1, 16},
		{320, 1, 16},
		{639, 1, 16},
		{640, 2, 20},
		{767, 2, 20},
		{768, 3, 24},
		{1920, 3, 24},
	}

	for _, tt := range tests {
		got, err := bp.Resolve(tt.width)
		if err != nil {
			t.Fatalf("Resolve(%d) error = %v", tt.width, err)
		}
		if got.Columns != tt.columns || got.Gap != tt.gap {
			t.Errorf("Resolve(%d) = %d cols gap %d, want %d cols gap %d", tt.width, got.Columns, got.Gap, tt.columns, tt.gap)
		}
	}
}

func TestAlbumBreakpoints(t *testing.T) {
	bp := AlbumBreakpoints()
	tests := []struct {
		width   int
		columns int
	}{
		{400, 1},
		{500, 1},
		{501, 2},
		{700, 2},
		{701, 3},
		{1100, 3},
		{1101, 4},
		{2560, 4},
	}

	for _, tt := range tests {
		got, err := bp.Columns(tt.width)
		if err != nil {
			t.Fatalf("Columns(%d) error = %v", tt.width, err)
		}
		if got != tt.columns {
			t.Errorf("Columns(%d) = %d, want %d", tt.width, got, tt.columns)
		}
	}
}

func TestBreakpointsUnsortedTiers(t *testing.T) {
	bp := Breakpoints{
		Compare: Below,
		Tiers: []Tier{
			{MaxWidth: 768, Columns: 2},
			{MaxWidth: 640, Columns: 1},
		},
		Default: Tier{Columns: 3},
	}
	if got, _ := bp.Columns(600); got != 1 {
		t.Errorf("Columns(600) = %d, want 1", got)
	}
	if bp.Tiers[0].MaxWidth != 768 {
		t.Error("Resolve reordered the caller's tiers")
	}
}

func TestBreakpointsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		bp    Breakpoints
		width int
	}{
		{"negative width", NotesBreakpoints(), -1},
		{"zero column tier", Breakpoints{Compare: Below, Tiers: []Tier{{MaxWidth: 100, Columns: 0}}, Default: Tier{Columns: 1}}, 50},
		{"zero column default", Breakpoints{Compare: Below, Default: Tier{Columns: 0}}, 50},
		{"unknown compare", Breakpoints{Compare: "between", Default: Tier{Columns: 1}}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.bp.Resolve(tt.width); !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("Resolve() error = %v, want INVALID_ARGUMENT", err)
			}
		})
	}
}

func TestPreset(t *testing.T) {
	for _, name := range []string{"", PresetNotes, PresetAlbum} {
		bp, err := Preset(name)
		if err != nil {
			t.Errorf("Preset(%q) error = %v", name, err)
		}
		if err := bp.Validate(); err != nil {
			t.Errorf("Preset(%q) invalid: %v", name, err)
		}
	}
	if _, err := Preset("grid"); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Preset(grid) error = %v, want INVALID_ARGUMENT", err)
	}
}
