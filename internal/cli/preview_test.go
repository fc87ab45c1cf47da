package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/notewall/pkg/pipeline"
	"github.com/matzehuels/notewall/pkg/source"
	"github.com/matzehuels/notewall/pkg/theme"
)

func TestTilt(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"rotate-0", 0},
		{"rotate-1", 1},
		{"-rotate-1", -1},
		{"rotate-2", 2},
		{"-rotate-2", -2},
		{"rotate-12", 2},
		{"-rotate-6", -2},
		{"spin", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := tilt(tt.token); got != tt.want {
			t.Errorf("tilt(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestPhotoSummary(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "[1 photo]"},
		{3, "[3 photos]"},
		{4, "[4 photos]"},
		{7, "[7 photos, +3]"},
	}

	for _, tt := range tests {
		if got := photoSummary(tt.n); got != tt.want {
			t.Errorf("photoSummary(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRenderWall(t *testing.T) {
	r := pipeline.NewRunner(nil, nil, nil, nil)
	res, err := r.Layout(context.Background(), []source.Note{
		{ID: "a", Content: "first note", Author: "sam"},
		{ID: "b", Content: "second note"},
		{ID: "c", Content: strings.Repeat("x", 200)},
	}, pipeline.Options{Columns: 2})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	out := renderWall(res, theme.Default(), 80)

	for _, want := range []string{"first", "second", "~ sam", "..."} {
		if !strings.Contains(out, want) {
			t.Errorf("renderWall() missing %q:\n%s", want, out)
		}
	}
	if w := lipgloss.Width(out); w > 80 {
		t.Errorf("renderWall() width = %d, want <= 80", w)
	}
}

func TestRenderWallEmptyColumns(t *testing.T) {
	r := pipeline.NewRunner(nil, nil, nil, nil)
	res, err := r.Layout(context.Background(), nil, pipeline.Options{Columns: 3})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if out := renderWall(res, theme.Default(), 60); out == "" {
		t.Error("renderWall() of empty columns returned nothing")
	}
}
