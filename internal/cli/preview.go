package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/notewall/pkg/gallery"
	wallio "github.com/matzehuels/notewall/pkg/io"
	"github.com/matzehuels/notewall/pkg/layout"
	"github.com/matzehuels/notewall/pkg/pipeline"
	"github.com/matzehuels/notewall/pkg/source"
	"github.com/matzehuels/notewall/pkg/theme"
)

const (
	// pxPerCell converts terminal cells to viewport pixels when no width is
	// given, so the breakpoint presets apply to the terminal.
	pxPerCell = 8

	defaultTermWidth = 100
	fallbackSwatch   = "#e5e7eb"
	noteInk          = "#1f2937"
	maxTilt          = 2
)

var styleNote = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorFaded).
	Foreground(lipgloss.Color(noteInk)).
	Padding(0, 1)

// previewCommand creates the preview command that draws a wall in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		wallFile  string
		termWidth int
		src       sourceFlags
		shape     layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "preview [notes.json]",
		Short: "Draw a wall in the terminal",
		Long: `Draw a wall in the terminal.

Each note is boxed in its colour swatch and nudged sideways by its rotation.
Without --columns or --width the terminal width selects the breakpoint tier.
Use --wall to draw a wall file written by 'layout' instead of recomputing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := c.loadTheme()
			if err != nil {
				return err
			}

			var res *pipeline.Result
			if wallFile != "" {
				if res, err = wallio.ImportJSON(wallFile); err != nil {
					return err
				}
			} else {
				opts, err := shape.options(cmd)
				if err != nil {
					return err
				}
				if opts.Columns == 0 && opts.Width == 0 {
					opts.Width = termWidth * pxPerCell
				}
				if res, err = c.computeWall(cmd.Context(), args, &src, opts, shape.noCache); err != nil {
					return err
				}
			}

			fmt.Println(renderWall(res, th, termWidth))
			printStats(res.Wall.Len(), res.Columns, res.CacheHit)
			return nil
		},
	}

	cmd.Flags().StringVar(&wallFile, "wall", "", "draw a wall file instead of computing one")
	cmd.Flags().IntVar(&termWidth, "term-width", defaultTermWidth, "terminal width in cells")
	shape.register(cmd)
	src.register(cmd)

	return cmd
}

// renderWall draws the columns of res side by side within width cells.
func renderWall(res *pipeline.Result, th *theme.Theme, width int) string {
	n := len(res.Wall.Columns)
	if n == 0 {
		return ""
	}
	gap := max(res.Gap/pxPerCell, 1)
	colWidth := max((width-gap*(n-1))/n, 12)

	cols := make([]string, 0, 2*n-1)
	for i, col := range res.Wall.Columns {
		if i > 0 {
			cols = append(cols, strings.Repeat(" ", gap))
		}
		cols = append(cols, renderColumn(col, th, colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderColumn(col layout.WallColumn[source.Note], th *theme.Theme, width int) string {
	if len(col.Placements) == 0 {
		return lipgloss.NewStyle().Width(width).Render(StyleDim.Render("·"))
	}
	cards := make([]string, len(col.Placements))
	for i, p := range col.Placements {
		cards[i] = renderNote(p, th, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderNote boxes one note. The rotation token becomes a left margin of
// 0 to 2*maxTilt cells, tilting the card visually within its column.
func renderNote(p layout.Placement[source.Note], th *theme.Theme, width int) string {
	shift := tilt(p.Rotation) + maxTilt
	style := styleNote.
		Background(lipgloss.Color(th.Swatch(p.Color, fallbackSwatch))).
		MarginLeft(shift).
		Width(max(width-2*maxTilt-2, 6))

	text := p.Item.Content
	if text == "" {
		text = p.Item.ID
	}
	body, _ := gallery.Excerpt(text, gallery.DefaultExcerpt)

	lines := []string{body}
	if p.Item.Author != "" {
		lines = append(lines, "~ "+p.Item.Author)
	}
	if photos := len(p.Item.Photos); photos > 0 {
		lines = append(lines, photoSummary(photos))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// photoSummary describes the gallery grid of a note with n photos.
func photoSummary(n int) string {
	plan := gallery.Tiles(n)
	s := fmt.Sprintf("[%d photo", n)
	if n != 1 {
		s += "s"
	}
	if hidden := plan.Hidden(); hidden > 0 {
		s += fmt.Sprintf(", +%d", hidden)
	}
	return s + "]"
}

// tilt parses a rotation token such as "rotate-2" or "-rotate-1" into a
// signed step clamped to ±maxTilt. Unknown tokens are upright.
func tilt(token string) int {
	neg := strings.HasPrefix(token, "-")
	v, err := strconv.Atoi(strings.TrimPrefix(strings.TrimPrefix(token, "-"), "rotate-"))
	if err != nil {
		return 0
	}
	if neg {
		v = -v
	}
	return min(max(v, -maxTilt), maxTilt)
}
