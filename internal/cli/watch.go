package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/notewall/pkg/layout"
	"github.com/matzehuels/notewall/pkg/pipeline"
	"github.com/matzehuels/notewall/pkg/source"
)

// =============================================================================
// watch command
// =============================================================================

// watchCommand creates the interactive wall view.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		interval time.Duration
		preset   string
		src      sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "watch [notes.json]",
		Short: "Interactive wall that follows the terminal width",
		Long: `Interactive wall that follows the terminal width.

The column count is re-resolved through the breakpoint preset whenever the
terminal is resized. Notes are refetched every --interval and on 'r'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := src.open(ctx, args)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(s, true)
			if err != nil {
				s.Close()
				return err
			}
			defer runner.Close()

			m := newWatchModel(ctx, runner, preset, interval)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "refetch interval (0 disables)")
	cmd.Flags().StringVarP(&preset, "preset", "p", layout.PresetNotes, "breakpoint preset: notes, album")
	_ = cmd.RegisterFlagCompletionFunc("preset", completePreset)
	src.register(cmd)

	return cmd
}

// =============================================================================
// watchModel
// =============================================================================

type notesMsg struct {
	notes []source.Note
	err   error
}

type tickMsg time.Time

// watchModel is the bubbletea model behind the watch command.
type watchModel struct {
	ctx      context.Context
	runner   *pipeline.Runner
	preset   string
	interval time.Duration

	// columns overrides the breakpoint tier when > 0.
	columns int

	width, height int
	notes         []source.Note
	result        *pipeline.Result
	err           error
	fetching      bool
	fetchedAt     time.Time
}

func newWatchModel(ctx context.Context, runner *pipeline.Runner, preset string, interval time.Duration) watchModel {
	return watchModel{
		ctx:      ctx,
		runner:   runner,
		preset:   preset,
		interval: interval,
		width:    defaultTermWidth,
		fetching: true,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.tick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.fetching {
				return m, nil
			}
			m.fetching = true
			return m, m.fetch()
		case "+", "=":
			m.columns = min(m.currentColumns()+1, pipeline.MaxColumns)
			m.relayout()
		case "-":
			if m.columns > 1 {
				m.columns--
			} else if m.columns == 0 && m.currentColumns() > 1 {
				m.columns = m.currentColumns() - 1
			}
			m.relayout()
		case "0":
			m.columns = 0
			m.relayout()
		case "p":
			m.preset = nextPreset(m.preset, m.runner.Theme.Presets())
			m.relayout()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
	case notesMsg:
		m.fetching = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.notes = msg.notes
		m.fetchedAt = time.Now()
		m.relayout()
	case tickMsg:
		if m.fetching {
			return m, m.tick()
		}
		m.fetching = true
		return m, tea.Batch(m.fetch(), m.tick())
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("notewall"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.status()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	case m.result == nil:
		b.WriteString(StyleDim.Render("Loading notes..."))
	default:
		b.WriteString(renderWall(m.result, m.runner.Theme, m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("r refresh  +/- columns  0 auto  p preset  q quit"))
	return b.String()
}

// relayout recomputes the wall for the current width, preset and override.
func (m *watchModel) relayout() {
	if m.notes == nil {
		return
	}
	opts := pipeline.Options{Width: m.width * pxPerCell, Preset: m.preset, Columns: m.columns}
	res, err := m.runner.Layout(m.ctx, m.notes, opts)
	m.result, m.err = res, err
}

func (m watchModel) currentColumns() int {
	if m.result == nil {
		return 0
	}
	return m.result.Columns
}

func (m watchModel) status() string {
	parts := []string{m.preset}
	if m.result != nil {
		cols := fmt.Sprintf("%d columns", m.result.Columns)
		if m.columns == 0 {
			cols += " (auto)"
		}
		parts = append(parts, fmt.Sprintf("%d notes", m.result.Wall.Len()), cols)
	}
	if m.fetching {
		parts = append(parts, "fetching")
	} else if !m.fetchedAt.IsZero() {
		parts = append(parts, "updated "+m.fetchedAt.Format("15:04:05"))
	}
	return strings.Join(parts, " · ")
}

func (m watchModel) fetch() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.runner.Fetch(m.ctx)
		if notes == nil && err == nil {
			notes = []source.Note{}
		}
		return notesMsg{notes: notes, err: err}
	}
}

func (m watchModel) tick() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// nextPreset cycles through the available preset names.
func nextPreset(current string, names []string) string {
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return current
}
