package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	wallio "github.com/matzehuels/notewall/pkg/io"
	"github.com/matzehuels/notewall/pkg/pipeline"
)

// layoutCommand creates the layout command for computing a wall.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		src    sourceFlags
		shape  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [notes.json]",
		Short: "Compute a wall from a note file or MongoDB",
		Long: `Compute a wall from a note file or MongoDB.

Notes are dealt into columns in order (note i goes to column i mod columns)
and every note gets a colour and a rotation derived from its id. The column
count comes from --columns, or from --width through the --preset breakpoints.

The output is a wall.json file, or stdout when reading from MongoDB without
--output. Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := shape.options(cmd)
			if err != nil {
				return err
			}
			if output == "" && len(args) > 0 {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".wall.json"
			}
			return c.runLayout(cmd.Context(), args, &src, opts, shape.noCache, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.wall.json, - for stdout)")
	shape.register(cmd)
	src.register(cmd)

	return cmd
}

// runLayout fetches the notes, computes the wall, and writes output.
func (c *CLI) runLayout(ctx context.Context, args []string, src *sourceFlags, opts pipeline.Options, noCache bool, output string) error {
	res, err := c.computeWall(ctx, args, src, opts, noCache)
	if err != nil {
		return err
	}

	if output == "" || output == "-" {
		return wallio.WriteJSON(res, os.Stdout)
	}
	if err := wallio.ExportJSON(res, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(res.Wall.Len(), res.Columns, res.CacheHit)
	printNewline()
	printNextStep("Preview", appName+" preview --columns "+fmt.Sprint(res.Columns)+" "+strings.Join(args, " "))
	return nil
}

// computeWall opens the source and runs the pipeline behind a spinner.
func (c *CLI) computeWall(ctx context.Context, args []string, src *sourceFlags, opts pipeline.Options, noCache bool) (*pipeline.Result, error) {
	s, err := src.open(ctx, args)
	if err != nil {
		return nil, err
	}
	runner, err := c.newRunner(s, noCache)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Building wall...")
	spinner.Start()

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return nil, err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	prog.done(fmt.Sprintf("Laid out %d notes in %d columns", res.Wall.Len(), res.Columns))
	return res, nil
}
