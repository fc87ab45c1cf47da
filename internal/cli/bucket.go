package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/notewall/pkg/errors"
	"github.com/matzehuels/notewall/pkg/layout"
)

// bucketCommand prints the visual bucket of one identifier, and the colour
// and rotation it selects from the theme.
func (c *CLI) bucketCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bucket <id> [n]",
		Short: "Print the visual bucket of an identifier",
		Long: `Print the visual bucket of an identifier.

The bucket is the sum of the id's Unicode code points modulo n. Without n,
the colour and rotation the id receives from the theme are shown instead.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			out := cmd.OutOrStdout()

			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return errors.New(errors.ErrCodeInvalidArgument, "bucket count must be an integer, got %q", args[1])
				}
				b, err := layout.Bucket(id, n)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, b)
				return nil
			}

			th, err := c.loadTheme()
			if err != nil {
				return err
			}
			color, err := th.Colors.Pick(id)
			if err != nil {
				return err
			}
			rotation, err := th.Rotations.Pick(id)
			if err != nil {
				return err
			}
			printKeyValue("id", id)
			printKeyValue("color", color)
			printKeyValue("rotation", rotation)
			return nil
		},
	}
}
