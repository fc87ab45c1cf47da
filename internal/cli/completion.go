package cli

import (
	"github.com/spf13/cobra"
)

// completionShells maps a shell name to its cobra generator.
var completionShells = map[string]func(root *cobra.Command, cmd *cobra.Command) error{
	"bash": func(root, cmd *cobra.Command) error { return root.GenBashCompletionV2(cmd.OutOrStdout(), true) },
	"zsh":  func(root, cmd *cobra.Command) error { return root.GenZshCompletion(cmd.OutOrStdout()) },
	"fish": func(root, cmd *cobra.Command) error { return root.GenFishCompletion(cmd.OutOrStdout(), true) },
	"powershell": func(root, cmd *cobra.Command) error {
		return root.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
	},
}

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion bash|zsh|fish|powershell",
		Short: "Print a shell completion script",
		Long: `Print a completion script for notewall commands, flags and presets.

  source <(notewall completion bash)
  notewall completion zsh > "${fpath[1]}/_notewall"
  notewall completion fish > ~/.config/fish/completions/notewall.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionShells[args[0]](cmd.Root(), cmd)
		},
	}
}
