package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand prints shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for bloodline.

Completions cover subcommands and flags, including --tree and --from.
Vampire names are not completed, since they depend on the tree file.

  $ source <(bloodline completion bash)
  $ bloodline completion zsh > "${fpath[1]}/_bloodline"
  $ bloodline completion fish > ~/.config/fish/completions/bloodline.fish
  PS> bloodline completion powershell | Out-String | Invoke-Expression

Set ` + envTree + ` in your shell profile to query your own coven without
passing --tree on every call.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
