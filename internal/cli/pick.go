package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bloodline/pkg/errors"
)

// pickCommand lets the user choose two vampires interactively and prints
// their closest common ancestor.
func (c *CLI) pickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick two vampires and find their closest common ancestor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := c.loadTree(ctx)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewPairPickerModel(t), tea.WithContext(ctx), tea.WithOutput(cmd.ErrOrStderr()))
			final, err := p.Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "run picker")
			}

			m, ok := final.(PairPickerModel)
			if !ok || m.Canceled || !m.Done() {
				printWarning(cmd.OutOrStdout(), "Nothing picked")
				return nil
			}

			a, b := m.Chosen[0], m.Chosen[1]
			cca, err := closestCommonAncestor(t, a, b)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printInfo(w, "%s & %s", t.Name(a), t.Name(b))
			printSuccess(w, "%s", StyleBlood.Render(t.Name(cca)))
			return nil
		},
	}
}
