package cli

import (
	stderrors "errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bloodline/pkg/errors"
	"github.com/matzehuels/bloodline/pkg/lineage"
)

// infoCommand prints everything known about one vampire.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info NAME",
		Short: "Show a vampire's creator, generation, and offspring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.loadTree(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolve(t, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			v, _ := t.Vampire(id)
			creator := "none (original)"
			if !v.IsOriginal() {
				creator = t.Name(v.Creator())
			}
			fmt.Fprintln(w, StyleTitle.Render(v.Name))
			printKeyValue(w, "converted", strconv.Itoa(v.YearConverted))
			printKeyValue(w, "creator", creator)
			printKeyValue(w, "generation", strconv.Itoa(t.Generation(id)))
			printKeyValue(w, "offspring", strconv.Itoa(t.NumberOfOffspring(id)))
			printKeyValue(w, "descendants", strconv.Itoa(t.DescendantCount(id)))
			return nil
		},
	}
}

// seniorCommand compares two vampires by generation.
func (c *CLI) seniorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "senior A B",
		Short: "Report which of two vampires is more senior",
		Long: `Report which of two vampires is more senior.

A vampire is more senior than another when fewer creators separate it from
its original. Vampires of the same generation are equally senior.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.loadTree(cmd.Context())
			if err != nil {
				return err
			}
			a, b, err := resolvePair(t, args[0], args[1])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case t.IsMoreSeniorThan(a, b):
				printSuccess(w, "%s is more senior than %s", StyleBlood.Render(t.Name(a)), t.Name(b))
			case t.IsMoreSeniorThan(b, a):
				printSuccess(w, "%s is more senior than %s", StyleBlood.Render(t.Name(b)), t.Name(a))
			default:
				printInfo(w, "%s and %s are equally senior (generation %d)", t.Name(a), t.Name(b), t.Generation(a))
			}
			return nil
		},
	}
}

// ancestorCommand prints the closest common ancestor of two vampires.
func (c *CLI) ancestorCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ancestor A B",
		Aliases: []string{"cca"},
		Short:   "Find the closest common ancestor of two vampires",
		Long: `Find the closest common ancestor of two vampires.

If one vampire is a direct ancestor of the other, that vampire is the answer.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.loadTree(cmd.Context())
			if err != nil {
				return err
			}
			a, b, err := resolvePair(t, args[0], args[1])
			if err != nil {
				return err
			}

			cca, err := closestCommonAncestor(t, a, b)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("closest common ancestor",
				"a", t.Name(a), "b", t.Name(b), "generation", t.Generation(cca))
			printSuccess(cmd.OutOrStdout(), "%s", StyleBlood.Render(t.Name(cca)))
			return nil
		},
	}
}

// closestCommonAncestor maps core sentinel errors onto structured codes.
func closestCommonAncestor(t *lineage.Tree, a, b lineage.ID) (lineage.ID, error) {
	cca, err := t.ClosestCommonAncestor(a, b)
	switch {
	case stderrors.Is(err, lineage.ErrDifferentLineage):
		return lineage.None, errors.Wrap(errors.ErrCodePrecondition, err, "%s and %s share no ancestor", t.Name(a), t.Name(b))
	case err != nil:
		return lineage.None, errors.Wrap(errors.ErrCodeInternal, err, "closest common ancestor")
	}
	return cca, nil
}

// findCommand looks a vampire up by name.
func (c *CLI) findCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find NAME",
		Short: "Look a vampire up by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.loadTree(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolve(t, args[0])
			if err != nil {
				return err
			}
			v, _ := t.Vampire(id)
			printSuccess(cmd.OutOrStdout(), "%s %s", StyleBlood.Render(v.Name),
				StyleDim.Render(fmt.Sprintf("(converted %d, generation %d)", v.YearConverted, t.Generation(id))))
			return nil
		},
	}
}

// descendantsCommand counts every vampire descending from one.
func (c *CLI) descendantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "descendants NAME",
		Short: "Count the vampires descending from a vampire",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.loadTree(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolve(t, args[0])
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), "%s has %s descendants", t.Name(id), StyleNumber.Render(strconv.Itoa(t.DescendantCount(id))))
			return nil
		},
	}
}

// afterCommand lists vampires converted after a year.
func (c *CLI) afterCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "after YEAR",
		Short: "List vampires converted after a year",
		Long: `List vampires converted strictly after YEAR, in family order
(each vampire before its offspring, offspring oldest first).

By default every line in the tree is searched; --from restricts the search
to one vampire and its descendants.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "year %q is not a number", args[0])
			}
			t, err := c.loadTree(cmd.Context())
			if err != nil {
				return err
			}

			roots := t.Originals()
			if from != "" {
				id, err := resolve(t, from)
				if err != nil {
					return err
				}
				roots = []lineage.ID{id}
			}

			var found []lineage.ID
			for _, root := range roots {
				found = append(found, t.ConvertedAfter(root, year)...)
			}

			w := cmd.OutOrStdout()
			if len(found) == 0 {
				printWarning(w, "No vampires converted after %d", year)
				return nil
			}
			fmt.Fprintln(w, vampireTable(t, found))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "only search this vampire's line")
	return cmd
}

// vampireTable renders vampires as a bordered table.
func vampireTable(t *lineage.Tree, ids []lineage.ID) string {
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		v, _ := t.Vampire(id)
		creator := "-"
		if !v.IsOriginal() {
			creator = t.Name(v.Creator())
		}
		rows = append(rows, []string{v.Name, strconv.Itoa(v.YearConverted), strconv.Itoa(t.Generation(id)), creator})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Converted", "Generation", "Creator").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return StyleValue.Padding(0, 1)
			}
			return StyleDim.Padding(0, 1)
		}).
		Render()
}
