package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bloodline/pkg/lineage"
)

// showCommand prints the family tree.
func (c *CLI) showCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the family tree",
		Long: `Print the family tree, one line per vampire with its conversion year and
generation. Every original is printed unless --from picks a single vampire.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			w := cmd.OutOrStdout()
			for _, root := range roots {
				printLineage(w, t, root)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "print only this vampire's line")
	return cmd
}

// printLineage renders root and its descendants as a tree.
func printLineage(w io.Writer, t *lineage.Tree, root lineage.ID) {
	fmt.Fprintln(w, lineageTree(t, root).String())
}

// lineageTree builds a lipgloss tree without recursion: Walk visits creators
// before offspring, so every parent node exists when its child is attached.
func lineageTree(t *lineage.Tree, root lineage.ID) *tree.Tree {
	nodes := make(map[lineage.ID]*tree.Tree)
	for id := range t.Walk(root) {
		n := tree.Root(vampireLabel(t, id)).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(StyleDim)
		nodes[id] = n
		if id == root {
			n.RootStyle(StyleTitle)
			continue
		}
		nodes[t.Creator(id)].Child(n)
	}
	return nodes[root]
}

func vampireLabel(t *lineage.Tree, id lineage.ID) string {
	v, _ := t.Vampire(id)
	return fmt.Sprintf("%s %s", v.Name,
		StyleDim.Render(fmt.Sprintf("(%d · gen %d)", v.YearConverted, t.Generation(id))))
}
