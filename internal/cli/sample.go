package cli

import (
	"github.com/spf13/cobra"

	treeio "github.com/matzehuels/bloodline/pkg/io"
	"github.com/matzehuels/bloodline/pkg/lineage"
)

// sampleCommand writes the built-in sample coven to a file.
func (c *CLI) sampleCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the sample coven to a tree file",
		Long: `Write the built-in sample coven to a tree file. The format follows the
file extension: .json, .toml, .yaml or .yml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, _ := lineage.NewCoven()
			if err := treeio.Export(t, output); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printSuccess(w, "Wrote %d vampires", t.Len())
			printFile(w, output)
			printNextStep(w, "Explore", appName+" show --tree "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "coven.json", "output file")
	return cmd
}
