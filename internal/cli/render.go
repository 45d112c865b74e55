package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bloodline/pkg/errors"
	"github.com/matzehuels/bloodline/pkg/lineage"
	"github.com/matzehuels/bloodline/pkg/render/nodelink"
)

type renderOpts struct {
	output    string
	detailed  bool
	highlight []string
	ancestor  bool
}

// renderCommand draws the tree as a node-link diagram.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the family tree as a DOT or SVG diagram",
		Long: `Draw the family tree as a node-link diagram.

The output format follows the file extension: .dot writes Graphviz source,
.svg renders it in-process.

Use --highlight to fill vampires with an accent color. With exactly two
highlighted vampires, --ancestor also highlights their closest common ancestor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.dot or .svg)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include conversion year and generation in labels")
	cmd.Flags().StringSliceVar(&opts.highlight, "highlight", nil, "vampires to highlight (comma-separated)")
	cmd.Flags().BoolVar(&opts.ancestor, "ancestor", false, "also highlight the closest common ancestor of two highlighted vampires")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts renderOpts) error {
	ctx := cmd.Context()
	if err := errors.ValidatePath(opts.output); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(opts.output))
	if ext != ".dot" && ext != ".svg" {
		return errors.New(errors.ErrCodeUnsupported, "unsupported output format %q (want .dot or .svg)", ext)
	}

	t, err := c.loadTree(ctx)
	if err != nil {
		return err
	}

	highlight, err := highlightIDs(t, opts)
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(t, nodelink.Options{Detailed: opts.detailed, Highlight: highlight})
	data, err := renderBytes(ctx, cmd.ErrOrStderr(), dot, ext)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", opts.output)
	}

	w := cmd.OutOrStdout()
	printSuccess(w, "Rendered %d vampires", t.Len())
	printFile(w, opts.output)
	return nil
}

func highlightIDs(t *lineage.Tree, opts renderOpts) ([]lineage.ID, error) {
	ids := make([]lineage.ID, 0, len(opts.highlight)+1)
	for _, name := range opts.highlight {
		id, err := resolve(t, strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if !opts.ancestor {
		return ids, nil
	}
	if len(ids) != 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "--ancestor needs exactly two highlighted vampires, got %d", len(ids))
	}
	cca, err := closestCommonAncestor(t, ids[0], ids[1])
	if err != nil {
		return nil, err
	}
	return append(ids, cca), nil
}

func renderBytes(ctx context.Context, progress io.Writer, dot, ext string) ([]byte, error) {
	if ext == ".dot" {
		return []byte(dot), nil
	}

	spinner := newSpinner(ctx, progress, "Rendering SVG...")
	spinner.Start()
	svg, err := nodelink.RenderSVG(ctx, dot)
	spinner.Stop()
	if spinner.Cancelled() {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
	}
	return svg, nil
}
