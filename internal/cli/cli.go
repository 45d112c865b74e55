// Package cli implements the bloodline command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bloodline/pkg/buildinfo"
	"github.com/matzehuels/bloodline/pkg/errors"
	treeio "github.com/matzehuels/bloodline/pkg/io"
	"github.com/matzehuels/bloodline/pkg/lineage"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "bloodline"

	// envTree names the environment variable consulted when --tree is empty.
	envTree = "BLOODLINE_TREE"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	treePath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Bloodline answers questions about a vampire family tree",
		Long: `Bloodline loads a vampire family tree (who turned whom, and when) and answers
questions about it: generations, seniority, closest common ancestors,
descendants, and who was turned after a given year.

Without --tree (or ` + envTree + `), commands run against a built-in sample coven.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.treePath, "tree", "t", "", "tree file (.json, .toml, .yaml); default $"+envTree+" or the sample coven")

	// Register all subcommands
	root.AddCommand(c.showCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.seniorCommand())
	root.AddCommand(c.ancestorCommand())
	root.AddCommand(c.findCommand())
	root.AddCommand(c.descendantsCommand())
	root.AddCommand(c.afterCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Tree Loading
// =============================================================================

// loadTree resolves the tree source (flag, then environment, then the sample
// coven) and loads it.
func (c *CLI) loadTree(ctx context.Context) (*lineage.Tree, error) {
	logger := loggerFromContext(ctx)

	path := c.treePath
	if path == "" {
		path = os.Getenv(envTree)
	}
	if path == "" {
		logger.Debug("no tree file given, using the sample coven")
		t, _ := lineage.NewCoven()
		return t, nil
	}

	prog := newProgress(logger)
	t, err := treeio.Import(path)
	if err != nil {
		return nil, err
	}
	if originals := t.Originals(); len(originals) > 1 {
		logger.Warn("tree has more than one original", "count", len(originals))
	}
	prog.done(fmt.Sprintf("Loaded %d vampires from %s", t.Len(), path))
	return t, nil
}

// resolve looks up a vampire by name across every line in the tree.
func resolve(t *lineage.Tree, name string) (lineage.ID, error) {
	if err := errors.ValidateName(name); err != nil {
		return lineage.None, err
	}
	id, ok := t.Lookup(name)
	if !ok {
		return lineage.None, errors.New(errors.ErrCodeVampireNotFound, "no vampire named %q", name)
	}
	return id, nil
}

// resolvePair resolves two vampire names.
func resolvePair(t *lineage.Tree, a, b string) (lineage.ID, lineage.ID, error) {
	idA, err := resolve(t, a)
	if err != nil {
		return lineage.None, lineage.None, err
	}
	idB, err := resolve(t, b)
	if err != nil {
		return lineage.None, lineage.None, err
	}
	return idA, idB, nil
}
