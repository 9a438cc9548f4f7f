package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiroan/scour/internal/options"
	"github.com/iiroan/scour/internal/ui"
)

func newTreeCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Manage the check state of cleaner tree nodes",
		Long: "Tree nodes are addressed by a parent and an optional child,\n" +
			"stored as \"parent\" or \"parent.child\".",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get PARENT [CHILD]",
		Short: "Report whether a tree node is checked",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, child, err := treeArgs(args)
			if err != nil {
				return err
			}
			on, err := app.store.Tree(parent, child)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Flag(on, options.TreeID(parent, child)))
			return nil
		},
	})

	cmd.AddCommand(newTreeSetCmd(app, "check", "Mark a tree node as checked", true))
	cmd.AddCommand(newTreeSetCmd(app, "uncheck", "Clear a tree node", false))

	return cmd
}

func newTreeSetCmd(app *application, use, short string, value bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " PARENT [CHILD]",
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, child, err := treeArgs(args)
			if err != nil {
				return err
			}
			if err := app.store.SetTree(parent, child, value); err != nil {
				return err
			}
			app.logger.Debug("tree node updated", "id", options.TreeID(parent, child), "checked", value)
			return nil
		},
	}
}

func treeArgs(args []string) (parent, child string, err error) {
	parent = strings.TrimSpace(args[0])
	if len(args) > 1 {
		child = strings.TrimSpace(args[1])
	}
	if parent == "" {
		return "", "", fmt.Errorf("%w: tree node needs a parent", options.ErrInvalidKey)
	}
	return parent, child, nil
}
