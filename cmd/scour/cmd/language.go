package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiroan/scour/internal/ui"
)

func newLanguageCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "language",
		Aliases: []string{"lang"},
		Short:   "Manage languages preserved during cleanup",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List preserved languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, code := range app.store.Languages() {
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get CODE",
		Short: "Report whether a language is preserved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preserved, err := app.store.Language(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Flag(preserved, args[0]))
			return nil
		},
	})

	cmd.AddCommand(newLanguageSetCmd(app, "preserve", "Keep translations for the given languages", true))
	cmd.AddCommand(newLanguageSetCmd(app, "drop", "Stop preserving the given languages", false))

	return cmd
}

func newLanguageSetCmd(app *application, use, short string, preserve bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " CODE...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, code := range args {
				code = strings.TrimSpace(code)
				if code == "" {
					continue
				}
				if err := app.store.SetLanguage(code, preserve); err != nil {
					return err
				}
				app.logger.Debug("language updated", "language", code, "preserve", preserve)
			}
			return nil
		},
	}
}
