package cmd

import (
	"github.com/spf13/cobra"
)

func newShowCmd(app *application) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every stored preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			return renderSnapshot(cmd.OutOrStdout(), app.store.Snapshot(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, yaml, or json")
	return cmd
}
