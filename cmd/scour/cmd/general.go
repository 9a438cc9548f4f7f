package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiroan/scour/internal/options"
)

func newGetCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print a general option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.store.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatOption(v))
			return nil
		},
	}
}

func newSetCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY=VALUE...",
		Short: "Store one or more general options",
		Long: "Store general options. Boolean options (" + strings.Join(options.BooleanKeys(), ", ") + ")\n" +
			"accept true/false, yes/no, on/off, or 1/0.",
		Example: "  scour set shred=true\n  scour set theme=mono dense=yes",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parseKeyValuePairs(args)
			if err != nil {
				return err
			}

			for _, key := range sortedKeys(pairs) {
				raw := pairs[key]
				var value any = raw
				if options.IsBooleanKey(key) {
					b, err := options.ParseBool(raw)
					if err != nil {
						return fmt.Errorf("%s: %w", key, err)
					}
					value = b
				}
				if err := app.store.Set(key, value); err != nil {
					return err
				}
				app.logger.Debug("option stored", "key", key, "value", value)
			}
			return nil
		},
	}
}

func newToggleCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle KEY",
		Short: "Flip a boolean general option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.store.Toggle(args[0]); err != nil {
				return err
			}
			v, err := app.store.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], formatOption(v))
			return nil
		},
	}
}

func formatOption(v options.Value) string {
	if b, ok := v.Bool(); ok {
		return options.FormatBool(b)
	}
	return v.String()
}
