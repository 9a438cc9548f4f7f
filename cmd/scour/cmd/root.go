package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iiroan/scour/internal/locale"
	"github.com/iiroan/scour/internal/options"
	"github.com/iiroan/scour/internal/paths"
	"github.com/iiroan/scour/internal/ui"
	"github.com/iiroan/scour/internal/version"
)

// General options read by the CLI itself.
const (
	keyTheme = "theme"
	keyDense = "dense"
)

// application is the composition root: it owns the logger and the single
// preference store handed to every command.
type application struct {
	verbose     bool
	quiet       bool
	noColor     bool
	optionsFile string

	logger *log.Logger
	store  *options.Store
}

func newRootCmd() *cobra.Command {
	app := &application{}

	rootCmd := &cobra.Command{
		Use:   "scour",
		Short: "Manage scour cleaner preferences",
		Long: "scour stores the preferences of the scour disk cleaner: general options,\n" +
			"languages to preserve during cleanup, and the state of the cleaner tree.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.setupLogger()
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			if err := app.openStore(); err != nil {
				return err
			}
			app.applyUISettings()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && ui.IsInteractiveTerminal() {
				return app.runRootTUI(cmd)
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&app.quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&app.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&app.optionsFile, "options-file", "", "Options file (default: $XDG_CONFIG_HOME/scour/scour.conf)")

	rootCmd.AddCommand(newShowCmd(app))
	rootCmd.AddCommand(newGetCmd(app))
	rootCmd.AddCommand(newSetCmd(app))
	rootCmd.AddCommand(newToggleCmd(app))
	rootCmd.AddCommand(newLanguageCmd(app))
	rootCmd.AddCommand(newTreeCmd(app))
	rootCmd.AddCommand(newSettingsCmd(app))
	rootCmd.AddCommand(newWatchCmd(app))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error: "+err.Error()))
		return err
	}
	return nil
}

func (a *application) openStore() error {
	p, err := a.resolvePaths()
	if err != nil {
		return err
	}

	store, err := options.Open(options.Config{
		File:    p.OptionsFile,
		Dir:     p.OptionsDir,
		Version: version.Current(),
		Locale:  locale.System{},
		Logger:  a.logger,
	})
	if err != nil {
		if errors.Is(err, options.ErrCorrupt) {
			return fmt.Errorf("%w (fix or remove the file to start over)", err)
		}
		return err
	}

	if store.FirstStart() {
		a.logger.Debug("first start", "version", store.Version(), "options", store.Path())
	}
	a.store = store
	return nil
}

func (a *application) resolvePaths() (*paths.Paths, error) {
	if a.optionsFile != "" {
		return paths.ForFile(a.optionsFile), nil
	}
	return paths.Default()
}

func (a *application) applyUISettings() {
	prefs := ui.Preferences{NoColor: a.noColor || os.Getenv("NO_COLOR") != ""}
	if theme, err := a.store.GetString(keyTheme); err == nil {
		prefs.Theme = theme
	}
	if dense, err := a.store.GetBool(keyDense); err == nil {
		prefs.Dense = dense
	}
	ui.ApplyPreferences(prefs)
}

func (a *application) setupLogger() {
	level := log.InfoLevel
	if a.verbose {
		level = log.DebugLevel
	}
	if a.quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !a.noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	a.logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: a.verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	a.logger.SetStyles(styles)
}

func (a *application) runRootTUI(cmd *cobra.Command) error {
	menuItems := []ui.MenuItem{
		{ID: "show", TitleText: "Show", Details: "Print every stored preference"},
		{ID: "settings", TitleText: "Settings", Details: "Edit general options, preserved languages, and theme"},
		{ID: "watch", TitleText: "Watch", Details: "Follow changes made by other scour instances"},
		{ID: "exit", TitleText: "Exit", Details: "Close scour"},
	}

	for {
		choice, err := ui.RunMenu("SCOUR", "Choose an action to continue.", menuItems,
			ui.WithInfo(
				ui.InfoLine{Label: "Options", Value: a.store.Path()},
				ui.InfoLine{Label: "Version", Value: a.store.Version()},
				ui.InfoLine{Label: "Languages", Value: fmt.Sprint(len(a.store.Languages()))},
			))
		if err != nil {
			return a.runRootFallback(cmd)
		}

		if choice == ui.MenuActionQuit || choice == "exit" || choice == "" {
			return nil
		}

		if err := a.runRootChoice(cmd, choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
	}
}

func (a *application) runRootFallback(cmd *cobra.Command) error {
	var choice string
	err := huh.NewSelect[string]().
		Title("Scour").
		Description("What would you like to do?").
		Options(
			huh.NewOption("Show", "show"),
			huh.NewOption("Settings", "settings"),
			huh.NewOption("Watch", "watch"),
			huh.NewOption("Exit", "exit"),
		).
		Value(&choice).
		WithTheme(ui.HuhTheme()).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	return a.runRootChoice(cmd, choice)
}

func (a *application) runRootChoice(cmd *cobra.Command, choice string) error {
	switch choice {
	case "show":
		return renderSnapshot(cmd.OutOrStdout(), a.store.Snapshot(), outputText)
	case "settings":
		return a.runSettings(cmd)
	case "watch":
		return a.runWatch(cmd)
	default:
		return nil
	}
}
