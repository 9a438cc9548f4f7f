package cmd

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/scour/internal/locale"
	"github.com/iiroan/scour/internal/options"
	"github.com/iiroan/scour/internal/ui"
)

// commonLanguages are offered in the settings form in addition to the
// languages already preserved.
var commonLanguages = []string{
	"ar", "cs", "da", "de", "el", "en", "es", "fi", "fr", "he", "hu", "it",
	"ja", "ko", "nb", "nl", "pl", "pt", "ro", "ru", "sv", "tr", "uk", "zh",
}

// settingsValues is the subset of preferences edited by the settings form.
type settingsValues struct {
	AutoHide     bool
	CheckUpdates bool
	Shred        bool
	Dense        bool
	Theme        string
	Languages    []string
}

func newSettingsCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Edit preferences interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runSettings(cmd)
		},
	}
}

func (a *application) runSettings(cmd *cobra.Command) error {
	if !ui.IsInteractiveTerminal() {
		return errors.New("settings needs an interactive terminal; use 'scour set' instead")
	}

	current, err := loadSettings(a.store)
	if err != nil {
		return err
	}
	edited := current
	edited.Languages = slices.Clone(current.Languages)

	themeOptions := make([]huh.Option[string], 0, len(ui.ThemeNames()))
	for _, name := range ui.ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	ui.Banner(cmd.OutOrStdout(), "SETTINGS", "Changes are saved as soon as you confirm")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Hide Irrelevant Cleaners").
				Description("Hide cleaners for applications that are not installed").
				Value(&edited.AutoHide),
			huh.NewConfirm().
				Title("Check for Updates").
				Description("Check online for new releases at startup").
				Value(&edited.CheckUpdates),
			huh.NewConfirm().
				Title("Shred Files").
				Description("Overwrite files before deleting them").
				Value(&edited.Shred),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Preserve Languages").
				Description("Translations for these languages are never deleted").
				Options(huh.NewOptions(languageChoices(current.Languages)...)...).
				Value(&edited.Languages),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&edited.Theme),
			huh.NewConfirm().
				Title("Dense Layout").
				Description("Reduce vertical spacing").
				Value(&edited.Dense),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(newHuhBackOnQKeyMap())

	if err := form.Run(); err != nil {
		return err
	}

	if err := applySettings(a.store, current, edited); err != nil {
		return err
	}
	a.applyUISettings()

	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessBox.Render("Settings saved to "+a.store.Path()))
	return nil
}

func loadSettings(store *options.Store) (settingsValues, error) {
	var v settingsValues
	var err error

	if v.AutoHide, err = store.GetBool(options.KeyAutoHide); err != nil {
		return v, err
	}
	if v.CheckUpdates, err = store.GetBool(options.KeyCheckOnlineUpdates); err != nil {
		return v, err
	}
	if v.Shred, err = store.GetBool(options.KeyShred); err != nil {
		return v, err
	}
	v.Dense, _ = store.GetBool(keyDense)
	v.Theme, _ = store.GetString(keyTheme)
	if v.Theme == "" {
		v.Theme = ui.DefaultPalette().Name
	}
	v.Languages = store.Languages()
	return v, nil
}

// applySettings writes only the values that changed.
func applySettings(store *options.Store, before, after settingsValues) error {
	bools := []struct {
		key         string
		old, edited bool
	}{
		{options.KeyAutoHide, before.AutoHide, after.AutoHide},
		{options.KeyCheckOnlineUpdates, before.CheckUpdates, after.CheckUpdates},
		{options.KeyShred, before.Shred, after.Shred},
		{keyDense, before.Dense, after.Dense},
	}
	for _, b := range bools {
		if b.old == b.edited {
			continue
		}
		if err := store.Set(b.key, b.edited); err != nil {
			return err
		}
	}

	if before.Theme != after.Theme {
		if err := store.Set(keyTheme, after.Theme); err != nil {
			return err
		}
	}

	for _, code := range before.Languages {
		if !slices.Contains(after.Languages, code) {
			if err := store.SetLanguage(code, false); err != nil {
				return err
			}
		}
	}
	for _, code := range after.Languages {
		if !slices.Contains(before.Languages, code) {
			if err := store.SetLanguage(code, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// languageChoices merges the preserved languages, the host language, and
// commonLanguages into one sorted list.
func languageChoices(preserved []string) []string {
	seen := map[string]bool{}
	var choices []string
	add := func(code string) {
		if code != "" && !seen[code] {
			seen[code] = true
			choices = append(choices, code)
		}
	}

	for _, code := range preserved {
		add(code)
	}
	sys := locale.System{}
	if code, err := sys.LanguageCode(sys.DefaultLocale()); err == nil {
		add(code)
	}
	for _, code := range commonLanguages {
		add(code)
	}

	sort.Strings(choices)
	return choices
}
