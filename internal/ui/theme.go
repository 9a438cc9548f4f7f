package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme styles the settings form. The form only has confirms, selects
// and multi-selects, and multi-select entries use the same dots as Flag.
func HuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.BorderForeground(Border)
	f.Title = SectionTitle.UnsetMarginTop()
	f.Description = HintStyle
	f.ErrorIndicator = f.ErrorIndicator.Foreground(Error)
	f.ErrorMessage = ErrorStyle

	f.SelectSelector = KeyStyle.SetString("> ")
	f.MultiSelectSelector = KeyStyle.SetString("> ")
	f.Option = f.Option.Foreground(Foreground)
	f.SelectedOption = f.SelectedOption.Foreground(Success)
	f.UnselectedOption = f.UnselectedOption.Foreground(Foreground)
	f.SelectedPrefix = StatusOn.SetString(StatusOn.Value() + " ")
	f.UnselectedPrefix = StatusOff.SetString(StatusOff.Value() + " ")

	f.FocusedButton = f.FocusedButton.Foreground(Background).Background(Primary).Bold(true)
	f.BlurredButton = f.BlurredButton.Foreground(Muted).Background(lipgloss.NoColor{})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.SelectSelector = lipgloss.NewStyle().SetString("  ")
	t.Blurred.MultiSelectSelector = lipgloss.NewStyle().SetString("  ")

	return t
}
