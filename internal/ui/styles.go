// Package ui provides Charm-based UI components for scour
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Text styles
	Bold = lipgloss.NewStyle().Bold(true)

	Title        lipgloss.Style
	Tagline      lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style
	KeyStyle     lipgloss.Style
	SuccessBox   lipgloss.Style
	HeaderStyle  lipgloss.Style
	SectionTitle lipgloss.Style
	StatusOn     lipgloss.Style
	StatusOff    lipgloss.Style
)

func buildStyles() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Tagline = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HintStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	KeyStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	SuccessBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 1).
		Bold(true)

	SectionTitle = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true).
		MarginTop(1)

	// Status indicators
	StatusOn = lipgloss.NewStyle().
		Foreground(Success).
		SetString("●")

	StatusOff = lipgloss.NewStyle().
		Foreground(Muted).
		SetString("○")
}

// Header renders a screen title bar.
func Header(title string) string {
	return HeaderStyle.Render(title)
}

// Frame stacks a full-screen view: title bar, optional subtitle, body and
// footer. Dense mode drops the blank line under the title.
func Frame(title, subtitle, body, footer string) string {
	parts := []string{Header(title)}
	if subtitle != "" {
		parts = append(parts, Tagline.Render(subtitle))
	}
	if !CurrentPreferences.Dense {
		parts = append(parts, "")
	}
	parts = append(parts, body)
	if footer != "" {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Flag renders a boolean as a status dot followed by its label.
func Flag(on bool, label string) string {
	if on {
		return StatusOn.String() + " " + label
	}
	return StatusOff.String() + " " + MutedStyle.Render(label)
}
