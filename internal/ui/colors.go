package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

const defaultThemeName = "scour"

// Active palette colors.
var (
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
)

func init() {
	ApplyPalette(DefaultPalette())
}

// ThemeNames returns supported palette names.
func ThemeNames() []string {
	return []string{"scour", "ember", "mono"}
}

// PaletteByName returns a palette by theme name. Unknown names get the default.
func PaletteByName(name string) Palette {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ember":
		return Palette{
			Name:       "ember",
			Primary:    lipgloss.Color("#F97316"),
			Secondary:  lipgloss.Color("#F43F5E"),
			Accent:     lipgloss.Color("#FACC15"),
			Info:       lipgloss.Color("#38BDF8"),
			Success:    lipgloss.Color("#22C55E"),
			Warning:    lipgloss.Color("#F59E0B"),
			Error:      lipgloss.Color("#EF4444"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0F172A"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#475569"),
			Highlight:  lipgloss.Color("#FDBA74"),
		}
	case "mono":
		return Palette{
			Name:       "mono",
			Primary:    lipgloss.Color("#E2E8F0"),
			Secondary:  lipgloss.Color("#CBD5F5"),
			Accent:     lipgloss.Color("#94A3B8"),
			Info:       lipgloss.Color("#E2E8F0"),
			Success:    lipgloss.Color("#E2E8F0"),
			Warning:    lipgloss.Color("#94A3B8"),
			Error:      lipgloss.Color("#CBD5F5"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0B1220"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#64748B"),
			Highlight:  lipgloss.Color("#F8FAFC"),
		}
	default:
		return Palette{
			Name:       "scour",
			Primary:    lipgloss.Color("#4ADE80"),
			Secondary:  lipgloss.Color("#2DD4BF"),
			Accent:     lipgloss.Color("#A3E635"),
			Info:       lipgloss.Color("#60A5FA"),
			Success:    lipgloss.Color("#4ADE80"),
			Warning:    lipgloss.Color("#FBBF24"),
			Error:      lipgloss.Color("#F87171"),
			Muted:      lipgloss.Color("#8B9A8E"),
			Background: lipgloss.Color("#0C1410"),
			Foreground: lipgloss.Color("#E4EFE7"),
			Border:     lipgloss.Color("#2F4A3A"),
			Highlight:  lipgloss.Color("#BBF7D0"),
		}
	}
}

// DefaultPalette returns the default theme palette.
func DefaultPalette() Palette {
	return PaletteByName(defaultThemeName)
}

// ApplyPalette makes p the active palette and rebuilds the shared styles.
// A disabled palette renders without colors.
func ApplyPalette(p Palette) {
	if p.Disabled {
		p = Palette{Name: p.Name, Disabled: true}
	}
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Info = p.Info
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Background = p.Background
	Foreground = p.Foreground
	Border = p.Border
	Highlight = p.Highlight
	buildStyles()
}
