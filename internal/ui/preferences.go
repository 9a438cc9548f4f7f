package ui

// Preferences controls runtime UI settings.
type Preferences struct {
	Theme   string
	Dense   bool
	NoColor bool
}

// CurrentPreferences holds the active UI preferences.
var CurrentPreferences = Preferences{
	Theme: defaultThemeName,
}

// ApplyPreferences updates UI preferences and the active palette.
func ApplyPreferences(p Preferences) {
	if p.Theme == "" {
		p.Theme = defaultThemeName
	}
	CurrentPreferences = p

	palette := PaletteByName(p.Theme)
	palette.Disabled = p.NoColor
	ApplyPalette(palette)
}
