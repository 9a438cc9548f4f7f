package cmd

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// newHuhBackOnQKeyMap keeps default Huh bindings and lets q abandon the
// form without saving. Settings forms have no free-text fields, so q is
// never needed as input.
func newHuhBackOnQKeyMap() *huh.KeyMap {
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "discard"),
	)
	return keyMap
}
