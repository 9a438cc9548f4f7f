// Package paths resolves where scour keeps its per-user files.
//
// The default directory is $XDG_CONFIG_HOME/scour (or the platform
// equivalent returned by os.UserConfigDir). SCOUR_CONFIG_HOME overrides it.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName     = "scour"
	optionsName = "scour.conf"

	// EnvConfigHome overrides the options directory.
	EnvConfigHome = "SCOUR_CONFIG_HOME"
)

// Paths contains the filesystem locations used by scour.
type Paths struct {
	// OptionsDir holds the options file; created with mode 0700.
	OptionsDir string

	// OptionsFile is the INI file with the user's preferences.
	OptionsFile string
}

// Default returns the per-user paths, honoring SCOUR_CONFIG_HOME.
func Default() (*Paths, error) {
	dir := os.Getenv(EnvConfigHome)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user config directory: %w", err)
		}
		dir = filepath.Join(base, appName)
	}
	return inDir(dir), nil
}

// ForFile returns paths for an explicit options file, as given by --options-file.
func ForFile(file string) *Paths {
	return &Paths{
		OptionsDir:  filepath.Dir(file),
		OptionsFile: file,
	}
}

func inDir(dir string) *Paths {
	return &Paths{
		OptionsDir:  dir,
		OptionsFile: filepath.Join(dir, optionsName),
	}
}
