package paths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWithOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigHome, dir)

	p, err := Default()
	require.NoError(t, err)
	assert.Equal(t, dir, p.OptionsDir)
	assert.Equal(t, filepath.Join(dir, "scour.conf"), p.OptionsFile)
}

func TestDefaultUsesXDGConfigHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only consulted on Linux")
	}
	base := t.TempDir()
	t.Setenv(EnvConfigHome, "")
	t.Setenv("XDG_CONFIG_HOME", base)

	p, err := Default()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "scour"), p.OptionsDir)
	assert.Equal(t, filepath.Join(base, "scour", "scour.conf"), p.OptionsFile)
}

func TestForFile(t *testing.T) {
	p := ForFile(filepath.Join("tmp", "custom", "prefs.ini"))
	assert.Equal(t, filepath.Join("tmp", "custom"), p.OptionsDir)
	assert.Equal(t, filepath.Join("tmp", "custom", "prefs.ini"), p.OptionsFile)
}
