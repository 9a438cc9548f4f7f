package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/iiroan/scour/internal/options"
)

// runScour executes the root command against an options file in a temp dir.
func runScour(t *testing.T, file string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LC_ALL", "de_DE.UTF-8")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--options-file", file, "--no-color", "--quiet"}, args...))
	err := root.Execute()
	return out.String(), err
}

func optionsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "scour", "scour.conf")
}

func TestGetDefaults(t *testing.T) {
	file := optionsFile(t)

	out, err := runScour(t, file, "get", "check_online_updates")
	require.NoError(t, err)
	assert.Equal(t, "True\n", out)

	out, err = runScour(t, file, "get", "shred")
	require.NoError(t, err)
	assert.Equal(t, "False\n", out)

	_, err = runScour(t, file, "get", "missing")
	assert.ErrorIs(t, err, options.ErrMissingKey)
}

func TestSetAndToggle(t *testing.T) {
	file := optionsFile(t)

	_, err := runScour(t, file, "set", "shred=yes", "theme=mono")
	require.NoError(t, err)

	out, err := runScour(t, file, "get", "shred")
	require.NoError(t, err)
	assert.Equal(t, "True\n", out)

	out, err = runScour(t, file, "get", "theme")
	require.NoError(t, err)
	assert.Equal(t, "mono\n", out)

	out, err = runScour(t, file, "toggle", "shred")
	require.NoError(t, err)
	assert.Equal(t, "shred = False\n", out)
}

func TestSetRejectsBadInput(t *testing.T) {
	file := optionsFile(t)

	_, err := runScour(t, file, "set", "shred=maybe")
	assert.ErrorIs(t, err, options.ErrNotBoolean)

	_, err = runScour(t, file, "set", "shred")
	assert.Error(t, err)

	_, err = runScour(t, file, "set", "=true")
	assert.Error(t, err)
}

func TestLanguageCommands(t *testing.T) {
	file := optionsFile(t)

	out, err := runScour(t, file, "language", "list")
	require.NoError(t, err)
	assert.Equal(t, "de\n", out, "host language is preserved on first run")

	_, err = runScour(t, file, "language", "preserve", "fr", "pt")
	require.NoError(t, err)
	_, err = runScour(t, file, "language", "drop", "de")
	require.NoError(t, err)

	out, err = runScour(t, file, "language", "list")
	require.NoError(t, err)
	assert.Equal(t, "fr\npt\n", out)

	out, err = runScour(t, file, "lang", "get", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "○")
}

func TestTreeCommands(t *testing.T) {
	file := optionsFile(t)

	_, err := runScour(t, file, "tree", "check", "firefox", "cache")
	require.NoError(t, err)

	out, err := runScour(t, file, "tree", "get", "firefox", "cache")
	require.NoError(t, err)
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "firefox.cache")

	out, err = runScour(t, file, "tree", "get", "firefox")
	require.NoError(t, err)
	assert.Contains(t, out, "○")

	_, err = runScour(t, file, "tree", "uncheck", "firefox", "cache")
	require.NoError(t, err)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "firefox.cache")
}

func TestTreeRejectsEmptyParent(t *testing.T) {
	file := optionsFile(t)

	_, err := runScour(t, file, "tree", "check", "")
	assert.ErrorIs(t, err, options.ErrInvalidKey)

	_, err = runScour(t, file, "tree", "check", " ", "cache")
	assert.ErrorIs(t, err, options.ErrInvalidKey)

	_, err = runScour(t, file, "tree", "get", "")
	assert.ErrorIs(t, err, options.ErrInvalidKey)
}

func TestSetRejectsUnstorableNames(t *testing.T) {
	file := optionsFile(t)

	_, err := runScour(t, file, "set", "#theme=mono")
	assert.ErrorIs(t, err, options.ErrInvalidKey)

	_, err = runScour(t, file, "language", "preserve", "[de]")
	assert.ErrorIs(t, err, options.ErrInvalidKey)
}

func TestShowFormats(t *testing.T) {
	file := optionsFile(t)
	_, err := runScour(t, file, "tree", "check", "firefox", "cache")
	require.NoError(t, err)

	out, err := runScour(t, file, "show", "-o", "json")
	require.NoError(t, err)
	var fromJSON options.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, "True", fromJSON.General["check_online_updates"])
	assert.Equal(t, []string{"de"}, fromJSON.Languages)
	assert.True(t, fromJSON.Tree["firefox.cache"])

	out, err = runScour(t, file, "show", "-o", "yaml")
	require.NoError(t, err)
	var fromYAML options.Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, fromJSON, fromYAML)

	out, err = runScour(t, file, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "General")
	assert.Contains(t, out, "check_online_updates")
	assert.Contains(t, out, "firefox.cache")

	_, err = runScour(t, file, "show", "-o", "xml")
	assert.Error(t, err)
}

func TestCorruptOptionsFile(t *testing.T) {
	file := optionsFile(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o700))
	require.NoError(t, os.WriteFile(file, []byte("[general\n"), 0o600))

	_, err := runScour(t, file, "show")
	assert.ErrorIs(t, err, options.ErrCorrupt)
}

func TestVersionDoesNotTouchOptions(t *testing.T) {
	file := optionsFile(t)

	out, err := runScour(t, file, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")

	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestApplySettings(t *testing.T) {
	store, err := options.Open(options.Config{
		File:    optionsFile(t),
		Version: "1.0.0",
	})
	require.NoError(t, err)
	require.NoError(t, store.SetLanguage("en", true))

	before, err := loadSettings(store)
	require.NoError(t, err)
	assert.Equal(t, "scour", before.Theme)
	assert.Equal(t, []string{"en"}, before.Languages)

	after := before
	after.Shred = true
	after.Theme = "ember"
	after.Languages = []string{"de"}
	require.NoError(t, applySettings(store, before, after))

	shred, err := store.GetBool(options.KeyShred)
	require.NoError(t, err)
	assert.True(t, shred)

	theme, err := store.GetString(keyTheme)
	require.NoError(t, err)
	assert.Equal(t, "ember", theme)

	assert.Equal(t, []string{"de"}, store.Languages())

	_, err = store.Get(keyDense)
	assert.ErrorIs(t, err, options.ErrMissingKey, "unchanged values are not written")
}

func TestLanguageChoices(t *testing.T) {
	t.Setenv("LC_ALL", "fil_PH.UTF-8")
	choices := languageChoices([]string{"xx"})
	assert.Contains(t, choices, "xx")
	assert.Contains(t, choices, "fil")
	assert.Contains(t, choices, "en")
	assert.True(t, strings.Compare(choices[0], choices[len(choices)-1]) < 0)
}

func TestWatchPrintsChanges(t *testing.T) {
	file := optionsFile(t)
	_, err := runScour(t, file, "show")
	require.NoError(t, err)

	app := &application{optionsFile: file, quiet: true, noColor: true}
	app.setupLogger()
	require.NoError(t, app.openStore())

	root := newRootCmd()
	var out syncBuffer
	root.SetOut(&out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- app.watch(ctx, root) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Watching")
	}, 5*time.Second, 10*time.Millisecond)

	other, err := options.Open(options.Config{File: file, Version: app.store.Version()})
	require.NoError(t, err)
	require.NoError(t, other.SetTree("thumbnails", "", true))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "changed at")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), "thumbnails")

	cancel()
	require.NoError(t, <-done)
}
