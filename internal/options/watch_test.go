package options

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatchReloadsExternalWrites(t *testing.T) {
	cfg := testConfig(t)
	s := openStore(t, cfg)

	w, err := s.Watch()
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(s *Store) {
			changed <- s.Languages()
		})
	}()

	other := openStore(t, cfg)
	require.NoError(t, other.SetLanguage("de", true))

	select {
	case langs := <-changed:
		assert.Contains(t, langs, "de")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchRestoresDefaultsAfterReload(t *testing.T) {
	cfg := testConfig(t)
	s := openStore(t, cfg)

	w, err := s.Watch()
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(s *Store) {
			changed <- s.Languages()
		})
	}()

	// Another writer leaves out every general default.
	content := "[general]\nversion = 1.0.0\n\n[preserve_languages]\nfr = True\n"
	tmp := filepath.Join(cfg.Dir, ".external.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o600))
	require.NoError(t, os.Rename(tmp, cfg.File))

	select {
	case langs := <-changed:
		assert.Equal(t, []string{"fr"}, langs)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	cancel()
	require.NoError(t, <-done)

	autoHide, err := s.GetBool(KeyAutoHide)
	require.NoError(t, err)
	assert.False(t, autoHide)

	updates, err := s.GetBool(KeyCheckOnlineUpdates)
	require.NoError(t, err)
	assert.True(t, updates)
}
