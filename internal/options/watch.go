package options

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/ini.v1"
)

// Watcher reloads a Store when another process rewrites its file. Other
// instances still race on writes; the last writer wins.
type Watcher struct {
	store *Store
	fsw   *fsnotify.Watcher
}

// Watch starts watching the directory that holds the options file. Events
// are delivered once Run is called.
func (s *Store) Watch() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// The file is replaced by rename, so watch the directory rather than the inode.
	if err := fsw.Add(filepath.Dir(s.path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(s.path), err)
	}
	return &Watcher{store: s, fsw: fsw}, nil
}

// Run reloads the store and calls onChange each time the file changes on
// disk, until ctx is done or Close is called. onChange runs on the caller's
// goroutine. Writes made through the store itself are not reported.
func (w *Watcher) Run(ctx context.Context, onChange func(*Store)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.store.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			changed, err := w.store.reload()
			if err != nil {
				w.store.logger.Warn("could not reload options", "path", w.store.path, "error", err)
				continue
			}
			if changed {
				onChange(w.store)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.store.logger.Warn("options watcher error", "error", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// reload replaces the in-memory preferences with the file's contents when
// they differ from what this store last wrote. Missing defaults are filled
// in memory only; the file is left as the other writer made it.
func (s *Store) reload() (bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading options: %w", err)
	}
	if bytes.Equal(data, s.written) {
		return false, nil
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	s.file = file
	s.written = data
	s.applyDefaults()
	return true, nil
}
