// Package options stores user preferences for scour in an INI file.
//
// The file has three sections: general options, locales to preserve during
// cleanup, and check states of the cleaner tree view. Every mutation rewrites
// the whole file before returning.
package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"gopkg.in/ini.v1"
)

func init() {
	// Write "key = value" without column alignment.
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// loadOptions reads values the way the original configparser files were
// written: names are case-insensitive, and '#', ';', a trailing backslash and
// surrounding quotes are part of the value.
var loadOptions = ini.LoadOptions{
	InsensitiveKeys:         true,
	IgnoreContinuation:      true,
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
}

// Locale supplies the host's default locale and reduces a locale name to
// its base language code.
type Locale interface {
	DefaultLocale() string
	LanguageCode(locale string) (string, error)
}

// Config holds the collaborators needed to open a Store.
type Config struct {
	// File is the options file. Required.
	File string
	// Dir is created with mode 0700 before the first write. Defaults to the
	// directory of File.
	Dir string
	// Version of the running application, stamped into the file.
	Version string
	// Locale seeds the preserved languages on first run. Optional.
	Locale Locale
	Logger *log.Logger
}

// Store holds the preferences in memory and mirrors every change to disk.
// A Store is not safe for concurrent use.
type Store struct {
	path    string
	dir     string
	version string
	locale  Locale
	logger  *log.Logger

	file       *ini.File
	written    []byte
	firstStart bool
}

// Open loads the options file, fills in defaults, and writes the result
// back before returning. A missing file starts from an empty set; a file
// that exists but cannot be parsed is reported as ErrCorrupt.
func Open(cfg Config) (*Store, error) {
	if cfg.File == "" {
		return nil, errors.New("options file path is required")
	}

	path, err := filepath.Abs(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("resolving options file: %w", err)
	}
	dir := cfg.Dir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	file, data, err := load(path)
	if err != nil {
		return nil, err
	}

	s := &Store{
		path:    path,
		dir:     dir,
		version: cfg.Version,
		locale:  cfg.Locale,
		logger:  logger,
		file:    file,
		written: data,
	}
	if err := s.initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

func load(path string) (*ini.File, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ini.Empty(loadOptions), nil, nil
		}
		return nil, nil, fmt.Errorf("reading options: %w", err)
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return file, data, nil
}

func (s *Store) initialize() error {
	general := s.applyDefaults()

	if _, err := s.file.GetSection(sectionLanguages); err != nil {
		s.seedLanguages()
	}

	if !general.HasKey(KeyVersion) || general.Key(KeyVersion).String() != s.version {
		s.firstStart = true
		general.Key(KeyFirstStart).SetValue(FormatBool(true))
	}
	general.Key(KeyVersion).SetValue(s.version)

	return s.flush()
}

// applyDefaults fills in the general options that have no stored value.
func (s *Store) applyDefaults() *ini.Section {
	general := s.file.Section(sectionGeneral)
	for _, d := range defaults {
		if !general.HasKey(d.key) {
			general.Key(d.key).SetValue(FormatBool(d.value))
		}
	}
	return general
}

// seedLanguages creates the language section and preserves the host's
// language. The section is created even when detection fails so that the
// seed is attempted only once.
func (s *Store) seedLanguages() {
	section := s.file.Section(sectionLanguages)
	if s.locale == nil {
		return
	}

	raw := s.locale.DefaultLocale()
	code, err := s.locale.LanguageCode(raw)
	if err != nil {
		s.logger.Warn("could not determine language to preserve", "locale", raw, "error", err)
		return
	}

	code = keyName(code)
	if err := validateKey(code); err != nil {
		s.logger.Warn("could not determine language to preserve", "locale", raw, "error", err)
		return
	}
	s.logger.Debug("automatically preserving language", "language", code)
	section.Key(code).SetValue(FormatBool(true))
}

// Path returns the absolute path of the options file.
func (s *Store) Path() string { return s.path }

// Version returns the application version stamped into the file.
func (s *Store) Version() string { return s.version }

// FirstStart reports whether Open found no stored version or a different one.
func (s *Store) FirstStart() bool { return s.firstStart }

// Get returns a general option. Boolean keys are parsed; other keys are
// returned as stored.
func (s *Store) Get(key string) (Value, error) {
	key = keyName(key)
	general := s.file.Section(sectionGeneral)
	if !general.HasKey(key) {
		return Value{}, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}

	k := general.Key(key)
	if !IsBooleanKey(key) {
		return Value{raw: k.String()}, nil
	}

	b, err := k.Bool()
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s = %q", ErrNotBoolean, key, k.String())
	}
	return Value{raw: k.String(), boolean: b, isBool: true}, nil
}

// GetBool returns a general option parsed as a boolean, whether or not the
// key is one of the boolean keys.
func (s *Store) GetBool(key string) (bool, error) {
	v, err := s.Get(key)
	if err != nil {
		return false, err
	}
	if b, ok := v.Bool(); ok {
		return b, nil
	}
	b, err := ParseBool(v.String())
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// GetString returns a general option as stored.
func (s *Store) GetString(key string) (string, error) {
	v, err := s.Get(key)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Set stores value under key in the general section and writes the file.
// Booleans are stored as True/False; other values use their string form.
// Names and values that would not read back unchanged are rejected with
// ErrInvalidKey or ErrInvalidValue.
func (s *Store) Set(key string, value any) error {
	key = keyName(key)
	if err := validateKey(key); err != nil {
		return err
	}
	raw := formatValue(value)
	if err := validateValue(raw); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	general := s.file.Section(sectionGeneral)
	if general.HasKey(key) {
		general.Key(key).SetValue(raw)
	} else if _, err := general.NewKey(key, raw); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidKey, key, err)
	}
	return s.flush()
}

// Toggle negates a boolean general option.
func (s *Store) Toggle(key string) error {
	v, err := s.GetBool(key)
	if err != nil {
		return err
	}
	return s.Set(key, !v)
}

// Language reports whether the locale code is preserved during cleanup.
func (s *Store) Language(code string) (bool, error) {
	return s.flag(sectionLanguages, code)
}

// SetLanguage marks a locale code as preserved or drops it.
func (s *Store) SetLanguage(code string, preserve bool) error {
	return s.setFlag(sectionLanguages, code, preserve)
}

// Languages returns the preserved locale codes in sorted order.
func (s *Store) Languages() []string {
	section, err := s.file.GetSection(sectionLanguages)
	if err != nil {
		return nil
	}

	var codes []string
	for _, k := range section.Keys() {
		if b, err := k.Bool(); err == nil && b {
			codes = append(codes, k.Name())
		}
	}
	sort.Strings(codes)
	return codes
}

// Tree returns the check state of a tree node. An empty child addresses
// the parent node.
func (s *Store) Tree(parent, child string) (bool, error) {
	return s.flag(sectionTree, TreeID(parent, child))
}

// SetTree stores the check state of a tree node. The parent is required.
func (s *Store) SetTree(parent, child string, value bool) error {
	if parent == "" {
		return fmt.Errorf("%w: tree node needs a parent", ErrInvalidKey)
	}
	return s.setFlag(sectionTree, TreeID(parent, child), value)
}

func (s *Store) flag(section, id string) (bool, error) {
	id = keyName(id)
	sec, err := s.file.GetSection(section)
	if err != nil || !sec.HasKey(id) {
		return false, nil
	}

	k := sec.Key(id)
	b, err := k.Bool()
	if err != nil {
		return false, fmt.Errorf("%w: %s.%s = %q", ErrNotBoolean, section, id, k.String())
	}
	return b, nil
}

// setFlag stores true values and removes false ones, so an absent id and
// a false id look the same on disk.
func (s *Store) setFlag(section, id string, value bool) error {
	id = keyName(id)
	if err := validateKey(id); err != nil {
		return err
	}

	sec := s.file.Section(section)
	switch {
	case !value && sec.HasKey(id):
		sec.DeleteKey(id)
	case value && sec.HasKey(id):
		sec.Key(id).SetValue(FormatBool(true))
	case value:
		if _, err := sec.NewKey(id, FormatBool(true)); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidKey, id, err)
		}
	}
	return s.flush()
}

// flush writes the whole file through a temporary file in the same
// directory so a failed write never leaves a truncated file behind.
func (s *Store) flush() error {
	for _, dir := range []string{s.dir, filepath.Dir(s.path)} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating options directory: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := s.file.WriteTo(&buf); err != nil {
		return fmt.Errorf("encoding options: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".options-*.tmp")
	if err != nil {
		return fmt.Errorf("writing options: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing options: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing options: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing options: %w", err)
	}

	s.written = buf.Bytes()
	return nil
}
