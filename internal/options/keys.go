package options

import (
	"fmt"
	"slices"
	"strings"
)

const (
	sectionGeneral   = "general"
	sectionLanguages = "preserve_languages"
	sectionTree      = "tree"
)

// General option names with special meaning to the store.
const (
	KeyAutoHide           = "auto_hide"
	KeyCheckOnlineUpdates = "check_online_updates"
	KeyFirstStart         = "first_start"
	KeyShred              = "shred"
	KeyVersion            = "version"
)

var booleanKeys = []string{
	KeyAutoHide,
	KeyCheckOnlineUpdates,
	KeyFirstStart,
	KeyShred,
}

type defaultOption struct {
	key   string
	value bool
}

var defaults = []defaultOption{
	{KeyAutoHide, false},
	{KeyCheckOnlineUpdates, true},
	{KeyShred, false},
}

// BooleanKeys returns the general options that are read back as booleans.
func BooleanKeys() []string {
	return slices.Clone(booleanKeys)
}

// IsBooleanKey reports whether key is read back as a boolean.
func IsBooleanKey(key string) bool {
	return slices.Contains(booleanKeys, keyName(key))
}

// TreeID joins a tree node's parent and child into the id stored on disk.
// An empty child addresses the parent node itself.
func TreeID(parent, child string) string {
	if child == "" {
		return parent
	}
	return parent + "." + child
}

// FormatBool renders a boolean the way the options file stores it.
func FormatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// ParseBool accepts the spellings written by this package and common
// alternatives typed by users (yes/no, on/off, 1/0).
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrNotBoolean, s)
}

// keyName folds a name to the lowercase form used on disk, so lookups
// match files written with any letter case.
func keyName(name string) string {
	return strings.ToLower(name)
}

// validateKey rejects names that would be read back as a comment, a
// section header, an auto-increment key, or with different spacing.
func validateKey(name string) error {
	switch {
	case name == "", name == "-":
	case strings.TrimSpace(name) != name:
	case strings.ContainsAny(name, "\r\n"):
	case strings.ContainsAny(name[:1], "#;["):
	case strings.Contains(name, "`") && strings.ContainsAny(name, `"=:`):
	default:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidKey, name)
}

// validateValue rejects values whose surrounding whitespace would be
// trimmed, that span lines, or that open with a multi-line quote.
func validateValue(value string) error {
	switch {
	case strings.TrimSpace(value) != value:
	case strings.ContainsAny(value, "\r\n"):
	case strings.HasPrefix(value, `"""`):
	default:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidValue, value)
}

func formatValue(value any) string {
	switch v := value.(type) {
	case bool:
		return FormatBool(v)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
