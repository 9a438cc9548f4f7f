package options

import "errors"

var (
	// ErrMissingKey is returned when a general option has no value and no default.
	ErrMissingKey = errors.New("option not set")

	// ErrNotBoolean is returned when a boolean option holds a value that cannot be parsed.
	ErrNotBoolean = errors.New("option is not a boolean")

	// ErrInvalidKey is returned for option names and ids the file format
	// cannot store and read back unchanged.
	ErrInvalidKey = errors.New("invalid option name")

	// ErrInvalidValue is returned for values that would not read back unchanged.
	ErrInvalidValue = errors.New("invalid option value")

	// ErrCorrupt is returned by Open when the options file exists but cannot be parsed.
	ErrCorrupt = errors.New("options file is corrupt")
)
