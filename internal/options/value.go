package options

// Value is a general option as returned by Store.Get. Boolean options carry
// their parsed value; every other option is an opaque string.
type Value struct {
	raw     string
	boolean bool
	isBool  bool
}

// IsBool reports whether the option is one of the boolean keys.
func (v Value) IsBool() bool { return v.isBool }

// Bool returns the parsed value and whether the option is boolean.
func (v Value) Bool() (bool, bool) { return v.boolean, v.isBool }

// String returns the value as stored in the options file.
func (v Value) String() string { return v.raw }
