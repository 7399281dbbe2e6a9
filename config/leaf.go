package config

import "strconv"

// Leaf declares how one named configuration value is obtained: the
// container-side name, the source key it is read from, and the
// required/default/conversion semantics. Build leaves with String or Int
// and the Required/Default options.
type Leaf struct {
	// Name is the container-side name the value is stored under.
	Name string

	// From is the key looked up in the Source (e.g. "API_KEY").
	From string

	required bool
	def      any
	hasDef   bool

	// convert turns the raw string into the typed value; nil keeps the
	// string. want names the expected form for ParseError messages.
	convert func(string) (any, error)
	want    string
}

// Option adjusts a Leaf declaration.
type Option func(*Leaf)

// Required marks the leaf as mandatory: absence from the source is a
// MissingKeyError at configuration time.
func Required() Option {
	return func(l *Leaf) { l.required = true }
}

// Default supplies the value used when the source has no entry for the
// leaf. The value must already have the leaf's final type.
func Default(v any) Option {
	return func(l *Leaf) {
		l.def = v
		l.hasDef = true
	}
}

// String declares a string-valued leaf.
func String(name, from string, opts ...Option) Leaf {
	l := Leaf{Name: name, From: from}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Int declares an integer-valued leaf. A raw value that does not parse as
// an integer is a ParseError at configuration time.
func Int(name, from string, opts ...Option) Leaf {
	l := Leaf{
		Name: name,
		From: from,
		want: "integer",
		convert: func(raw string) (any, error) {
			return strconv.Atoi(raw)
		},
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Resolve reads the leaf from src. It returns (value, true, nil) when a
// value was obtained (from the source or the default), (nil, false, nil)
// when an optional leaf with no default is simply absent, and an error for
// missing required keys or failed conversions.
func (l Leaf) Resolve(src Source) (any, bool, error) {
	raw, ok := src.Lookup(l.From)
	if !ok || raw == "" {
		if l.required {
			return nil, false, MissingKeyError{Key: l.From}
		}
		if l.hasDef {
			return l.def, true, nil
		}
		return nil, false, nil
	}

	if l.convert == nil {
		return raw, true, nil
	}

	v, err := l.convert(raw)
	if err != nil {
		return nil, false, ParseError{Key: l.From, Value: raw, Want: l.want}
	}
	return v, true, nil
}
