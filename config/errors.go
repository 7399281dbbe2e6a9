package config

import "strconv"

// MissingKeyError is returned when a required leaf has no value in the
// source. Key is the source-side key (e.g. "API_KEY").
type MissingKeyError struct{ Key string }

// Error implements the error interface.
func (e MissingKeyError) Error() string {
	// Example: config: required key "API_KEY" missing
	return "config: required key " + strconv.Quote(e.Key) + " missing"
}

// ParseError is returned when a raw value cannot be converted to the
// leaf's declared type.
type ParseError struct {
	// Key is the source-side key the value was read from.
	Key string

	// Value is the raw string that failed conversion.
	Value string

	// Want names the expected form, e.g. "integer".
	Want string
}

// Error implements the error interface.
func (e ParseError) Error() string {
	// Example: config: key "TIMEOUT": cannot parse "abc" as integer
	return "config: key " + strconv.Quote(e.Key) + ": cannot parse " + strconv.Quote(e.Value) + " as " + e.Want
}
