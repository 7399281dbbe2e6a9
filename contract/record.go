package contract

// Record is a loosely-typed API payload. An empty record means "no value";
// callers check Empty rather than handling an error.
type Record map[string]any

// Empty reports whether the record carries no fields.
func (r Record) Empty() bool { return len(r) == 0 }

// Int returns the field as an int. JSON decoding yields float64 for
// numbers, so both representations are accepted.
func (r Record) Int(key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// String returns the field as a string.
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Bool returns the field as a bool, or def when the field is absent or not
// a bool.
func (r Record) Bool(key string, def bool) bool {
	if b, ok := r[key].(bool); ok {
		return b
	}
	return def
}
