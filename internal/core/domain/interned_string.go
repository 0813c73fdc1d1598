package domain

import "unique"

// InternedString wraps a unique.Handle[string]. Target identifiers repeat
// heavily across dependency lists, so interning keeps comparisons cheap and
// map keys small.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns its handle.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the underlying string value. The zero InternedString
// renders as the empty string.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// IsZero reports whether is is the zero value (no string interned).
func (is InternedString) IsZero() bool {
	var zero unique.Handle[string]
	return is.h == zero
}
