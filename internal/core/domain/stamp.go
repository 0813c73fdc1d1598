package domain

import "time"

// Stamp is the last-modified instant of an artifact, or the distinguished
// absent value for artifacts that do not exist. Staleness comparisons are
// unambiguous this way: absence is a state, not a zero time.
type Stamp struct {
	mod    time.Time
	exists bool
}

// StampAt returns a present Stamp with the given modification time.
func StampAt(mod time.Time) Stamp {
	return Stamp{mod: mod, exists: true}
}

// AbsentStamp returns the Stamp of an artifact that does not exist.
func AbsentStamp() Stamp {
	return Stamp{}
}

// Exists reports whether the artifact was present when stamped.
func (s Stamp) Exists() bool {
	return s.exists
}

// ModTime returns the modification instant. It is only meaningful when
// Exists reports true.
func (s Stamp) ModTime() time.Time {
	return s.mod
}

// NewerThan reports whether s is strictly newer than other. Both stamps must
// be present; equal instants are not newer, so equal timestamps never
// trigger a rebuild.
func (s Stamp) NewerThan(other Stamp) bool {
	return s.exists && other.exists && s.mod.After(other.mod)
}
