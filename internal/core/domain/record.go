package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Record is the journal entry written after a build action runs. It is
// informational only: staleness decisions never read the journal.
type Record struct {
	Target      string        `json:"target,omitzero"`
	Fingerprint string        `json:"fingerprint,omitzero"`
	StartedAt   time.Time     `json:"started_at,omitzero"`
	Duration    time.Duration `json:"duration,omitzero"`
	Success     bool          `json:"success"`
}

// Fingerprint identifies the shape of the task's rule: its target, its
// deduplicated dependency list, and the force flag. Two runs of the same
// rule share a fingerprint even when the artifacts differ.
func (t *Task) Fingerprint() string {
	h := xxhash.New()

	_, _ = h.WriteString(t.Target.String())
	_, _ = h.Write([]byte{0})

	for _, dep := range t.UniqueDependencies() {
		_, _ = h.WriteString(dep.String())
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})

	if t.Force {
		_, _ = h.Write([]byte{1})
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
