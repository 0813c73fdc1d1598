package domain

import "context"

// BuildAction produces or refreshes the artifact at a task's target path.
// Errors returned by an action propagate to the caller unwrapped.
type BuildAction func(ctx context.Context) error

// Task binds a target artifact to the dependencies and action that produce
// it. The zero values are the documented defaults: no dependencies, no
// forced rebuild.
type Task struct {
	// Target is the file path this task produces. It doubles as the task's
	// unique registry key and as the path checked for staleness.
	Target InternedString

	// Dependencies are the target paths this task consumes. Duplicates are
	// permitted in declaration and deduplicated before resolution.
	Dependencies []InternedString

	// Force makes the task rebuild on every run regardless of timestamps.
	Force bool

	// Action performs the build side effect. Required.
	Action BuildAction
}

// UniqueDependencies returns the task's dependency list with duplicates
// removed, preserving first occurrence.
func (t *Task) UniqueDependencies() []InternedString {
	if len(t.Dependencies) == 0 {
		return nil
	}
	seen := make(map[InternedString]struct{}, len(t.Dependencies))
	deps := make([]InternedString, 0, len(t.Dependencies))
	for _, d := range t.Dependencies {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		deps = append(deps, d)
	}
	return deps
}
