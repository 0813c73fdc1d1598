// Package domain contains the core domain models for the file-target build
// graph: tasks, the registry that collects them, and timestamp values.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Registry collects tasks keyed by target path, in insertion order. It is
// owned by the caller and mutated only through Add; runners operate on an
// independent snapshot so later registration never affects a compiled run.
type Registry struct {
	tasks map[InternedString]Task
	order []InternedString
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tasks: make(map[InternedString]Task),
	}
}

// Add registers a task under its target path. It fails with
// ErrDuplicateTarget if the target is already registered, leaving the
// registry unchanged, and with ErrNilAction if the task has no action.
func (r *Registry) Add(t Task) error {
	if t.Action == nil {
		return zerr.With(ErrNilAction, "target", t.Target.String())
	}
	if _, exists := r.tasks[t.Target]; exists {
		return zerr.With(ErrDuplicateTarget, "target", t.Target.String())
	}
	r.tasks[t.Target] = t
	r.order = append(r.order, t.Target)
	return nil
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}

// Lookup returns the task registered for the given target, if any.
func (r *Registry) Lookup(target InternedString) (Task, bool) {
	t, ok := r.tasks[target]
	return t, ok
}

// Tasks returns an iterator over the registered tasks in insertion order.
func (r *Registry) Tasks() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, target := range r.order {
			if !yield(r.tasks[target]) {
				return
			}
		}
	}
}

// Snapshot returns independent copies of the task map and the insertion
// order. Mutating the registry afterwards does not affect the copies.
func (r *Registry) Snapshot() (map[InternedString]Task, []InternedString) {
	tasks := make(map[InternedString]Task, len(r.tasks))
	for k, v := range r.tasks {
		tasks[k] = v
	}
	order := make([]InternedString, len(r.order))
	copy(order, r.order)
	return tasks, order
}
