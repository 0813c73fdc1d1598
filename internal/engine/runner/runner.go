// Package runner implements the dependency-resolution and execution engine.
//
// A Runner is compiled from a registry snapshot and resolves targets
// recursively: dependencies first, then a timestamp staleness check, then
// the build action if the target is out of date. Concurrent requests for
// the same target share a single in-flight resolution.
package runner

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/masonbuild/mason/internal/core/domain"
	"github.com/masonbuild/mason/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configures a compiled Runner. Telemetry and Journal are optional;
// a nil field disables that concern.
type Options struct {
	// Telemetry receives one vertex per rule-backed target.
	Telemetry ports.Telemetry
	// Journal receives a record for every invoked build action.
	Journal ports.JournalStore
	// Force rebuilds every rule-backed target regardless of timestamps.
	Force bool
}

// Runner resolves and builds targets against an immutable task snapshot.
// The resolved set is terminal for the Runner's lifetime: once a target has
// been confirmed current it is never re-evaluated, even across build calls.
type Runner struct {
	tasks map[domain.InternedString]domain.Task
	order []domain.InternedString

	stamps   *stampCache
	log      ports.Logger
	tel      ports.Telemetry
	journal  ports.JournalStore
	forceAll bool

	mu       sync.Mutex
	resolved map[domain.InternedString]struct{}
	inflight map[domain.InternedString]*inflight
}

// inflight is the shared handle for one running resolution. err is written
// before done is closed and never afterwards.
type inflight struct {
	done chan struct{}
	err  error
}

// Compile builds a Runner over an independent snapshot of the registry.
// Later registrations on reg do not affect the returned Runner.
func Compile(reg *domain.Registry, ts ports.Timestamper, log ports.Logger, opts Options) *Runner {
	tasks, order := reg.Snapshot()
	return &Runner{
		tasks:    tasks,
		order:    order,
		stamps:   newStampCache(ts),
		log:      log,
		tel:      opts.Telemetry,
		journal:  opts.Journal,
		forceAll: opts.Force,
		resolved: make(map[domain.InternedString]struct{}),
		inflight: make(map[domain.InternedString]*inflight),
	}
}

// Build resolves target and, if necessary, builds it and transitively all
// its dependencies. A second call for the same target after success is a
// no-op.
func (r *Runner) Build(ctx context.Context, target string) error {
	return r.resolve(ctx, domain.NewInternedString(target), nil)
}

// BuildAll resolves every registered target in registration order,
// sequentially at the top level. The first failure aborts the run; no
// further top-level targets are started.
func (r *Runner) BuildAll(ctx context.Context) error {
	for _, target := range r.order {
		if err := r.resolve(ctx, target, nil); err != nil {
			return err
		}
	}
	return nil
}

// resolve drives one target through the resolution state machine. path is
// the ancestor chain of the current recursion branch; each branch owns its
// own copy, so sibling branches never see each other's ancestors.
func (r *Runner) resolve(ctx context.Context, target domain.InternedString, path []domain.InternedString) error {
	if slices.Contains(path, target) {
		return cycleError(path, target)
	}

	r.mu.Lock()
	if _, done := r.resolved[target]; done {
		r.mu.Unlock()
		return nil
	}
	if f, running := r.inflight[target]; running {
		r.mu.Unlock()
		select {
		case <-f.done:
			return f.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f := &inflight{done: make(chan struct{})}
	r.inflight[target] = f
	r.mu.Unlock()

	err := r.run(ctx, target, path)

	r.mu.Lock()
	if err == nil {
		r.resolved[target] = struct{}{}
	}
	delete(r.inflight, target)
	r.mu.Unlock()

	f.err = err
	close(f.done)
	return err
}

// run performs the actual resolution work for a target that is neither
// resolved nor already in flight.
func (r *Runner) run(ctx context.Context, target domain.InternedString, path []domain.InternedString) error {
	task, hasRule := r.tasks[target]
	if !hasRule {
		// A leaf is a pure filesystem fact: it must already exist.
		stamp, err := r.stamps.get(ctx, target)
		if err != nil {
			return err
		}
		if !stamp.Exists() {
			return zerr.With(domain.ErrMissingDependency, "target", target.String())
		}
		return nil
	}

	deps := task.UniqueDependencies()
	if len(deps) > 0 {
		branch := append(slices.Clone(path), target)
		var g errgroup.Group
		for _, dep := range deps {
			g.Go(func() error {
				return r.resolve(ctx, dep, branch)
			})
		}
		// First failure wins; siblings still in flight are not cancelled.
		if err := g.Wait(); err != nil {
			return err
		}
	}

	stale, err := r.isStale(ctx, &task, deps)
	if err != nil {
		return err
	}
	if !stale {
		if r.tel != nil {
			_, v := r.tel.Record(ctx, target.String())
			v.Cached()
		}
		return nil
	}

	return r.build(ctx, target, &task)
}

// isStale evaluates the staleness of a rule-backed target after all of its
// dependencies have resolved. The dependency existence check here is
// authoritative over the recursive resolve's own check: a dependency task
// may have resolved without leaving an artifact behind.
func (r *Runner) isStale(ctx context.Context, task *domain.Task, deps []domain.InternedString) (bool, error) {
	depStamps := make([]domain.Stamp, len(deps))
	for i, dep := range deps {
		stamp, err := r.stamps.get(ctx, dep)
		if err != nil {
			return false, err
		}
		if !stamp.Exists() {
			return false, zerr.With(domain.ErrMissingDependency, "target", dep.String())
		}
		depStamps[i] = stamp
	}

	own, err := r.stamps.get(ctx, task.Target)
	if err != nil {
		return false, err
	}

	if r.forceAll || task.Force || !own.Exists() {
		return true, nil
	}
	for _, stamp := range depStamps {
		if stamp.NewerThan(own) {
			return true, nil
		}
	}
	return false, nil
}

// build invokes the task's action, then verifies the artifact exists. The
// target's cached stamp is evicted first thing after the action since the
// artifact's timestamp is now stale data.
func (r *Runner) build(ctx context.Context, target domain.InternedString, task *domain.Task) (err error) {
	if r.tel != nil {
		var v ports.Vertex
		ctx, v = r.tel.Record(ctx, target.String())
		defer func() { v.Complete(err) }()
	}

	started := time.Now()
	actionErr := task.Action(ctx)
	r.record(task, started, actionErr)
	if actionErr != nil {
		// Build action failures propagate unwrapped.
		return actionErr
	}

	r.stamps.evict(target)
	stamp, err := r.stamps.get(ctx, target)
	if err != nil {
		return err
	}
	if !stamp.Exists() {
		return zerr.With(domain.ErrNoBuildOutput, "target", target.String())
	}
	return nil
}

// record writes the journal entry for an invoked action. Journal failures
// never fail the build.
func (r *Runner) record(task *domain.Task, started time.Time, actionErr error) {
	if r.journal == nil {
		return
	}
	rec := domain.Record{
		Target:      task.Target.String(),
		Fingerprint: task.Fingerprint(),
		StartedAt:   started,
		Duration:    time.Since(started),
		Success:     actionErr == nil,
	}
	if err := r.journal.Put(rec); err != nil {
		r.log.Warn("failed to record build in journal: " + err.Error())
	}
}

// cycleError renders the minimal closed path of a detected cycle, from the
// target's first occurrence in the ancestor chain back to itself
// (e.g. "a -> b -> a").
func cycleError(path []domain.InternedString, target domain.InternedString) error {
	start := slices.Index(path, target)
	var b strings.Builder
	for _, node := range path[start:] {
		b.WriteString(node.String())
		b.WriteString(" -> ")
	}
	b.WriteString(target.String())
	return zerr.With(domain.ErrCycleDetected, "cycle", b.String())
}
