// Package app implements the application layer for mason.
package app

import (
	"context"

	"github.com/masonbuild/mason/internal/core/domain"
	"github.com/masonbuild/mason/internal/core/ports"
	"github.com/masonbuild/mason/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App ties the configuration loader to the execution engine. A fresh Runner
// is compiled for every Run call so that each invocation sees the current
// configuration and starts with a clean resolved set.
type App struct {
	loader    ports.ConfigLoader
	stamper   ports.Timestamper
	journal   ports.JournalStore
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	stamper ports.Timestamper,
	journal ports.JournalStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		stamper:   stamper,
		journal:   journal,
		telemetry: telemetry,
		logger:    logger,
	}
}

// RunOptions carries the per-invocation build flags.
type RunOptions struct {
	// All builds every registered target in registration order.
	All bool
	// Force rebuilds targets regardless of timestamps.
	Force bool
}

// Run executes a build for the specified targets.
func (a *App) Run(ctx context.Context, targets []string, opts RunOptions) error {
	reg, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if !opts.All && len(targets) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	r := runner.Compile(reg, a.stamper, a.logger, runner.Options{
		Telemetry: a.telemetry,
		Journal:   a.journal,
		Force:     opts.Force,
	})

	if opts.All {
		err = r.BuildAll(ctx)
	} else {
		for _, target := range targets {
			if err = r.Build(ctx, target); err != nil {
				break
			}
		}
	}
	if err != nil {
		return zerr.Wrap(err, "build failed")
	}
	return nil
}
