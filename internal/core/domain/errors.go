package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateTarget is returned when registering a task whose target is
	// already registered. Re-registration is always an error, even with an
	// identical task.
	ErrDuplicateTarget = zerr.New("duplicate target")

	// ErrNilAction is returned when registering a task without a build action.
	ErrNilAction = zerr.New("task has no build action")

	// ErrCycleDetected is returned when a target reappears in its own ancestor
	// chain during resolution.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrMissingDependency is returned when a required artifact has no
	// registered task and does not exist on disk.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrNoBuildOutput is returned when a build action completed but left no
	// artifact at its target path.
	ErrNoBuildOutput = zerr.New("build produced no output")

	// ErrNoTargetsSpecified is returned when a build is requested without any
	// targets and without the all flag.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrRuleWithoutCommand is returned when a configured rule declares no
	// command to run.
	ErrRuleWithoutCommand = zerr.New("rule has no command")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
