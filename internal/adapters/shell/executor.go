// Package shell provides the command executor adapter used by configured
// build rules.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/masonbuild/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs argv with env applied on top of the process environment.
// Command output is streamed to the telemetry vertex carried by ctx when
// one is present, otherwise line-wise to the logger.
func (e *Executor) Execute(ctx context.Context, argv []string, env map[string]string) error {
	if len(argv) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Env = mergeEnvironment(os.Environ(), env)

	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = v.Stdout()
		cmd.Stderr = v.Stderr()
	} else {
		cmd.Stdout = &logWriter{logger: e.logger}
		cmd.Stderr = &logWriter{logger: e.logger, stderr: true}
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(
			zerr.With(zerr.Wrap(err, "command failed"), "command", argv[0]),
			"exit_code", exitCode,
		)
	}
	return nil
}

// mergeEnvironment applies overrides on top of the base KEY=VALUE list.
func mergeEnvironment(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}
	merged := make(map[string]string, len(base)+len(overrides))
	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			merged[k] = v
		}
	}
	for k, v := range overrides {
		merged[k] = v
	}
	result := make([]string, 0, len(merged))
	for k, v := range merged {
		result = append(result, k+"="+v)
	}
	return result
}

// logWriter forwards command output to the logger line by line.
type logWriter struct {
	logger ports.Logger
	stderr bool
}

var _ io.Writer = (*logWriter)(nil)

func (w *logWriter) Write(p []byte) (int, error) {
	for line := range strings.Lines(strings.TrimSuffix(string(p), "\n")) {
		line = strings.TrimSuffix(line, "\n")
		if w.stderr {
			w.logger.Warn(line)
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
