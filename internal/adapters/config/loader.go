// Package config provides the configuration loader for mason.
package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/masonbuild/mason/internal/core/domain"
	"github.com/masonbuild/mason/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory.
const DefaultFilename = "masonfile.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader over a YAML rule file. Each rule
// becomes a task whose action runs the rule's command through the executor.
type Loader struct {
	Filename string
	executor ports.Executor
}

// NewLoader creates a Loader reading DefaultFilename.
func NewLoader(executor ports.Executor) *Loader {
	return &Loader{
		Filename: DefaultFilename,
		executor: executor,
	}
}

// Load reads the configuration from the given working directory and returns
// the populated task registry.
func (l *Loader) Load(cwd string) (*domain.Registry, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Masonfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	reg := domain.NewRegistry()
	for _, rule := range file.Rules {
		task, err := l.taskFromRule(rule)
		if err != nil {
			return nil, err
		}
		if err := reg.Add(task); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// taskFromRule converts a rule DTO into a domain task. The rule's command
// and environment are captured by the task's action closure.
func (l *Loader) taskFromRule(rule RuleDTO) (domain.Task, error) {
	if len(rule.Cmd) == 0 {
		return domain.Task{}, zerr.With(domain.ErrRuleWithoutCommand, "target", rule.Target)
	}

	deps := make([]domain.InternedString, len(rule.Deps))
	for i, dep := range rule.Deps {
		deps[i] = domain.NewInternedString(dep)
	}

	argv, env := rule.Cmd, rule.Env
	return domain.Task{
		Target:       domain.NewInternedString(rule.Target),
		Dependencies: deps,
		Force:        rule.Force,
		Action: func(ctx context.Context) error {
			return l.executor.Execute(ctx, argv, env)
		},
	}, nil
}
