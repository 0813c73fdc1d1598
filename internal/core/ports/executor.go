package ports

import "context"

// Executor runs the command of a configured build rule.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv with the given environment overrides applied on top
	// of the process environment. It returns an error if the command cannot
	// be started or exits non-zero.
	Execute(ctx context.Context, argv []string, env map[string]string) error
}
