// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/masonbuild/mason/internal/core/domain"
)

// Timestamper maps a path to its last-modified stamp.
//
//go:generate go run go.uber.org/mock/mockgen -source=timestamper.go -destination=mocks/mock_timestamper.go -package=mocks
type Timestamper interface {
	// Stamp returns the artifact's last-modified stamp, or an absent stamp
	// with a nil error if the artifact does not exist. Any other failure
	// (e.g. a permission error) is fatal and propagates to the caller.
	Stamp(ctx context.Context, path string) (domain.Stamp, error)
}
