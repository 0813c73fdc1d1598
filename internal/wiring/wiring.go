// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/masonbuild/mason/internal/adapters/config"
	_ "github.com/masonbuild/mason/internal/adapters/fs"
	_ "github.com/masonbuild/mason/internal/adapters/journal"
	_ "github.com/masonbuild/mason/internal/adapters/logger"
	_ "github.com/masonbuild/mason/internal/adapters/shell"
	_ "github.com/masonbuild/mason/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "github.com/masonbuild/mason/internal/app"
)
