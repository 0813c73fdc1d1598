package ports

import "github.com/masonbuild/mason/internal/core/domain"

// JournalStore persists the record of each invoked build action.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type JournalStore interface {
	// Get retrieves the last record for a target.
	// Returns nil, nil if not found.
	Get(target string) (*domain.Record, error)

	// Put stores the record, replacing any previous one for the target.
	Put(rec domain.Record) error
}
