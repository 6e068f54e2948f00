// Package storage selects and owns the backend's persistence: an in-memory
// store by default, or PostgreSQL when a DSN is configured.
package storage

import (
	"context"

	"github.com/dmitrijs2005/netops/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Users() users.Repository
	Close() error
}

// New returns a PostgreSQL manager with migrations applied when dsn is set,
// and an in-memory manager otherwise.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewInMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(ctx, dsn)
}
