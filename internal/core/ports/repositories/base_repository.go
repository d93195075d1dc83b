package repositories

import (
	"context"
)

// UnitOfWork runs fn against repositories bound to one store transaction.
// fn's error, or a failure to commit, rolls back every write made through
// the provided repositories.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos RepositoryProvider) error) error
}

// Store is the persistence entry point: non-transactional reads through
// Repositories and atomic writes through Do.
type Store interface {
	UnitOfWork

	// Repositories returns repositories that run each call on its own.
	Repositories() RepositoryProvider
}
