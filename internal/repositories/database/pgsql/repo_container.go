package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store implements repositories.Store on a pgx pool. Units of work run in a
// single database transaction.
type Store struct {
	BaseRepository
}

// NewStore returns a Store over dbPool.
func NewStore(dbPool *pgxpool.Pool) *Store {
	return &Store{BaseRepository: BaseRepository{Pool: dbPool}}
}

var _ portsrepo.Store = (*Store)(nil)

// Do implements repositories.UnitOfWork.
func (s *Store) Do(ctx context.Context, fn func(repos portsrepo.RepositoryProvider) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored once committed
	defer s.Rollback(ctx, tx) //nolint:errcheck

	if err := fn(NewRepositoryProvider(tx)); err != nil {
		return err
	}
	return s.Commit(ctx, tx)
}

// Repositories implements repositories.Store.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return NewRepositoryProvider(s.Pool)
}

// NewRepositoryProvider builds every repository over db.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:    newPgxAccountRepository(db),
		LedgerRepo:     newPgxLedgerRepository(db),
		DocumentRepo:   newPgxDocumentRepository(db),
		PeriodLockRepo: newPgxPeriodLockRepository(db),
		AuditRepo:      newPgxAuditRepository(db),
		SettingsRepo:   newPgxSettingsRepository(db),
		TenantRepo:     newPgxTenantRepository(db),
	}
}
