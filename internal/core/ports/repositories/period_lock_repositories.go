package repositories

import (
	"context"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
)

// PeriodLockRepositoryFacade defines persistence for closed accounting months.
type PeriodLockRepositoryFacade interface {
	// FindPeriodLock returns the lock for a month, or an apperrors.ErrNotFound error.
	FindPeriodLock(ctx context.Context, tenantID string, period domain.Period) (*domain.PeriodLock, error)

	// ListPeriodLocks returns the tenant's locks, latest period first.
	ListPeriodLocks(ctx context.Context, tenantID string) ([]domain.PeriodLock, error)

	// SavePeriodLock persists a lock. An existing lock for the month yields apperrors.ErrDuplicate.
	SavePeriodLock(ctx context.Context, lock domain.PeriodLock) error

	// DeletePeriodLock removes the lock for a month.
	DeletePeriodLock(ctx context.Context, tenantID string, period domain.Period) error
}
