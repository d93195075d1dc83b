package services

import (
	"context"
	"time"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger/internal/dto"
)

// PeriodGuard is consulted before any dated write.
type PeriodGuard interface {
	// IsLocked reports whether the month containing date is closed for the tenant.
	IsLocked(ctx context.Context, tenantID string, date time.Time) (bool, error)

	// EnsureOpen returns apperrors.ErrPeriodLocked when date falls in a closed
	// month, reading through repos so the check joins the caller's unit of work.
	EnsureOpen(ctx context.Context, repos portsrepo.RepositoryProvider, tenantID string, date time.Time) error
}

// PeriodLockSvcFacade manages closed months.
type PeriodLockSvcFacade interface {
	PeriodGuard
	LockPeriod(ctx context.Context, actor domain.Actor, req dto.LockPeriodRequest) (*domain.PeriodLock, error)
	UnlockPeriod(ctx context.Context, actor domain.Actor, year, month int) error
	ListLocks(ctx context.Context, actor domain.Actor) ([]domain.PeriodLock, error)
}
