package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/google/uuid"
)

type periodLockService struct {
	BaseService
	store portsrepo.Store
	audit portssvc.AuditRecorder
}

// NewPeriodLockService creates the month-close guard.
func NewPeriodLockService(store portsrepo.Store, audit portssvc.AuditRecorder, opts ...Option) portssvc.PeriodLockSvcFacade {
	return &periodLockService{BaseService: newBaseService(opts), store: store, audit: audit}
}

var _ portssvc.PeriodLockSvcFacade = (*periodLockService)(nil)

func isLocked(ctx context.Context, repos portsrepo.RepositoryProvider, tenantID string, date time.Time) (bool, error) {
	_, err := repos.PeriodLockRepo.FindPeriodLock(ctx, tenantID, domain.PeriodOf(date))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *periodLockService) IsLocked(ctx context.Context, tenantID string, date time.Time) (bool, error) {
	locked, err := isLocked(ctx, s.store.Repositories(), s.scope.Resolve(tenantID), date)
	if err != nil {
		s.LogError(ctx, err, "Failed to check period lock", slog.String("tenant_id", tenantID))
	}
	return locked, err
}

func (s *periodLockService) EnsureOpen(ctx context.Context, repos portsrepo.RepositoryProvider, tenantID string, date time.Time) error {
	locked, err := isLocked(ctx, repos, tenantID, date)
	if err != nil {
		return err
	}
	if locked {
		return fmt.Errorf("%w: %s", apperrors.ErrPeriodLocked, domain.PeriodOf(date))
	}
	return nil
}

func (s *periodLockService) LockPeriod(ctx context.Context, actor domain.Actor, req dto.LockPeriodRequest) (*domain.PeriodLock, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapManagePeriodLocks)
	if err != nil {
		return nil, err
	}
	period := domain.Period{Year: req.Year, Month: req.Month}
	if err := period.Validate(); err != nil {
		return nil, apperrors.NewValidationError("%v", err)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	lock := domain.PeriodLock{
		LockID:   uuid.NewString(),
		TenantID: tenantID,
		Year:     period.Year,
		Month:    period.Month,
		LockedBy: actor.UserID,
		LockedAt: s.Now(),
		Remarks:  strings.TrimSpace(req.Remarks),
	}
	err = s.store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		locked, err := isLocked(ctx, repos, tenantID, time.Date(period.Year, time.Month(period.Month), 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			return err
		}
		if locked {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateLock, period)
		}
		if err := repos.PeriodLockRepo.SavePeriodLock(ctx, lock); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return fmt.Errorf("%w: %s", apperrors.ErrDuplicateLock, period)
			}
			return err
		}
		return s.audit.Record(ctx, repos, actor, portssvc.AuditEvent{
			Action:     domain.AuditLock,
			EntityType: domain.EntityPeriodLock,
			EntityID:   lock.LockID,
			New:        map[string]any{"period": period.String()},
			Remarks:    lock.Remarks,
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to lock period", slog.String("period", period.String()), slog.String("tenant_id", tenantID))
		return nil, err
	}
	s.LogInfo(ctx, "Period locked", slog.String("period", period.String()), slog.String("tenant_id", tenantID))
	return &lock, nil
}

func (s *periodLockService) UnlockPeriod(ctx context.Context, actor domain.Actor, year, month int) error {
	tenantID, err := s.authorize(ctx, actor, domain.CapManagePeriodLocks)
	if err != nil {
		return err
	}
	period := domain.Period{Year: year, Month: month}
	if err := period.Validate(); err != nil {
		return apperrors.NewValidationError("%v", err)
	}

	err = s.store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		lock, err := repos.PeriodLockRepo.FindPeriodLock(ctx, tenantID, period)
		if err != nil {
			return err
		}
		if err := repos.PeriodLockRepo.DeletePeriodLock(ctx, tenantID, period); err != nil {
			return err
		}
		return s.audit.Record(ctx, repos, actor, portssvc.AuditEvent{
			Action:     domain.AuditUnlock,
			EntityType: domain.EntityPeriodLock,
			EntityID:   lock.LockID,
			Old:        map[string]any{"period": period.String(), "locked_by": lock.LockedBy},
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to unlock period", slog.String("period", period.String()), slog.String("tenant_id", tenantID))
		return err
	}
	s.LogInfo(ctx, "Period unlocked", slog.String("period", period.String()), slog.String("tenant_id", tenantID))
	return nil
}

func (s *periodLockService) ListLocks(ctx context.Context, actor domain.Actor) ([]domain.PeriodLock, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return nil, err
	}
	locks, err := s.store.Repositories().PeriodLockRepo.ListPeriodLocks(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list period locks", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return locks, nil
}
