package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
)

type periodLockRepo struct{ access }

var _ portsrepo.PeriodLockRepositoryFacade = (*periodLockRepo)(nil)

func (r *periodLockRepo) FindPeriodLock(ctx context.Context, tenantID string, period domain.Period) (*domain.PeriodLock, error) {
	var out *domain.PeriodLock
	err := r.read(func(st *state) error {
		lock, ok := st.locks[lockKey(tenantID, period)]
		if !ok {
			return apperrors.NewNotFoundError("period lock " + period.String())
		}
		out = &lock
		return nil
	})
	return out, err
}

func (r *periodLockRepo) ListPeriodLocks(ctx context.Context, tenantID string) ([]domain.PeriodLock, error) {
	var out []domain.PeriodLock
	err := r.read(func(st *state) error {
		for _, lock := range st.locks {
			if lock.TenantID == tenantID {
				out = append(out, lock)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, err
}

func (r *periodLockRepo) SavePeriodLock(ctx context.Context, lock domain.PeriodLock) error {
	return r.write(func(st *state) error {
		k := lockKey(lock.TenantID, lock.Period())
		if _, ok := st.locks[k]; ok {
			return fmt.Errorf("period %s: %w", lock.Period(), apperrors.ErrDuplicate)
		}
		st.locks[k] = lock
		return nil
	})
}

func (r *periodLockRepo) DeletePeriodLock(ctx context.Context, tenantID string, period domain.Period) error {
	return r.write(func(st *state) error {
		k := lockKey(tenantID, period)
		if _, ok := st.locks[k]; !ok {
			return apperrors.NewNotFoundError("period lock " + period.String())
		}
		delete(st.locks, k)
		return nil
	})
}
