package pgsql

import (
	"context"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger/internal/models"
	"github.com/SscSPs/fund_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const periodLockColumns = `lock_id, tenant_id, year, month, locked_by, locked_at, remarks`

type PgxPeriodLockRepository struct {
	db DBTX
}

func newPgxPeriodLockRepository(db DBTX) *PgxPeriodLockRepository {
	return &PgxPeriodLockRepository{db: db}
}

var _ portsrepo.PeriodLockRepositoryFacade = (*PgxPeriodLockRepository)(nil)

func (r *PgxPeriodLockRepository) FindPeriodLock(ctx context.Context, tenantID string, period domain.Period) (*domain.PeriodLock, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+periodLockColumns+` FROM period_locks WHERE tenant_id = $1 AND year = $2 AND month = $3`,
		tenantID, period.Year, period.Month)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query period lock", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.PeriodLock])
	if err != nil {
		return nil, readError(err, "period lock "+period.String())
	}
	lock := mapping.ToDomainPeriodLock(m)
	return &lock, nil
}

func (r *PgxPeriodLockRepository) ListPeriodLocks(ctx context.Context, tenantID string) ([]domain.PeriodLock, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+periodLockColumns+` FROM period_locks WHERE tenant_id = $1 ORDER BY year DESC, month DESC`,
		tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list period locks", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PeriodLock])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan period locks", err)
	}
	locks := make([]domain.PeriodLock, len(ms))
	for i, m := range ms {
		locks[i] = mapping.ToDomainPeriodLock(m)
	}
	return locks, nil
}

func (r *PgxPeriodLockRepository) SavePeriodLock(ctx context.Context, lock domain.PeriodLock) error {
	var remarks *string
	if lock.Remarks != "" {
		remarks = &lock.Remarks
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO period_locks (`+periodLockColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		lock.LockID, lock.TenantID, lock.Year, lock.Month, lock.LockedBy, lock.LockedAt, remarks)
	if err != nil {
		return writeError(err, "period "+lock.Period().String())
	}
	return nil
}

func (r *PgxPeriodLockRepository) DeletePeriodLock(ctx context.Context, tenantID string, period domain.Period) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM period_locks WHERE tenant_id = $1 AND year = $2 AND month = $3`,
		tenantID, period.Year, period.Month)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete period lock", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("period lock " + period.String())
	}
	return nil
}
