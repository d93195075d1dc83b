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

type PgxSettingsRepository struct {
	db DBTX
}

func newPgxSettingsRepository(db DBTX) *PgxSettingsRepository {
	return &PgxSettingsRepository{db: db}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) FindSettings(ctx context.Context, tenantID string) (*domain.Settings, error) {
	rows, err := r.db.Query(ctx, `
		SELECT tenant_id, organization_name, auto_verify, updated_by, updated_at
		FROM settings WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query settings", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Settings])
	if err != nil {
		return nil, readError(err, "settings for tenant "+tenantID)
	}
	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

// SaveSettings upserts the tenant's row.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO settings (tenant_id, organization_name, auto_verify, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (tenant_id) DO UPDATE SET
			organization_name = EXCLUDED.organization_name,
			auto_verify = EXCLUDED.auto_verify,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at`,
		settings.TenantID, settings.OrganizationName, settings.AutoVerify, settings.UpdatedBy, settings.UpdatedAt)
	if err != nil {
		return writeError(err, "settings")
	}
	return nil
}
