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

const tenantColumns = `tenant_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxTenantRepository struct {
	db DBTX
}

// newPgxTenantRepository creates a new repository for tenants and memberships.
func newPgxTenantRepository(db DBTX) *PgxTenantRepository {
	return &PgxTenantRepository{db: db}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

// SaveTenant inserts a new tenant.
func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	_, err := r.db.Exec(ctx,
		`INSERT INTO tenants (`+tenantColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.TenantID, m.Name, m.Description, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return writeError(err, "tenant "+tenant.TenantID)
	}
	return nil
}

// FindTenantByID retrieves a tenant by ID.
func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	rows, err := r.db.Query(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tenant", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Tenant])
	if err != nil {
		return nil, readError(err, "tenant "+tenantID)
	}
	tenant := mapping.ToDomainTenant(m)
	return &tenant, nil
}

// ListTenantsByUserID retrieves the tenants a user belongs to, by name.
func (r *PgxTenantRepository) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.tenant_id, t.name, t.description, t.is_active, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
		FROM tenants t
		JOIN tenant_members m ON m.tenant_id = t.tenant_id
		WHERE m.user_id = $1
		ORDER BY t.name`, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list tenants for user", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Tenant])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan tenants", err)
	}
	tenants := make([]domain.Tenant, len(ms))
	for i, m := range ms {
		tenants[i] = mapping.ToDomainTenant(m)
	}
	return tenants, nil
}

// SaveMember adds a member or changes their role.
func (r *PgxTenantRepository) SaveMember(ctx context.Context, member domain.TenantMember) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tenant_members (tenant_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tenant_id, user_id) DO UPDATE SET role = EXCLUDED.role`,
		member.TenantID, member.UserID, string(member.Role), member.JoinedAt)
	if err != nil {
		return writeError(err, "membership of "+member.UserID)
	}
	return nil
}

// FindMember retrieves a user's membership in a tenant.
func (r *PgxTenantRepository) FindMember(ctx context.Context, tenantID, userID string) (*domain.TenantMember, error) {
	rows, err := r.db.Query(ctx,
		`SELECT tenant_id, user_id, role, joined_at FROM tenant_members WHERE tenant_id = $1 AND user_id = $2`,
		tenantID, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query membership", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.TenantMember])
	if err != nil {
		return nil, readError(err, "membership of "+userID+" in "+tenantID)
	}
	member := mapping.ToDomainTenantMember(m)
	return &member, nil
}

// ListMembers retrieves all members of a tenant ordered by user ID.
func (r *PgxTenantRepository) ListMembers(ctx context.Context, tenantID string) ([]domain.TenantMember, error) {
	rows, err := r.db.Query(ctx,
		`SELECT tenant_id, user_id, role, joined_at FROM tenant_members WHERE tenant_id = $1 ORDER BY user_id`,
		tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list members", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TenantMember])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan members", err)
	}
	members := make([]domain.TenantMember, len(ms))
	for i, m := range ms {
		members[i] = mapping.ToDomainTenantMember(m)
	}
	return members, nil
}
