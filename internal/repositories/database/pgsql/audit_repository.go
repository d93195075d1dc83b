package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger/internal/models"
	"github.com/SscSPs/fund_ledger/internal/utils/mapping"
	"github.com/SscSPs/fund_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const auditColumns = `audit_id, tenant_id, actor_id, action, entity_type, entity_id, old_values, new_values, remarks, created_at`

type PgxAuditRepository struct {
	db DBTX
}

func newPgxAuditRepository(db DBTX) *PgxAuditRepository {
	return &PgxAuditRepository{db: db}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// SaveAuditLog appends one entry. Snapshots are cast to JSONB.
func (r *PgxAuditRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	m := mapping.ToAuditLogModel(entry)
	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_logs (`+auditColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb, $9, $10)`,
		m.AuditID, m.TenantID, m.ActorID, m.Action, m.EntityType, m.EntityID,
		m.OldValues, m.NewValues, m.Remarks, m.CreatedAt)
	if err != nil {
		return writeError(err, "audit log")
	}
	return nil
}

// ListAuditLogs returns entries newest first.
func (r *PgxAuditRepository) ListAuditLogs(ctx context.Context, tenantID string, filter domain.AuditFilter) ([]domain.AuditLog, *string, error) {
	conds := []string{"tenant_id = $1"}
	args := []any{tenantID}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}
	if filter.Action != "" {
		add("action = ?", string(filter.Action))
	}
	if filter.EntityType != "" {
		add("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		add("entity_id = ?", filter.EntityID)
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		at, id, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("%v", err)
		}
		args = append(args, at, id)
		n := len(args)
		conds = append(conds, "(created_at, audit_id) < ($"+strconv.Itoa(n-1)+", $"+strconv.Itoa(n)+")")
	}

	limit := pagination.Limit(filter.Limit)
	args = append(args, limit+1)
	// JSONB comes back as text for the string snapshot fields
	query := `SELECT audit_id, tenant_id, actor_id, action, entity_type, entity_id,
			old_values::text AS old_values, new_values::text AS new_values, remarks, created_at
		FROM audit_logs WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY created_at DESC, audit_id DESC LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list audit logs", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AuditLog])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan audit logs", err)
	}

	var next *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.AuditID)
		next = &token
	}
	logs := make([]domain.AuditLog, len(ms))
	for i, m := range ms {
		logs[i] = mapping.ToDomainAuditLog(m)
	}
	return logs, next, nil
}
