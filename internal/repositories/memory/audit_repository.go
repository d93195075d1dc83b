package memory

import (
	"context"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger/internal/utils/pagination"
)

type auditRepo struct{ access }

var _ portsrepo.AuditRepositoryFacade = (*auditRepo)(nil)

func (r *auditRepo) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	return r.write(func(st *state) error {
		st.audit = append(st.audit, entry)
		return nil
	})
}

func (r *auditRepo) ListAuditLogs(ctx context.Context, tenantID string, filter domain.AuditFilter) ([]domain.AuditLog, *string, error) {
	var cursorSet bool
	var cursorAt domain.AuditLog
	if filter.NextToken != nil && *filter.NextToken != "" {
		at, id, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("%v", err)
		}
		cursorSet, cursorAt = true, domain.AuditLog{AuditID: id, CreatedAt: at}
	}

	limit := pagination.Limit(filter.Limit)
	var out []domain.AuditLog
	var next *string
	err := r.read(func(st *state) error {
		// appended in time order; walk newest first
		for i := len(st.audit) - 1; i >= 0; i-- {
			e := st.audit[i]
			switch {
			case e.TenantID != tenantID:
				continue
			case filter.Action != "" && e.Action != filter.Action:
				continue
			case filter.EntityType != "" && e.EntityType != filter.EntityType:
				continue
			case filter.EntityID != "" && e.EntityID != filter.EntityID:
				continue
			case cursorSet && !pagination.After(e.CreatedAt, e.AuditID, cursorAt.CreatedAt, cursorAt.AuditID):
				continue
			}
			if len(out) == limit {
				last := out[len(out)-1]
				token := pagination.EncodeToken(last.CreatedAt, last.AuditID)
				next = &token
				return nil
			}
			out = append(out, e)
		}
		return nil
	})
	return out, next, err
}
