package repositories

import (
	"context"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
)

// AuditRepositoryFacade is the append-only audit sink.
type AuditRepositoryFacade interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error

	// ListAuditLogs returns entries newest first using token-based pagination.
	ListAuditLogs(ctx context.Context, tenantID string, filter domain.AuditFilter) ([]domain.AuditLog, *string, error)
}
