package services

import (
	"context"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
)

// AuditEvent is what a service reports after a state change.
type AuditEvent struct {
	Action     domain.AuditAction
	EntityType string
	EntityID   string
	Old        any
	New        any
	Remarks    string
}

// AuditRecorder writes audit entries inside the caller's unit of work.
type AuditRecorder interface {
	// Record appends one entry. An unauthenticated actor records nothing.
	Record(ctx context.Context, repos portsrepo.RepositoryProvider, actor domain.Actor, event AuditEvent) error
}

// AuditSvcFacade combines recording and listing.
type AuditSvcFacade interface {
	AuditRecorder
	ListAuditLogs(ctx context.Context, actor domain.Actor, filter domain.AuditFilter) ([]domain.AuditLog, *string, error)
}
