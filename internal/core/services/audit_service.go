package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/google/uuid"
)

type auditService struct {
	BaseService
	store portsrepo.Store
}

// NewAuditService creates the audit recorder and reader.
func NewAuditService(store portsrepo.Store, opts ...Option) portssvc.AuditSvcFacade {
	return &auditService{BaseService: newBaseService(opts), store: store}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func snapshot(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding audit snapshot: %w", err)
	}
	return string(b), nil
}

func (s *auditService) Record(ctx context.Context, repos portsrepo.RepositoryProvider, actor domain.Actor, event portssvc.AuditEvent) error {
	if !actor.IsAuthenticated() {
		s.LogDebug(ctx, "Skipping audit record for anonymous actor",
			slog.String("action", string(event.Action)),
			slog.String("entity_type", event.EntityType),
			slog.String("entity_id", event.EntityID))
		return nil
	}
	tenantID, err := s.scope.TenantFor(actor)
	if err != nil {
		return err
	}
	oldValues, err := snapshot(event.Old)
	if err != nil {
		return err
	}
	newValues, err := snapshot(event.New)
	if err != nil {
		return err
	}

	entry := domain.AuditLog{
		AuditID:    uuid.NewString(),
		TenantID:   tenantID,
		ActorID:    actor.UserID,
		Action:     event.Action,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		OldValues:  oldValues,
		NewValues:  newValues,
		Remarks:    event.Remarks,
		CreatedAt:  s.Now(),
	}
	if err := repos.AuditRepo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save audit log", slog.String("entity_id", event.EntityID))
		return err
	}
	return nil
}

func (s *auditService) ListAuditLogs(ctx context.Context, actor domain.Actor, filter domain.AuditFilter) ([]domain.AuditLog, *string, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewAuditLog)
	if err != nil {
		return nil, nil, err
	}
	logs, next, err := s.store.Repositories().AuditRepo.ListAuditLogs(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit logs", slog.String("tenant_id", tenantID))
		return nil, nil, err
	}
	return logs, next, nil
}
