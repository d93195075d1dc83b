package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/google/uuid"
)

type tenantService struct {
	BaseService
	store portsrepo.Store
	audit portssvc.AuditRecorder
	chart []domain.ChartAccount
}

// NewTenantService creates the tenant and membership service. New tenants
// are seeded with chart.
func NewTenantService(store portsrepo.Store, audit portssvc.AuditRecorder, chart []domain.ChartAccount, opts ...Option) portssvc.TenantSvcFacade {
	return &tenantService{BaseService: newBaseService(opts), store: store, audit: audit, chart: chart}
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

func (s *tenantService) ResolveActor(ctx context.Context, userID, tenantID string) (domain.Actor, error) {
	if userID == "" {
		return domain.Actor{}, fmt.Errorf("%w: no authenticated user", apperrors.ErrForbidden)
	}
	tenantID = s.scope.Resolve(tenantID)
	if tenantID == "" {
		return domain.Actor{}, fmt.Errorf("%w: no tenant selected", apperrors.ErrForbidden)
	}
	member, err := s.store.Repositories().TenantRepo.FindMember(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("User is not a member of tenant",
				slog.String("user_id", userID),
				slog.String("tenant_id", tenantID))
			return domain.Actor{}, fmt.Errorf("%w: user is not a member of this tenant", apperrors.ErrForbidden)
		}
		s.LogError(ctx, err, "Failed to load membership", slog.String("user_id", userID), slog.String("tenant_id", tenantID))
		return domain.Actor{}, err
	}
	return domain.Actor{UserID: userID, Role: member.Role, TenantID: tenantID}, nil
}

func (s *tenantService) CreateTenant(ctx context.Context, userID string, req dto.CreateTenantRequest) (*domain.Tenant, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: no authenticated user", apperrors.ErrForbidden)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	tenantID := s.scope.Resolve(uuid.NewString())
	now := s.Now()
	tenant := domain.Tenant{
		TenantID:    tenantID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	creator := domain.Actor{UserID: userID, Role: domain.RoleAdmin, TenantID: tenantID}

	var seeded int
	err := s.store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		if err := repos.TenantRepo.SaveTenant(ctx, tenant); err != nil {
			return err
		}
		if err := repos.TenantRepo.SaveMember(ctx, domain.TenantMember{
			UserID:   userID,
			TenantID: tenantID,
			Role:     domain.RoleAdmin,
			JoinedAt: now,
		}); err != nil {
			return err
		}
		n, err := seedChart(ctx, repos, tenantID, userID, s.chart, now)
		if err != nil {
			return err
		}
		seeded = n
		return s.audit.Record(ctx, repos, creator, portssvc.AuditEvent{
			Action:     domain.AuditCreate,
			EntityType: domain.EntityTenant,
			EntityID:   tenantID,
			New:        map[string]any{"name": tenant.Name, "seeded_accounts": n},
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create tenant", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Tenant created",
		slog.String("tenant_id", tenantID),
		slog.String("user_id", userID),
		slog.Int("seeded_accounts", seeded))
	return &tenant, nil
}

func (s *tenantService) AddMember(ctx context.Context, actor domain.Actor, req dto.AddMemberRequest) (*domain.TenantMember, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapManageMembers)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	member := domain.TenantMember{
		UserID:   strings.TrimSpace(req.UserID),
		TenantID: tenantID,
		Role:     req.Role,
		JoinedAt: s.Now(),
	}
	err = s.store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		var old any
		if existing, err := repos.TenantRepo.FindMember(ctx, tenantID, member.UserID); err == nil {
			member.JoinedAt = existing.JoinedAt
			old = map[string]any{"role": existing.Role}
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if err := repos.TenantRepo.SaveMember(ctx, member); err != nil {
			return err
		}
		return s.audit.Record(ctx, repos, actor, portssvc.AuditEvent{
			Action:     domain.AuditUpdate,
			EntityType: domain.EntityMember,
			EntityID:   member.UserID,
			Old:        old,
			New:        map[string]any{"role": member.Role},
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to add member", slog.String("member_id", member.UserID), slog.String("tenant_id", tenantID))
		return nil, err
	}
	s.LogInfo(ctx, "Member saved", slog.String("member_id", member.UserID), slog.String("role", string(member.Role)))
	return &member, nil
}

func (s *tenantService) ListMembers(ctx context.Context, actor domain.Actor) ([]domain.TenantMember, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return nil, err
	}
	members, err := s.store.Repositories().TenantRepo.ListMembers(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return members, nil
}

func (s *tenantService) ListTenantsForUser(ctx context.Context, userID string) ([]domain.Tenant, error) {
	tenants, err := s.store.Repositories().TenantRepo.ListTenantsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenants", slog.String("user_id", userID))
		return nil, err
	}
	return tenants, nil
}
