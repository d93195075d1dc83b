package services

import (
	"context"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/dto"
)

// ActorResolver turns an authenticated identity into an Actor.
type ActorResolver interface {
	// ResolveActor maps the claimed tenant through the tenancy mode and loads
	// the user's role from their membership. No membership is apperrors.ErrForbidden.
	ResolveActor(ctx context.Context, userID, tenantID string) (domain.Actor, error)
}

// TenantSvcFacade manages tenants and their members.
type TenantSvcFacade interface {
	ActorResolver

	// CreateTenant opens new books, makes the creator ADMIN and seeds the default chart.
	CreateTenant(ctx context.Context, userID string, req dto.CreateTenantRequest) (*domain.Tenant, error)
	AddMember(ctx context.Context, actor domain.Actor, req dto.AddMemberRequest) (*domain.TenantMember, error)
	ListMembers(ctx context.Context, actor domain.Actor) ([]domain.TenantMember, error)
	ListTenantsForUser(ctx context.Context, userID string) ([]domain.Tenant, error)
}
