package repositories

import (
	"context"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
)

// TenantReader defines read operations for tenant data
type TenantReader interface {
	// FindTenantByID retrieves a specific tenant by its ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenantsByUserID retrieves all tenants a user belongs to.
	ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data
type TenantWriter interface {
	// SaveTenant persists a new tenant.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error
}

// TenantMembershipManager defines operations for managing tenant memberships
type TenantMembershipManager interface {
	// SaveMember adds a user to a tenant or changes their role.
	SaveMember(ctx context.Context, member domain.TenantMember) error

	// FindMember retrieves a user's membership, or an apperrors.ErrNotFound error.
	FindMember(ctx context.Context, tenantID, userID string) (*domain.TenantMember, error)

	// ListMembers retrieves all members of a tenant.
	ListMembers(ctx context.Context, tenantID string) ([]domain.TenantMember, error)
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
	TenantMembershipManager
}
