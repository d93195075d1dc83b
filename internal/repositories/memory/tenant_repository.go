package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
)

type tenantRepo struct{ access }

var _ portsrepo.TenantRepositoryFacade = (*tenantRepo)(nil)

func (r *tenantRepo) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	var out *domain.Tenant
	err := r.read(func(st *state) error {
		t, ok := st.tenants[tenantID]
		if !ok {
			return apperrors.NewNotFoundError("tenant " + tenantID)
		}
		out = &t
		return nil
	})
	return out, err
}

func (r *tenantRepo) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	var out []domain.Tenant
	err := r.read(func(st *state) error {
		for _, m := range st.members {
			if t, ok := st.tenants[m.TenantID]; ok && m.UserID == userID {
				out = append(out, t)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, err
}

func (r *tenantRepo) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	return r.write(func(st *state) error {
		if _, ok := st.tenants[tenant.TenantID]; ok {
			return fmt.Errorf("tenant %s: %w", tenant.TenantID, apperrors.ErrDuplicate)
		}
		st.tenants[tenant.TenantID] = tenant
		return nil
	})
}

func (r *tenantRepo) SaveMember(ctx context.Context, member domain.TenantMember) error {
	return r.write(func(st *state) error {
		st.members[key(member.TenantID, member.UserID)] = member
		return nil
	})
}

func (r *tenantRepo) FindMember(ctx context.Context, tenantID, userID string) (*domain.TenantMember, error) {
	var out *domain.TenantMember
	err := r.read(func(st *state) error {
		m, ok := st.members[key(tenantID, userID)]
		if !ok {
			return apperrors.NewNotFoundError(fmt.Sprintf("membership of %s in %s", userID, tenantID))
		}
		out = &m
		return nil
	})
	return out, err
}

func (r *tenantRepo) ListMembers(ctx context.Context, tenantID string) ([]domain.TenantMember, error) {
	var out []domain.TenantMember
	err := r.read(func(st *state) error {
		for _, m := range st.members {
			if m.TenantID == tenantID {
				out = append(out, m)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, err
}
