package services

import (
	"fmt"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
)

// Scope maps an actor onto the tenant partition every query is filtered by.
type Scope struct {
	Mode            domain.TenancyMode
	DefaultTenantID string
}

// Resolve returns the partition key for a claimed tenant.
func (s Scope) Resolve(tenantID string) string {
	if s.Mode == domain.TenancySingle {
		if s.DefaultTenantID == "" {
			return domain.DefaultTenantID
		}
		return s.DefaultTenantID
	}
	return tenantID
}

// TenantFor returns the actor's partition key. Multi-tenant mode requires one.
func (s Scope) TenantFor(actor domain.Actor) (string, error) {
	tenantID := s.Resolve(actor.TenantID)
	if tenantID == "" {
		return "", fmt.Errorf("%w: no tenant in scope", apperrors.ErrForbidden)
	}
	return tenantID, nil
}
