package repositories

import (
	"context"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
)

// SettingsRepositoryFacade stores per-tenant settings.
type SettingsRepositoryFacade interface {
	// FindSettings returns stored settings, or an apperrors.ErrNotFound error.
	FindSettings(ctx context.Context, tenantID string) (*domain.Settings, error)

	// SaveSettings inserts or replaces the tenant's settings.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
