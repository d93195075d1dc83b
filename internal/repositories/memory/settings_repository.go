package memory

import (
	"context"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
)

type settingsRepo struct{ access }

var _ portsrepo.SettingsRepositoryFacade = (*settingsRepo)(nil)

func (r *settingsRepo) FindSettings(ctx context.Context, tenantID string) (*domain.Settings, error) {
	var out *domain.Settings
	err := r.read(func(st *state) error {
		s, ok := st.settings[tenantID]
		if !ok {
			return apperrors.NewNotFoundError("settings for tenant " + tenantID)
		}
		out = &s
		return nil
	})
	return out, err
}

func (r *settingsRepo) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return r.write(func(st *state) error {
		settings.Source = domain.SettingsStored
		st.settings[settings.TenantID] = settings
		return nil
	})
}
