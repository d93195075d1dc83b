package services

import (
	"context"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/dto"
)

// SettingsReaderSvc returns typed settings, falling back to defaults.
type SettingsReaderSvc interface {
	Settings(ctx context.Context, tenantID string) (domain.Settings, error)
}

// SettingsSvcFacade combines settings reads and writes.
type SettingsSvcFacade interface {
	SettingsReaderSvc
	UpdateSettings(ctx context.Context, actor domain.Actor, req dto.UpdateSettingsRequest) (domain.Settings, error)
}
