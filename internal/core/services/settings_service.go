package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/dto"
)

type settingsService struct {
	BaseService
	store             portsrepo.Store
	audit             portssvc.AuditRecorder
	defaultAutoVerify bool
}

// NewSettingsService creates the per-tenant settings service. defaultAutoVerify
// applies to tenants that never stored settings.
func NewSettingsService(store portsrepo.Store, audit portssvc.AuditRecorder, defaultAutoVerify bool, opts ...Option) portssvc.SettingsSvcFacade {
	return &settingsService{
		BaseService:       newBaseService(opts),
		store:             store,
		audit:             audit,
		defaultAutoVerify: defaultAutoVerify,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) load(ctx context.Context, repos portsrepo.RepositoryProvider, tenantID string) (domain.Settings, error) {
	stored, err := repos.SettingsRepo.FindSettings(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultSettings(tenantID, s.defaultAutoVerify), nil
		}
		return domain.Settings{}, err
	}
	return *stored, nil
}

func (s *settingsService) Settings(ctx context.Context, tenantID string) (domain.Settings, error) {
	tenantID = s.scope.Resolve(tenantID)
	settings, err := s.load(ctx, s.store.Repositories(), tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings", slog.String("tenant_id", tenantID))
		return domain.Settings{}, err
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, actor domain.Actor, req dto.UpdateSettingsRequest) (domain.Settings, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapManageSettings)
	if err != nil {
		return domain.Settings{}, err
	}
	if err := validateStruct(req); err != nil {
		return domain.Settings{}, err
	}

	var updated domain.Settings
	err = s.store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		current, err := s.load(ctx, repos, tenantID)
		if err != nil {
			return err
		}
		updated = current
		if req.OrganizationName != nil {
			updated.OrganizationName = strings.TrimSpace(*req.OrganizationName)
		}
		if req.AutoVerify != nil {
			updated.AutoVerify = *req.AutoVerify
		}
		updated.Source = domain.SettingsStored
		updated.UpdatedBy = actor.UserID
		updated.UpdatedAt = s.Now()

		if err := repos.SettingsRepo.SaveSettings(ctx, updated); err != nil {
			return err
		}
		return s.audit.Record(ctx, repos, actor, portssvc.AuditEvent{
			Action:     domain.AuditUpdate,
			EntityType: domain.EntitySettings,
			EntityID:   tenantID,
			Old:        current,
			New:        updated,
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update settings", slog.String("tenant_id", tenantID))
		return domain.Settings{}, err
	}
	s.LogInfo(ctx, "Settings updated", slog.String("tenant_id", tenantID), slog.Bool("auto_verify", updated.AutoVerify))
	return updated, nil
}
