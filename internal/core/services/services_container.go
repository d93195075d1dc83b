package services

import (
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, store portsrepo.Store, rules domain.PostingRules, opts ...Option) *portssvc.ServiceContainer {
	opts = append([]Option{WithScope(Scope{Mode: cfg.TenancyMode, DefaultTenantID: cfg.DefaultTenantID})}, opts...)

	container := &portssvc.ServiceContainer{}

	// The audit recorder and the period guard are shared by every writer
	audit := NewAuditService(store, opts...)
	container.Audit = audit
	container.PeriodLock = NewPeriodLockService(store, audit, opts...)
	container.Settings = NewSettingsService(store, audit, cfg.AutoVerify, opts...)

	engine := NewPostingEngine(rules, opts...)
	container.Account = NewAccountService(store, audit, rules, opts...)
	container.Document = NewDocumentService(store, engine, container.PeriodLock, container.Settings, audit, opts...)
	container.Reversal = NewReversalService(store, engine, container.PeriodLock, audit, opts...)
	container.Reporting = NewReportingService(store, rules, opts...)
	container.Tenant = NewTenantService(store, audit, rules.Chart, opts...)

	return container
}
