package services_test

import (
	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/core/services"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/SscSPs/fund_ledger/internal/platform/config"
	"github.com/SscSPs/fund_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
)

func (s *LedgerSuite) TestResolveActor() {
	actor, err := s.svc.Tenant.ResolveActor(s.ctx, "treasurer-1", s.admin.TenantID)
	s.Require().NoError(err)
	s.Equal(domain.RoleTreasurer, actor.Role)

	_, err = s.svc.Tenant.ResolveActor(s.ctx, "stranger", s.admin.TenantID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.svc.Tenant.ResolveActor(s.ctx, "", s.admin.TenantID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *LedgerSuite) TestAddMember_ChangesRole() {
	_, err := s.svc.Tenant.AddMember(s.ctx, s.treasurer, dto.AddMemberRequest{UserID: "new", Role: domain.RoleAccountant})
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.svc.Tenant.AddMember(s.ctx, s.admin, dto.AddMemberRequest{UserID: "accountant-1", Role: domain.RoleTreasurer})
	s.Require().NoError(err)
	actor, err := s.svc.Tenant.ResolveActor(s.ctx, "accountant-1", s.admin.TenantID)
	s.Require().NoError(err)
	s.Equal(domain.RoleTreasurer, actor.Role)

	_, err = s.svc.Tenant.AddMember(s.ctx, s.admin, dto.AddMemberRequest{UserID: "x", Role: "OWNER"})
	s.ErrorIs(err, apperrors.ErrValidation)

	members, err := s.svc.Tenant.ListMembers(s.ctx, s.auditor)
	s.Require().NoError(err)
	s.Len(members, 5)

	tenants, err := s.svc.Tenant.ListTenantsForUser(s.ctx, "auditor-1")
	s.Require().NoError(err)
	s.Require().Len(tenants, 1)
	s.Equal("Masjid Al-Noor", tenants[0].Name)
}

func (s *LedgerSuite) TestSingleTenantMode() {
	s.store = memory.NewStore()
	s.svc = services.NewServiceContainer(
		&config.Config{TenancyMode: domain.TenancySingle, DefaultTenantID: "masjid"},
		s.store, s.rules, services.WithClock(s.clock.Now))

	tenant, err := s.svc.Tenant.CreateTenant(s.ctx, "admin-1", dto.CreateTenantRequest{Name: "Only"})
	s.Require().NoError(err)
	s.Equal("masjid", tenant.TenantID)

	actor, err := s.svc.Tenant.ResolveActor(s.ctx, "admin-1", "whatever-the-token-says")
	s.Require().NoError(err)
	s.Equal("masjid", actor.TenantID)

	_, err = s.svc.Tenant.CreateTenant(s.ctx, "admin-1", dto.CreateTenantRequest{Name: "Second"})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *LedgerSuite) TestSettings() {
	settings, err := s.svc.Settings.Settings(s.ctx, s.admin.TenantID)
	s.Require().NoError(err)
	s.Equal(domain.SettingsDefaults, settings.Source)
	s.False(settings.AutoVerify)

	name := "Masjid Al-Noor Trust"
	_, err = s.svc.Settings.UpdateSettings(s.ctx, s.treasurer, dto.UpdateSettingsRequest{OrganizationName: &name})
	s.ErrorIs(err, apperrors.ErrForbidden)

	updated, err := s.svc.Settings.UpdateSettings(s.ctx, s.admin, dto.UpdateSettingsRequest{OrganizationName: &name})
	s.Require().NoError(err)
	s.Equal(domain.SettingsStored, updated.Source)
	s.Equal(name, updated.OrganizationName)
	s.False(updated.AutoVerify, "unset fields are kept")
}

func (s *LedgerSuite) TestAuditTrail() {
	doc := s.expense(s.accountant, "2024-12-15", "supplies", domain.FundGeneral, "cash", "12")
	_, err := s.svc.Document.Verify(s.ctx, s.accountant2, domain.KindExpense, doc.DocumentID, "checked")
	s.Require().NoError(err)

	// rejected calls leave no trace
	_, err = s.svc.Document.CreateExpense(s.ctx, s.accountant, dto.CreateExpenseRequest{
		Date: "2024-12-15", Category: "supplies", FundType: "general", Payee: "X", PaymentMode: "cash", Amount: decimal.NewFromInt(-1),
	})
	s.Require().ErrorIs(err, apperrors.ErrValidation)

	logs, _, err := s.svc.Audit.ListAuditLogs(s.ctx, s.auditor, domain.AuditFilter{EntityID: doc.DocumentID})
	s.Require().NoError(err)
	s.Require().Len(logs, 2)
	actions := []domain.AuditAction{logs[0].Action, logs[1].Action}
	s.ElementsMatch([]domain.AuditAction{domain.AuditCreate, domain.AuditVerify}, actions)
	for _, l := range logs {
		s.Equal(domain.EntityExpense, l.EntityType)
		if l.Action == domain.AuditVerify {
			s.Equal("accountant-2", l.ActorID)
			s.Equal("checked", l.Remarks)
			s.Contains(l.OldValues, `"verification_status":"pending"`)
			s.Contains(l.NewValues, `"verification_status":"verified"`)
		}
	}

	all, _, err := s.svc.Audit.ListAuditLogs(s.ctx, s.auditor, domain.AuditFilter{EntityType: domain.EntityExpense})
	s.Require().NoError(err)
	s.Len(all, 2)

	_, _, err = s.svc.Audit.ListAuditLogs(s.ctx, s.accountant, domain.AuditFilter{})
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *LedgerSuite) TestAnonymousActorWritesNoAudit() {
	anon := domain.Actor{Role: domain.RoleAdmin, TenantID: s.admin.TenantID}
	created, err := s.svc.Account.CreateAccount(s.ctx, anon, dto.CreateAccountRequest{
		Code: "5110", Name: "Bank Charges", AccountType: domain.Expense, FundType: domain.FundGeneral,
	})
	s.Require().NoError(err)

	logs, _, err := s.svc.Audit.ListAuditLogs(s.ctx, s.auditor, domain.AuditFilter{EntityID: created.AccountID})
	s.Require().NoError(err)
	s.Empty(logs)
}
