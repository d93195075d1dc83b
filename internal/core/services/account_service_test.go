package services_test

import (
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

func (s *LedgerSuite) TestSeedDefaultChart_Idempotent() {
	accounts, err := s.svc.Account.ListAccounts(s.ctx, s.auditor, domain.AccountFilter{})
	s.Require().NoError(err)
	s.Len(accounts, len(domain.DefaultChart()), "tenant creation seeds the chart")

	created, err := s.svc.Account.SeedDefaultChart(s.ctx, s.admin)
	s.Require().NoError(err)
	s.Zero(created)

	again, err := s.svc.Account.ListAccounts(s.ctx, s.auditor, domain.AccountFilter{})
	s.Require().NoError(err)
	s.Len(again, len(accounts))

	_, err = s.svc.Account.SeedDefaultChart(s.ctx, s.treasurer)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *LedgerSuite) TestCreateAccount() {
	parent := "1010"
	acc, err := s.svc.Account.CreateAccount(s.ctx, s.admin, dto.CreateAccountRequest{
		Code:        "1011",
		Name:        "Bank Account - Building Fund",
		AccountType: domain.Asset,
		FundType:    domain.FundGeneral,
		ParentCode:  &parent,
	})
	s.Require().NoError(err)
	s.Require().NotNil(acc.ParentAccountID)

	resolved, err := s.svc.Account.ResolveAccount(s.ctx, s.auditor, "1011")
	s.Require().NoError(err)
	s.Equal(acc.AccountID, resolved.AccountID)

	_, err = s.svc.Account.CreateAccount(s.ctx, s.admin, dto.CreateAccountRequest{
		Code: "1011", Name: "Dup", AccountType: domain.Asset, FundType: domain.FundGeneral,
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	missing := "9999"
	_, err = s.svc.Account.CreateAccount(s.ctx, s.admin, dto.CreateAccountRequest{
		Code: "1012", Name: "Orphan", AccountType: domain.Asset, FundType: domain.FundGeneral, ParentCode: &missing,
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Account.CreateAccount(s.ctx, s.admin, dto.CreateAccountRequest{
		Code: "1013", Name: "Bad type", AccountType: "CASH", FundType: domain.FundGeneral,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerSuite) TestResolveAccount_TenantIsolation() {
	other, err := s.svc.Tenant.CreateTenant(s.ctx, "admin-2", dto.CreateTenantRequest{Name: "Other Masjid"})
	s.Require().NoError(err)
	otherAdmin := domain.Actor{UserID: "admin-2", Role: domain.RoleAdmin, TenantID: other.TenantID}

	s.setAutoVerify(true)
	s.expense(s.accountant, "2024-12-15", "utilities", domain.FundGeneral, "cash", "10")

	balance, err := s.svc.Account.GetBalance(s.ctx, otherAdmin, "5030", nil, nil)
	s.Require().NoError(err)
	s.True(balance.IsZero(), "postings never leak across tenants")

	_, err = s.svc.Account.ResolveAccount(s.ctx, s.auditor, "7777")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerSuite) TestGetBalance_DateRange() {
	s.setAutoVerify(true)
	s.income(s.accountant, "2024-12-01", "donation", "", "cash", "100")
	s.income(s.accountant, "2024-12-10", "donation", "", "cash", "50")

	from := time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)
	b, err := s.svc.Account.GetBalance(s.ctx, s.auditor, "4040", &from, &to)
	s.Require().NoError(err)
	s.True(b.Equal(decimal.NewFromInt(50)), "to bound is inclusive")

	_, err = s.svc.Account.GetBalance(s.ctx, s.auditor, "4040", &to, &from)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerSuite) TestGetBalance_BoundsWithTimeOfDay() {
	s.setAutoVerify(true)
	s.income(s.accountant, "2024-12-10", "donation", "", "cash", "50")

	from := time.Date(2024, 12, 10, 9, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 10, 18, 0, 0, 0, time.UTC)
	b, err := s.svc.Account.GetBalance(s.ctx, s.auditor, "4040", &from, &to)
	s.Require().NoError(err)
	s.True(b.Equal(decimal.NewFromInt(50)), "bounds cover the whole day, got %s", b)

	ledger, err := s.svc.Account.AccountLedger(s.ctx, s.auditor, "4040", &from, &to)
	s.Require().NoError(err)
	s.Require().Len(ledger.Lines, 1)
	s.True(ledger.OpeningBalance.IsZero())
	s.True(ledger.ClosingBalance.Equal(decimal.NewFromInt(50)))

	// same calendar day in both bounds is never an inverted range
	later := time.Date(2024, 12, 10, 8, 0, 0, 0, time.UTC)
	_, err = s.svc.Account.GetBalance(s.ctx, s.auditor, "4040", &from, &later)
	s.NoError(err)
}

func (s *LedgerSuite) TestAccountLedger_RunningBalance() {
	s.setAutoVerify(true)
	s.income(s.accountant, "2024-12-01", "donation", "", "cash", "100")
	s.expense(s.accountant, "2024-12-05", "supplies", domain.FundGeneral, "cash", "30")
	s.income(s.accountant, "2024-12-08", "rental", "", "cash", "20")

	from := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)
	ledger, err := s.svc.Account.AccountLedger(s.ctx, s.auditor, "1000", &from, nil)
	s.Require().NoError(err)

	s.True(ledger.OpeningBalance.Equal(decimal.NewFromInt(100)))
	s.Require().Len(ledger.Lines, 2)
	s.True(ledger.Lines[0].RunningBalance.Equal(decimal.NewFromInt(70)))
	s.True(ledger.Lines[1].RunningBalance.Equal(decimal.NewFromInt(90)))
	s.True(ledger.ClosingBalance.Equal(decimal.NewFromInt(90)))
	s.Equal("TXN-RCP202412150002", ledger.Lines[1].ReferenceNumber)
}
