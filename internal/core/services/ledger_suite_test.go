package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/core/services"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/SscSPs/fund_ledger/internal/platform/config"
	"github.com/SscSPs/fund_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

// LedgerSuite runs the services against a fresh in-memory store with one
// seeded tenant and a member for every role.
type LedgerSuite struct {
	suite.Suite
	ctx   context.Context
	clock *testClock
	store *memory.Store
	svc   *portssvc.ServiceContainer
	rules domain.PostingRules

	admin       domain.Actor
	treasurer   domain.Actor
	accountant  domain.Actor
	accountant2 domain.Actor
	auditor     domain.Actor
}

func (s *LedgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &testClock{now: time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC)}
	s.store = memory.NewStore()
	s.rules = domain.DefaultPostingRules()
	s.build(&config.Config{TenancyMode: domain.TenancyMulti, AutoVerify: false})
}

// build wires the services and opens a tenant with one member per role.
func (s *LedgerSuite) build(cfg *config.Config) {
	s.svc = services.NewServiceContainer(cfg, s.store, s.rules, services.WithClock(s.clock.Now))

	tenant, err := s.svc.Tenant.CreateTenant(s.ctx, "admin-1", dto.CreateTenantRequest{Name: "Masjid Al-Noor"})
	s.Require().NoError(err)
	s.admin = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin, TenantID: tenant.TenantID}

	add := func(userID string, role domain.Role) domain.Actor {
		_, err := s.svc.Tenant.AddMember(s.ctx, s.admin, dto.AddMemberRequest{UserID: userID, Role: role})
		s.Require().NoError(err)
		actor, err := s.svc.Tenant.ResolveActor(s.ctx, userID, tenant.TenantID)
		s.Require().NoError(err)
		return actor
	}
	s.treasurer = add("treasurer-1", domain.RoleTreasurer)
	s.accountant = add("accountant-1", domain.RoleAccountant)
	s.accountant2 = add("accountant-2", domain.RoleAccountant)
	s.auditor = add("auditor-1", domain.RoleAuditor)
}

func (s *LedgerSuite) setAutoVerify(on bool) {
	_, err := s.svc.Settings.UpdateSettings(s.ctx, s.admin, dto.UpdateSettingsRequest{AutoVerify: &on})
	s.Require().NoError(err)
}

func (s *LedgerSuite) expense(actor domain.Actor, date, category string, fund domain.FundType, mode, amount string) *domain.Document {
	doc, err := s.svc.Document.CreateExpense(s.ctx, actor, dto.CreateExpenseRequest{
		Date:        date,
		Category:    category,
		FundType:    fund,
		Payee:       "Electric Co",
		PaymentMode: mode,
		Amount:      decimal.RequireFromString(amount),
	})
	s.Require().NoError(err)
	return doc
}

func (s *LedgerSuite) income(actor domain.Actor, date, category string, fund domain.FundType, mode, amount string) *domain.Document {
	doc, err := s.svc.Document.CreateIncome(s.ctx, actor, dto.CreateIncomeRequest{
		Date:        date,
		Category:    category,
		FundType:    fund,
		Payer:       "Br. Yusuf",
		PaymentMode: mode,
		Amount:      decimal.RequireFromString(amount),
	})
	s.Require().NoError(err)
	return doc
}

func (s *LedgerSuite) balance(code string) decimal.Decimal {
	b, err := s.svc.Account.GetBalance(s.ctx, s.auditor, code, nil, nil)
	s.Require().NoError(err)
	return b
}

func (s *LedgerSuite) transaction(doc *domain.Document) *domain.Transaction {
	s.Require().NotNil(doc.TransactionID)
	txn, err := s.store.Repositories().LedgerRepo.FindTransactionByID(s.ctx, doc.TenantID, *doc.TransactionID)
	s.Require().NoError(err)
	return txn
}

func (s *LedgerSuite) accountCode(accountID string) string {
	acc, err := s.store.Repositories().AccountRepo.FindAccountByID(s.ctx, s.admin.TenantID, accountID)
	s.Require().NoError(err)
	return acc.Code
}

// assertLedgerBalanced checks that debits equal credits across every entry.
func (s *LedgerSuite) assertLedgerBalanced() {
	totals, err := s.store.Repositories().LedgerRepo.SumEntriesByAccount(s.ctx, s.admin.TenantID, nil, nil)
	s.Require().NoError(err)
	debit, credit := decimal.Zero, decimal.Zero
	for _, t := range totals {
		debit = debit.Add(t.Debit)
		credit = credit.Add(t.Credit)
	}
	s.True(debit.Equal(credit), "ledger debits %s != credits %s", debit, credit)
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}
