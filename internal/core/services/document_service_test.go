package services_test

import (
	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/SscSPs/fund_ledger/internal/platform/config"
	"github.com/SscSPs/fund_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
)

func (s *LedgerSuite) TestCreateExpense_AutoVerifiedUtilitiesCash() {
	s.setAutoVerify(true)

	doc := s.expense(s.accountant, "2024-12-15", "utilities", domain.FundGeneral, "cash", "500")

	s.Equal("EXP202412150001", doc.Number)
	s.Equal(domain.VerificationVerified, doc.VerificationStatus)
	s.Equal(domain.ApprovalApproved, doc.ApprovalStatus)
	s.Equal("Auto-verified on creation", doc.VerificationRemarks)
	s.Equal("Auto-approved on creation", doc.ApprovalRemarks)

	txn := s.transaction(doc)
	s.Equal("TXN-EXP202412150001", txn.ReferenceNumber)
	s.Equal(domain.TxnExpense, txn.TransactionType)
	s.Equal("Expense: Electric Co - Utilities", txn.Description)
	s.True(txn.IsBalanced())
	s.Require().Len(txn.Entries, 2)
	for _, e := range txn.Entries {
		s.Equal("Voucher: EXP202412150001", e.Description)
		if e.IsDebit() {
			s.Equal("5030", s.accountCode(e.AccountID))
		} else {
			s.Equal("1000", s.accountCode(e.AccountID))
		}
		s.True(e.Amount().Equal(decimal.NewFromInt(500)))
	}

	s.True(s.balance("5030").Equal(decimal.NewFromInt(500)))
	s.True(s.balance("1000").Equal(decimal.NewFromInt(-500)))
	s.assertLedgerBalanced()
}

func (s *LedgerSuite) TestCreateIncome_CategoryPinsFund() {
	s.setAutoVerify(true)

	doc := s.income(s.accountant, "2024-12-15", "zakat", domain.FundGeneral, "bank", "1200.50")

	s.Equal("RCP202412150001", doc.Number)
	s.Equal(domain.FundZakat, doc.FundType)
	txn := s.transaction(doc)
	s.Equal(domain.FundZakat, txn.FundType)
	s.Equal("Income: Br. Yusuf - Zakat", txn.Description)

	s.True(s.balance("1020").Equal(decimal.RequireFromString("1200.50")), "zakat bank account")
	s.True(s.balance("4000").Equal(decimal.RequireFromString("1200.50")), "zakat income")
}

func (s *LedgerSuite) TestDocumentNumbers_ResetDaily() {
	first := s.expense(s.accountant, "2024-12-15", "utilities", domain.FundGeneral, "cash", "10")
	second := s.expense(s.accountant, "2024-12-10", "utilities", domain.FundGeneral, "cash", "10")
	receipt := s.income(s.accountant, "2024-12-15", "donation", "", "cash", "10")
	s.Equal("EXP202412150001", first.Number)
	s.Equal("EXP202412150002", second.Number, "numbers follow the creation day, not the document date")
	s.Equal("RCP202412150001", receipt.Number)

	s.clock.now = s.clock.now.AddDate(0, 0, 1)
	next := s.expense(s.accountant, "2024-12-16", "utilities", domain.FundGeneral, "cash", "10")
	s.Equal("EXP202412160001", next.Number)
}

func (s *LedgerSuite) TestCreate_Validation() {
	cases := map[string]dto.CreateExpenseRequest{
		"zero amount":      {Date: "2024-12-15", Category: "utilities", FundType: "general", Payee: "X", PaymentMode: "cash", Amount: decimal.Zero},
		"three decimals":   {Date: "2024-12-15", Category: "utilities", FundType: "general", Payee: "X", PaymentMode: "cash", Amount: decimal.RequireFromString("1.005")},
		"bad date":         {Date: "15/12/2024", Category: "utilities", FundType: "general", Payee: "X", PaymentMode: "cash", Amount: decimal.NewFromInt(1)},
		"unknown category": {Date: "2024-12-15", Category: "yachts", FundType: "general", Payee: "X", PaymentMode: "cash", Amount: decimal.NewFromInt(1)},
		"unknown fund":     {Date: "2024-12-15", Category: "utilities", FundType: "waqf", Payee: "X", PaymentMode: "cash", Amount: decimal.NewFromInt(1)},
		"unknown mode":     {Date: "2024-12-15", Category: "utilities", FundType: "general", Payee: "X", PaymentMode: "barter", Amount: decimal.NewFromInt(1)},
		"missing payee":    {Date: "2024-12-15", Category: "utilities", FundType: "general", PaymentMode: "cash", Amount: decimal.NewFromInt(1)},
	}
	for name, req := range cases {
		_, err := s.svc.Document.CreateExpense(s.ctx, s.accountant, req)
		s.ErrorIs(err, apperrors.ErrValidation, name)
	}

	_, err := s.svc.Document.CreateIncome(s.ctx, s.accountant, dto.CreateIncomeRequest{
		Date: "2024-12-15", Time: "25:99", Category: "donation", Payer: "X", PaymentMode: "cash", Amount: decimal.NewFromInt(1),
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	docs, _, err := s.svc.Document.ListDocuments(s.ctx, s.auditor, domain.DocumentFilter{})
	s.Require().NoError(err)
	s.Empty(docs)
}

func (s *LedgerSuite) TestCreate_AuditorCannotCreate() {
	_, err := s.svc.Document.CreateIncome(s.ctx, s.auditor, dto.CreateIncomeRequest{
		Date: "2024-12-15", Category: "donation", Payer: "X", PaymentMode: "cash", Amount: decimal.NewFromInt(1),
	})
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *LedgerSuite) TestExpenseWorkflow() {
	doc := s.expense(s.accountant, "2024-12-15", "maintenance", domain.FundGeneral, "bank", "250")
	s.Equal(domain.VerificationPending, doc.VerificationStatus)
	s.Equal(domain.ApprovalPending, doc.ApprovalStatus)
	s.Nil(doc.TransactionID)

	_, err := s.svc.Document.Verify(s.ctx, s.accountant, domain.KindExpense, doc.DocumentID, "looks fine")
	s.ErrorIs(err, apperrors.ErrSelfAction)

	_, err = s.svc.Document.Verify(s.ctx, s.accountant2, domain.KindExpense, doc.DocumentID, "  ")
	s.ErrorIs(err, apperrors.ErrValidation)

	verified, err := s.svc.Document.Verify(s.ctx, s.accountant2, domain.KindExpense, doc.DocumentID, "receipt attached")
	s.Require().NoError(err)
	s.Equal(domain.VerificationVerified, verified.VerificationStatus)
	s.Nil(verified.TransactionID, "expense posts on approval")

	_, err = s.svc.Document.Approve(s.ctx, s.accountant2, domain.KindExpense, doc.DocumentID, "ok")
	s.ErrorIs(err, apperrors.ErrForbidden)

	approved, err := s.svc.Document.Approve(s.ctx, s.treasurer, domain.KindExpense, doc.DocumentID, "approved")
	s.Require().NoError(err)
	s.Equal(domain.ApprovalApproved, approved.ApprovalStatus)
	s.Require().NotNil(approved.ApprovedBy)
	s.Equal("treasurer-1", *approved.ApprovedBy)
	s.Equal("approved", approved.ApprovalRemarks)

	txn := s.transaction(approved)
	s.Equal("TXN-"+doc.Number, txn.ReferenceNumber)
	s.True(s.balance("5040").Equal(decimal.NewFromInt(250)))
	s.True(s.balance("1010").Equal(decimal.NewFromInt(-250)))

	_, err = s.svc.Document.Verify(s.ctx, s.treasurer, domain.KindExpense, doc.DocumentID, "again")
	s.ErrorIs(err, apperrors.ErrAlreadyProcessed)
	_, err = s.svc.Document.Reject(s.ctx, s.treasurer, domain.KindExpense, doc.DocumentID, "too late")
	s.ErrorIs(err, apperrors.ErrAlreadyProcessed)
}

func (s *LedgerSuite) TestIncomeWorkflow_PostsOnVerify() {
	doc := s.income(s.accountant, "2024-12-15", "sadaqah", "", "cash", "75")
	s.Nil(doc.TransactionID)

	_, err := s.svc.Document.Approve(s.ctx, s.treasurer, domain.KindIncome, doc.DocumentID, "approve")
	s.ErrorIs(err, apperrors.ErrAlreadyProcessed, "income has no approval stage")

	verified, err := s.svc.Document.Verify(s.ctx, s.accountant2, domain.KindIncome, doc.DocumentID, "counted")
	s.Require().NoError(err)
	s.NotNil(verified.TransactionID)
	s.True(s.balance("4010").Equal(decimal.NewFromInt(75)))
}

func (s *LedgerSuite) TestAdminOverridesSelfAction() {
	doc := s.income(s.admin, "2024-12-15", "donation", "", "cash", "40")

	verified, err := s.svc.Document.Verify(s.ctx, s.admin, domain.KindIncome, doc.DocumentID, "own entry")
	s.Require().NoError(err)
	s.Equal(domain.VerificationVerified, verified.VerificationStatus)
}

func (s *LedgerSuite) TestRejectPendingExpense() {
	doc := s.expense(s.accountant, "2024-12-15", "supplies", domain.FundGeneral, "cash", "30")

	rejected, err := s.svc.Document.Reject(s.ctx, s.accountant2, domain.KindExpense, doc.DocumentID, "duplicate bill")
	s.Require().NoError(err)
	s.Equal(domain.VerificationRejected, rejected.VerificationStatus)
	s.Equal(domain.ApprovalRejected, rejected.ApprovalStatus)
	s.Nil(rejected.TransactionID)

	_, err = s.svc.Document.Verify(s.ctx, s.accountant2, domain.KindExpense, doc.DocumentID, "changed my mind")
	s.ErrorIs(err, apperrors.ErrAlreadyProcessed)
}

func (s *LedgerSuite) TestRejectVerifiedExpenseNeedsApprover() {
	doc := s.expense(s.accountant, "2024-12-15", "supplies", domain.FundGeneral, "cash", "30")
	_, err := s.svc.Document.Verify(s.ctx, s.accountant2, domain.KindExpense, doc.DocumentID, "ok")
	s.Require().NoError(err)

	_, err = s.svc.Document.Reject(s.ctx, s.accountant2, domain.KindExpense, doc.DocumentID, "no")
	s.ErrorIs(err, apperrors.ErrForbidden)

	rejected, err := s.svc.Document.Reject(s.ctx, s.treasurer, domain.KindExpense, doc.DocumentID, "over budget")
	s.Require().NoError(err)
	s.Equal(domain.VerificationVerified, rejected.VerificationStatus)
	s.Equal(domain.ApprovalRejected, rejected.ApprovalStatus)
}

func (s *LedgerSuite) TestPostingFailureRollsBackDocument() {
	s.rules.Expense.Categories["utilities"] = domain.CategoryRule{Name: "Utilities", Account: "5999"}
	s.store = memory.NewStore()
	s.build(&config.Config{TenancyMode: domain.TenancyMulti, AutoVerify: true})

	_, err := s.svc.Document.CreateExpense(s.ctx, s.accountant, dto.CreateExpenseRequest{
		Date: "2024-12-15", Category: "utilities", FundType: "general", Payee: "X", PaymentMode: "cash", Amount: decimal.NewFromInt(5),
	})
	s.ErrorIs(err, apperrors.ErrAccountMappingMissing)
	s.ErrorIs(err, apperrors.ErrIntegrity)

	docs, _, err := s.svc.Document.ListDocuments(s.ctx, s.auditor, domain.DocumentFilter{Kind: domain.KindExpense})
	s.Require().NoError(err)
	s.Empty(docs)

	ok := s.expense(s.accountant, "2024-12-15", "supplies", domain.FundGeneral, "cash", "5")
	s.Equal("EXP202412150001", ok.Number, "failed attempt must not consume a number")
}

func (s *LedgerSuite) TestListDocumentsFilters() {
	s.expense(s.accountant, "2024-12-15", "supplies", domain.FundGeneral, "cash", "1")
	s.expense(s.accountant, "2024-12-15", "food", domain.FundGeneral, "cash", "2")
	s.income(s.accountant, "2024-12-15", "donation", "", "cash", "3")

	docs, _, err := s.svc.Document.ListDocuments(s.ctx, s.auditor, domain.DocumentFilter{Kind: domain.KindExpense, Category: "food"})
	s.Require().NoError(err)
	s.Require().Len(docs, 1)
	s.Equal("food", docs[0].Category)

	page, next, err := s.svc.Document.ListDocuments(s.ctx, s.auditor, domain.DocumentFilter{Limit: 2})
	s.Require().NoError(err)
	s.Len(page, 2)
	s.Require().NotNil(next)
	rest, _, err := s.svc.Document.ListDocuments(s.ctx, s.auditor, domain.DocumentFilter{Limit: 2, NextToken: next})
	s.Require().NoError(err)
	s.Len(rest, 1)
}
