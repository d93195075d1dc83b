package services_test

import (
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

func (s *LedgerSuite) seedActivity() {
	s.setAutoVerify(true)
	s.income(s.accountant, "2024-12-01", "donation", "", "cash", "1000")
	s.income(s.accountant, "2024-12-02", "zakat", "", "bank", "800")
	s.expense(s.accountant, "2024-12-03", "utilities", domain.FundGeneral, "cash", "150.25")
	s.expense(s.accountant, "2024-12-04", "poor_needy", domain.FundZakat, "bank", "300")
	rev := s.expense(s.accountant, "2024-12-05", "food", domain.FundGeneral, "cash", "90")
	_, err := s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindExpense, rev.DocumentID, "cancelled event")
	s.Require().NoError(err)
}

func (s *LedgerSuite) TestTrialBalance() {
	s.seedActivity()

	tb, err := s.svc.Reporting.TrialBalance(s.ctx, s.auditor, s.clock.now)
	s.Require().NoError(err)
	s.True(tb.IsBalanced)
	s.True(tb.TotalDebit.Equal(tb.TotalCredit))

	rows := map[string]domain.TrialBalanceRow{}
	for _, r := range tb.Rows {
		rows[r.Code] = r
		s.False(r.Debit.IsZero() && r.Credit.IsZero(), "zero rows are omitted")
	}
	s.True(rows["1000"].Debit.Equal(decimal.RequireFromString("849.75")))
	s.True(rows["1020"].Debit.Equal(decimal.NewFromInt(500)))
	s.True(rows["4040"].Credit.Equal(decimal.NewFromInt(1000)))
	s.True(rows["5000"].Debit.Equal(decimal.NewFromInt(300)), "poor_needy from zakat posts to zakat disbursement")
	s.NotContains(rows, "5080", "reversed food expense nets to zero")

	early, err := s.svc.Reporting.TrialBalance(s.ctx, s.auditor, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Len(early.Rows, 2)
}

func (s *LedgerSuite) TestIncomeExpenditure() {
	s.seedActivity()
	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	all, err := s.svc.Reporting.IncomeExpenditure(s.ctx, s.auditor, from, s.clock.now, "")
	s.Require().NoError(err)
	s.True(all.TotalIncome.Equal(decimal.NewFromInt(1800)))
	s.True(all.TotalExpense.Equal(decimal.RequireFromString("450.25")))
	s.True(all.Surplus.Equal(decimal.RequireFromString("1349.75")))

	zakat, err := s.svc.Reporting.IncomeExpenditure(s.ctx, s.auditor, from, s.clock.now, domain.FundZakat)
	s.Require().NoError(err)
	s.True(zakat.TotalIncome.Equal(decimal.NewFromInt(800)))
	s.True(zakat.TotalExpense.Equal(decimal.NewFromInt(300)))

	_, err = s.svc.Reporting.IncomeExpenditure(s.ctx, s.auditor, s.clock.now, from, "")
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.svc.Reporting.IncomeExpenditure(s.ctx, s.auditor, from, s.clock.now, "waqf")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerSuite) TestBalanceSheet() {
	s.seedActivity()

	bs, err := s.svc.Reporting.BalanceSheet(s.ctx, s.auditor, s.clock.now)
	s.Require().NoError(err)
	s.True(bs.IsBalanced)
	s.True(bs.TotalAssets.Equal(decimal.RequireFromString("1349.75")))
	s.True(bs.CurrentSurplus.Equal(decimal.RequireFromString("1349.75")))
}

func (s *LedgerSuite) TestFundSummary() {
	s.seedActivity()

	summary, err := s.svc.Reporting.FundSummary(s.ctx, s.auditor)
	s.Require().NoError(err)
	s.Require().Len(summary.Funds, len(s.rules.Funds))

	byFund := map[domain.FundType]domain.FundSummaryRow{}
	for _, row := range summary.Funds {
		byFund[row.FundType] = row
	}
	s.True(byFund[domain.FundZakat].Surplus.Equal(decimal.NewFromInt(500)))
	s.True(byFund[domain.FundZakat].Assets.Equal(decimal.NewFromInt(500)))
	s.True(byFund[domain.FundGeneral].Surplus.Equal(decimal.RequireFromString("849.75")))
	s.True(byFund[domain.FundAmanah].Income.IsZero())
}

func (s *LedgerSuite) TestReports_RequireMembership() {
	stranger := domain.Actor{UserID: "x", Role: "", TenantID: s.admin.TenantID}
	_, err := s.svc.Reporting.TrialBalance(s.ctx, stranger, s.clock.now)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *LedgerSuite) TestTrialBalance_AsOfReadInOwnZone() {
	s.setAutoVerify(true)
	s.income(s.accountant, "2024-12-15", "donation", "", "cash", "10")

	ist := time.FixedZone("IST", 5*3600+1800)
	tb, err := s.svc.Reporting.TrialBalance(s.ctx, s.auditor, time.Date(2024, 12, 15, 1, 0, 0, 0, ist))
	s.Require().NoError(err)
	s.Equal(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), tb.AsOf)
	s.True(tb.TotalCredit.Equal(decimal.NewFromInt(10)), "entry dated the same local day is included")
}

// seedDocuments leaves one pending receipt, one reversed receipt and its
// mirror alongside counted documents in December 2024.
func (s *LedgerSuite) seedDocuments() {
	s.income(s.accountant, "2024-12-10", "donation", "", "cash", "999")
	s.setAutoVerify(true)
	s.income(s.accountant, "2024-12-10", "donation", "", "cash", "100")
	s.income(s.accountant, "2024-12-10", "zakat", "", "bank", "60")
	s.expense(s.accountant, "2024-12-10", "utilities", domain.FundGeneral, "cash", "40")
	reversed := s.income(s.accountant, "2024-12-10", "donation", "", "cash", "500")
	_, err := s.svc.Reversal.Reverse(s.ctx, s.treasurer, domain.KindIncome, reversed.DocumentID, "entered twice")
	s.Require().NoError(err)

	_, err = s.svc.Document.CreateIncome(s.ctx, s.accountant, dto.CreateIncomeRequest{
		Date:        "2024-12-12",
		Category:    "sadaqah",
		Payer:       "Sr. Aisha",
		PaymentMode: "cash",
		Amount:      decimal.NewFromInt(300),
	})
	s.Require().NoError(err)
}

func (s *LedgerSuite) TestDailyReport() {
	s.seedDocuments()

	day, err := s.svc.Reporting.DailyReport(s.ctx, s.auditor, time.Date(2024, 12, 10, 17, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Equal(time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), day.Date)
	s.Len(day.Income, 3, "pending receipt is listed, reversed receipt is not")
	s.Len(day.Expenses, 1)
	s.True(day.TotalIncome.Equal(decimal.NewFromInt(160)), "got %s", day.TotalIncome)
	s.True(day.TotalExpense.Equal(decimal.NewFromInt(40)))
	for _, doc := range day.Income {
		s.False(doc.IsReversed)
	}

	today, err := s.svc.Reporting.DailyReport(s.ctx, s.auditor, s.clock.now)
	s.Require().NoError(err)
	s.Empty(today.Income, "reversal mirrors are not listed")
	s.True(today.TotalIncome.IsZero())
}

func (s *LedgerSuite) TestMonthlyCategorySummary() {
	s.seedDocuments()

	month, err := s.svc.Reporting.MonthlyCategorySummary(s.ctx, s.auditor, domain.Period{Year: 2024, Month: 12})
	s.Require().NoError(err)
	s.Require().Len(month.Income, 3)
	s.Equal(domain.CategoryTotal{Category: "donation", Name: "General Donation", Count: 1, Total: month.Income[0].Total}, month.Income[0])
	s.True(month.Income[0].Total.Equal(decimal.NewFromInt(100)))
	s.Equal("sadaqah", month.Income[1].Category)
	s.Equal("zakat", month.Income[2].Category)
	s.Require().Len(month.Expenses, 1)
	s.Equal("Utilities", month.Expenses[0].Name)
	s.True(month.TotalIncome.Equal(decimal.NewFromInt(460)))
	s.True(month.TotalExpense.Equal(decimal.NewFromInt(40)))
	s.True(month.Surplus.Equal(decimal.NewFromInt(420)))

	empty, err := s.svc.Reporting.MonthlyCategorySummary(s.ctx, s.auditor, domain.Period{Year: 2024, Month: 11})
	s.Require().NoError(err)
	s.Empty(empty.Income)
	s.True(empty.Surplus.IsZero())

	_, err = s.svc.Reporting.MonthlyCategorySummary(s.ctx, s.auditor, domain.Period{Year: 2024, Month: 13})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerSuite) TestPayerSummary() {
	s.seedDocuments()

	all, err := s.svc.Reporting.PayerSummary(s.ctx, s.auditor, nil, nil)
	s.Require().NoError(err)
	s.Require().Len(all.Payers, 2)
	s.Equal("Sr. Aisha", all.Payers[0].Payer)
	s.True(all.Payers[0].Total.Equal(decimal.NewFromInt(300)))
	s.Equal("Br. Yusuf", all.Payers[1].Payer)
	s.Equal(2, all.Payers[1].Count, "pending and reversed receipts are not counted")
	s.True(all.Payers[1].Total.Equal(decimal.NewFromInt(160)))
	s.True(all.Total.Equal(decimal.NewFromInt(460)))

	from := time.Date(2024, 12, 11, 20, 0, 0, 0, time.UTC)
	later, err := s.svc.Reporting.PayerSummary(s.ctx, s.auditor, &from, nil)
	s.Require().NoError(err)
	s.Require().Len(later.Payers, 1)
	s.Equal("Sr. Aisha", later.Payers[0].Payer)

	to := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	_, err = s.svc.Reporting.PayerSummary(s.ctx, s.auditor, &from, &to)
	s.ErrorIs(err, apperrors.ErrValidation)
}
