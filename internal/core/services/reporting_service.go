package services

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	store portsrepo.Store
	rules domain.PostingRules
	funds []domain.FundType
}

// NewReportingService creates the report builder. rules.Funds fixes the row
// order of the fund summary and rules names the categories.
func NewReportingService(store portsrepo.Store, rules domain.PostingRules, opts ...Option) portssvc.ReportingSvc {
	return &reportingService{BaseService: newBaseService(opts), store: store, rules: rules, funds: rules.Funds}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// balances pairs every account of the tenant with its signed balance from totals.
func balances(accounts []domain.Account, totals map[string]domain.EntryTotals) []domain.AccountBalance {
	out := make([]domain.AccountBalance, 0, len(accounts))
	for _, acc := range accounts {
		t, ok := totals[acc.AccountID]
		if !ok {
			continue
		}
		out = append(out, domain.AccountBalance{Account: acc, Balance: accounting.SignedBalance(acc.AccountType, t)})
	}
	return out
}

func (s *reportingService) load(ctx context.Context, actor domain.Actor, from, to *time.Time) (string, []domain.Account, map[string]domain.EntryTotals, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return "", nil, nil, err
	}
	repos := s.store.Repositories()
	accounts, err := repos.AccountRepo.ListAccounts(ctx, tenantID, domain.AccountFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for report", slog.String("tenant_id", tenantID))
		return "", nil, nil, err
	}
	totals, err := repos.LedgerRepo.SumEntriesByAccount(ctx, tenantID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum entries for report", slog.String("tenant_id", tenantID))
		return "", nil, nil, err
	}
	return tenantID, accounts, totals, nil
}

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, actor domain.Actor, asOf time.Time) (*domain.TrialBalanceReport, error) {
	asOf = truncateDay(asOf)
	_, accounts, totals, err := s.load(ctx, actor, nil, &asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.TrialBalanceReport{AsOf: asOf, Rows: []domain.TrialBalanceRow{}, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, b := range balances(accounts, totals) {
		if b.Balance.IsZero() {
			continue
		}
		debit, credit := accounting.TrialBalanceSides(b.Account.AccountType, b.Balance)
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID:   b.Account.AccountID,
			Code:        b.Account.Code,
			AccountName: b.Account.Name,
			AccountType: b.Account.AccountType,
			FundType:    b.Account.FundType,
			Debit:       debit,
			Credit:      credit,
		})
		report.TotalDebit = report.TotalDebit.Add(debit)
		report.TotalCredit = report.TotalCredit.Add(credit)
	}
	report.IsBalanced = accounting.WithinTolerance(report.TotalDebit, report.TotalCredit)
	if !report.IsBalanced {
		s.LogError(ctx, apperrors.ErrIntegrity, "Trial balance does not balance",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}
	return report, nil
}

func toAmount(b domain.AccountBalance) domain.AccountAmount {
	return domain.AccountAmount{
		AccountID: b.Account.AccountID,
		Code:      b.Account.Code,
		Name:      b.Account.Name,
		FundType:  b.Account.FundType,
		NetAmount: b.Balance,
	}
}

// IncomeExpenditure generates the income statement for [from, to], optionally
// restricted to the transactions of one fund.
func (s *reportingService) IncomeExpenditure(ctx context.Context, actor domain.Actor, from, to time.Time, fund domain.FundType) (*domain.IncomeExpenditureReport, error) {
	start, end, err := dayRange(&from, &to)
	if err != nil {
		return nil, err
	}
	from, to = *start, *end
	if fund != "" && !slices.Contains(s.funds, fund) {
		return nil, apperrors.NewValidationError("unknown fund %q", fund)
	}
	tenantID, accounts, totals, err := s.load(ctx, actor, &from, &to)
	if err != nil {
		return nil, err
	}
	if fund != "" {
		byFund, err := s.store.Repositories().LedgerRepo.SumEntriesByFund(ctx, tenantID, &from, &to)
		if err != nil {
			s.LogError(ctx, err, "Failed to sum entries by fund", slog.String("tenant_id", tenantID))
			return nil, err
		}
		totals = byFund[fund]
	}

	report := &domain.IncomeExpenditureReport{
		From:         from,
		To:           to,
		FundType:     fund,
		Income:       []domain.AccountAmount{},
		Expenses:     []domain.AccountAmount{},
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, b := range balances(accounts, totals) {
		if b.Balance.IsZero() {
			continue
		}
		switch b.Account.AccountType {
		case domain.Income:
			report.Income = append(report.Income, toAmount(b))
			report.TotalIncome = report.TotalIncome.Add(b.Balance)
		case domain.Expense:
			report.Expenses = append(report.Expenses, toAmount(b))
			report.TotalExpense = report.TotalExpense.Add(b.Balance)
		}
	}
	report.Surplus = report.TotalIncome.Sub(report.TotalExpense)
	return report, nil
}

// BalanceSheet generates a balance sheet as of a specific date. Income less
// expense to date is carried as the current surplus.
func (s *reportingService) BalanceSheet(ctx context.Context, actor domain.Actor, asOf time.Time) (*domain.BalanceSheetReport, error) {
	asOf = truncateDay(asOf)
	_, accounts, totals, err := s.load(ctx, actor, nil, &asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:             asOf,
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
		CurrentSurplus:   decimal.Zero,
	}
	for _, b := range balances(accounts, totals) {
		switch b.Account.AccountType {
		case domain.Income:
			report.CurrentSurplus = report.CurrentSurplus.Add(b.Balance)
			continue
		case domain.Expense:
			report.CurrentSurplus = report.CurrentSurplus.Sub(b.Balance)
			continue
		}
		if b.Balance.IsZero() {
			continue
		}
		switch b.Account.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, toAmount(b))
			report.TotalAssets = report.TotalAssets.Add(b.Balance)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, toAmount(b))
			report.TotalLiabilities = report.TotalLiabilities.Add(b.Balance)
		case domain.Equity:
			report.Equity = append(report.Equity, toAmount(b))
			report.TotalEquity = report.TotalEquity.Add(b.Balance)
		}
	}
	rhs := report.TotalLiabilities.Add(report.TotalEquity).Add(report.CurrentSurplus)
	report.IsBalanced = accounting.WithinTolerance(report.TotalAssets, rhs)
	return report, nil
}

// FundSummary aggregates income, expense and asset movements per fund.
func (s *reportingService) FundSummary(ctx context.Context, actor domain.Actor) (*domain.FundSummaryReport, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return nil, err
	}
	repos := s.store.Repositories()
	accounts, err := repos.AccountRepo.ListAccounts(ctx, tenantID, domain.AccountFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for fund summary", slog.String("tenant_id", tenantID))
		return nil, err
	}
	byFund, err := repos.LedgerRepo.SumEntriesByFund(ctx, tenantID, nil, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum entries by fund", slog.String("tenant_id", tenantID))
		return nil, err
	}

	funds := slices.Clone(s.funds)
	var extra []domain.FundType
	for fund := range byFund {
		if !slices.Contains(funds, fund) {
			extra = append(extra, fund)
		}
	}
	slices.Sort(extra)
	funds = append(funds, extra...)

	report := &domain.FundSummaryReport{Funds: make([]domain.FundSummaryRow, 0, len(funds))}
	for _, fund := range funds {
		row := domain.FundSummaryRow{FundType: fund, Income: decimal.Zero, Expense: decimal.Zero, Assets: decimal.Zero}
		for _, b := range balances(accounts, byFund[fund]) {
			switch b.Account.AccountType {
			case domain.Income:
				row.Income = row.Income.Add(b.Balance)
			case domain.Expense:
				row.Expense = row.Expense.Add(b.Balance)
			case domain.Asset:
				row.Assets = row.Assets.Add(b.Balance)
			}
		}
		row.Surplus = row.Income.Sub(row.Expense)
		report.Funds = append(report.Funds, row)
	}
	return report, nil
}

// DailyReport lists the day's receipts and vouchers.
func (s *reportingService) DailyReport(ctx context.Context, actor domain.Actor, date time.Time) (*domain.DailyReport, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return nil, err
	}
	date = truncateDay(date)
	docs, err := s.store.Repositories().DocumentRepo.ListDocumentsOnDate(ctx, tenantID, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents for daily report",
			slog.String("tenant_id", tenantID), slog.String("date", date.Format(time.DateOnly)))
		return nil, err
	}

	report := &domain.DailyReport{
		Date:         date,
		Income:       []domain.Document{},
		Expenses:     []domain.Document{},
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, doc := range docs {
		if doc.Kind == domain.KindExpense {
			report.Expenses = append(report.Expenses, doc)
			if doc.Counts() {
				report.TotalExpense = report.TotalExpense.Add(doc.Amount)
			}
			continue
		}
		report.Income = append(report.Income, doc)
		if doc.Counts() {
			report.TotalIncome = report.TotalIncome.Add(doc.Amount)
		}
	}
	return report, nil
}

// MonthlyCategorySummary totals one month's counted documents per category.
func (s *reportingService) MonthlyCategorySummary(ctx context.Context, actor domain.Actor, period domain.Period) (*domain.MonthlyCategorySummary, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, apperrors.NewValidationError("%v", err)
	}
	from := time.Date(period.Year, time.Month(period.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	report := &domain.MonthlyCategorySummary{Year: period.Year, Month: period.Month}
	repo := s.store.Repositories().DocumentRepo
	for _, kind := range []domain.DocumentKind{domain.KindIncome, domain.KindExpense} {
		totals, err := repo.SumDocumentsByCategory(ctx, tenantID, kind, from, to)
		if err != nil {
			s.LogError(ctx, err, "Failed to sum documents by category",
				slog.String("tenant_id", tenantID), slog.String("kind", string(kind)))
			return nil, err
		}
		sum := decimal.Zero
		for i := range totals {
			totals[i].Name = s.rules.CategoryName(kind, totals[i].Category)
			sum = sum.Add(totals[i].Total)
		}
		if totals == nil {
			totals = []domain.CategoryTotal{}
		}
		if kind == domain.KindIncome {
			report.Income, report.TotalIncome = totals, sum
		} else {
			report.Expenses, report.TotalExpense = totals, sum
		}
	}
	report.Surplus = report.TotalIncome.Sub(report.TotalExpense)
	return report, nil
}

// PayerSummary ranks payers of counted receipts within optional bounds.
func (s *reportingService) PayerSummary(ctx context.Context, actor domain.Actor, from, to *time.Time) (*domain.PayerSummary, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return nil, err
	}
	from, to, err = dayRange(from, to)
	if err != nil {
		return nil, err
	}
	payers, err := s.store.Repositories().DocumentRepo.SumIncomeByPayer(ctx, tenantID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum income by payer", slog.String("tenant_id", tenantID))
		return nil, err
	}
	report := &domain.PayerSummary{From: from, To: to, Payers: []domain.PayerTotal{}, Total: decimal.Zero}
	for _, p := range payers {
		report.Payers = append(report.Payers, p)
		report.Total = report.Total.Add(p.Total)
	}
	return report, nil
}
