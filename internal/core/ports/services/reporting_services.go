package services

import (
	"context"
	"time"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
)

// ReportingSvc builds the read-side aggregations over the ledger.
type ReportingSvc interface {
	TrialBalance(ctx context.Context, actor domain.Actor, asOf time.Time) (*domain.TrialBalanceReport, error)
	IncomeExpenditure(ctx context.Context, actor domain.Actor, from, to time.Time, fund domain.FundType) (*domain.IncomeExpenditureReport, error)
	BalanceSheet(ctx context.Context, actor domain.Actor, asOf time.Time) (*domain.BalanceSheetReport, error)
	FundSummary(ctx context.Context, actor domain.Actor) (*domain.FundSummaryReport, error)
	DailyReport(ctx context.Context, actor domain.Actor, date time.Time) (*domain.DailyReport, error)
	MonthlyCategorySummary(ctx context.Context, actor domain.Actor, period domain.Period) (*domain.MonthlyCategorySummary, error)
	PayerSummary(ctx context.Context, actor domain.Actor, from, to *time.Time) (*domain.PayerSummary, error)
}
