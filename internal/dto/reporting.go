package dto

import "github.com/SscSPs/fund_ledger/internal/core/domain"

// AsOfParams selects a point-in-time report. Empty means today.
type AsOfParams struct {
	AsOf string `form:"asOf" validate:"omitempty,datetime=2006-01-02"`
}

// IncomeExpenditureParams selects the period and optional fund of an income statement.
type IncomeExpenditureParams struct {
	From string `form:"from" validate:"required,datetime=2006-01-02"`
	To   string `form:"to" validate:"required,datetime=2006-01-02"`
	Fund string `form:"fund"`
}

// DailyReportParams selects the day of a daily report. Empty means today.
type DailyReportParams struct {
	Date string `form:"date" validate:"omitempty,datetime=2006-01-02"`
}

// MonthParams selects a calendar month. Zero values mean the current month.
type MonthParams struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

// ListAuditLogsParams defines query parameters for the audit trail.
type ListAuditLogsParams struct {
	Action     string  `form:"action"`
	EntityType string  `form:"entityType"`
	EntityID   string  `form:"entityID"`
	Limit      int     `form:"limit,default=50"`
	NextToken  *string `form:"nextToken"`
}

// ListAuditLogsResponse is one page of the audit trail.
type ListAuditLogsResponse struct {
	Logs      []domain.AuditLog `json:"logs"`
	NextToken *string           `json:"nextToken,omitempty"`
}
