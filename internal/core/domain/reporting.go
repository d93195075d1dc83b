package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is an account with its signed balance under the natural
// sign convention for its type.
type AccountBalance struct {
	Account Account         `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

// TrialBalanceRow represents a single row in a trial balance report.
// Only one of Debit and Credit is non-zero.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	FundType    FundType        `json:"fundType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account with a non-zero balance as of a date.
type TrialBalanceReport struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	IsBalanced  bool              `json:"isBalanced"`
}

// AccountAmount represents an account with its net amount for financial reports.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	FundType  FundType        `json:"fundType"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// IncomeExpenditureReport is the nonprofit income statement for a date range.
type IncomeExpenditureReport struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	FundType     FundType        `json:"fundType,omitempty"`
	Income       []AccountAmount `json:"income"`
	Expenses     []AccountAmount `json:"expenses"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Surplus      decimal.Decimal `json:"surplus"` // negative means deficit
}

// BalanceSheetReport represents a balance sheet report.
type BalanceSheetReport struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	CurrentSurplus   decimal.Decimal `json:"currentSurplus"`
	IsBalanced       bool            `json:"isBalanced"`
}

// FundSummaryRow aggregates one fund.
type FundSummaryRow struct {
	FundType FundType        `json:"fundType"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Surplus  decimal.Decimal `json:"surplus"`
	Assets   decimal.Decimal `json:"assets"`
}

// FundSummaryReport aggregates all funds.
type FundSummaryReport struct {
	Funds []FundSummaryRow `json:"funds"`
}

// DailyReport lists the receipts and vouchers dated on one day. Pending
// documents are listed but only counted documents enter the totals.
type DailyReport struct {
	Date         time.Time       `json:"date"`
	Income       []Document      `json:"income"`
	Expenses     []Document      `json:"expenses"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
}

// CategoryTotal is the count and sum of counted documents in one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyCategorySummary groups one calendar month's activity by category.
type MonthlyCategorySummary struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Income       []CategoryTotal `json:"income"`
	Expenses     []CategoryTotal `json:"expenses"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Surplus      decimal.Decimal `json:"surplus"`
}

// PayerTotal is the count and sum of counted receipts from one payer.
type PayerTotal struct {
	Payer string          `json:"payer"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// PayerSummary ranks payers by total received, largest first.
type PayerSummary struct {
	From   *time.Time      `json:"from,omitempty"`
	To     *time.Time      `json:"to,omitempty"`
	Payers []PayerTotal     `json:"payers"`
	Total  decimal.Decimal `json:"total"`
}
