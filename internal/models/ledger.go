package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Its entries live in
// journal_entries and are loaded separately.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	TenantID        string          `db:"tenant_id"`
	ReferenceNumber string          `db:"reference_number"`
	TransactionType string          `db:"transaction_type"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	FundType        string          `db:"fund_type"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	IsReversed      bool            `db:"is_reversed"`
	ReversalOfID    *string         `db:"reversal_of_id"` // Nullable
	CreatedBy       string          `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
}

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID       string          `db:"entry_id"`
	TransactionID string          `db:"transaction_id"`
	TenantID      string          `db:"tenant_id"`
	AccountID     string          `db:"account_id"`
	DebitAmount   decimal.Decimal `db:"debit_amount"`
	CreditAmount  decimal.Decimal `db:"credit_amount"`
	EntryDate     time.Time       `db:"entry_date"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
}
