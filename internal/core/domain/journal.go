package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one line of a balanced posting. Exactly one of
// DebitAmount and CreditAmount is non-zero.
type JournalEntry struct {
	EntryID       string          `json:"entryID"`
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	DebitAmount   decimal.Decimal `json:"debitAmount"`
	CreditAmount  decimal.Decimal `json:"creditAmount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// IsDebit reports whether the entry is a debit line.
func (e JournalEntry) IsDebit() bool {
	return e.DebitAmount.GreaterThan(decimal.Zero)
}

// Amount returns the non-zero side of the entry.
func (e JournalEntry) Amount() decimal.Decimal {
	if e.IsDebit() {
		return e.DebitAmount
	}
	return e.CreditAmount
}

// LedgerLine is a journal entry decorated for an account ledger listing.
type LedgerLine struct {
	JournalEntry
	ReferenceNumber string          `json:"referenceNumber"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
}

// AccountLedger is the entries of one account over a date range.
type AccountLedger struct {
	Account        Account         `json:"account"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Lines          []LedgerLine    `json:"lines"`
}

// EntryTotals is the raw debit and credit sum of an account's entries.
type EntryTotals struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}
