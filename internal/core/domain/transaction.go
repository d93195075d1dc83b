package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags what produced a ledger transaction.
type TransactionType string

const (
	TxnIncome          TransactionType = "income"
	TxnExpense         TransactionType = "expense"
	TxnIncomeReversal  TransactionType = "income_reversal"
	TxnExpenseReversal TransactionType = "expense_reversal"
)

// TransactionReferencePrefix prefixes every transaction reference number.
const TransactionReferencePrefix = "TXN-"

// Transaction is the atomic unit of posting. It owns its journal entries,
// which are created with it and never mutated afterwards.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	TenantID        string          `json:"tenantID"`
	ReferenceNumber string          `json:"referenceNumber"` // unique within tenant
	TransactionType TransactionType `json:"transactionType"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	FundType        FundType        `json:"fundType"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	IsReversed      bool            `json:"isReversed"`
	ReversalOfID    *string         `json:"reversalOfID,omitempty"`
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
	Entries         []JournalEntry  `json:"entries,omitempty"`
}

// Totals returns the debit and credit sums across the transaction's entries.
func (t Transaction) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range t.Entries {
		debit = debit.Add(e.DebitAmount)
		credit = credit.Add(e.CreditAmount)
	}
	return debit, credit
}

// IsBalanced reports whether debits equal credits exactly.
func (t Transaction) IsBalanced() bool {
	debit, credit := t.Totals()
	return debit.Equal(credit)
}
