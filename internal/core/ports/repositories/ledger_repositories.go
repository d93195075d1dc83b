package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
)

// TransactionReader defines read operations for posted transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction together with its entries.
	FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for posted transactions.
type TransactionWriter interface {
	// SaveTransaction persists a transaction and all of its entries.
	// A reference number already used in the tenant yields apperrors.ErrDuplicate.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// MarkTransactionReversed flags a transaction as reversed.
	MarkTransactionReversed(ctx context.Context, tenantID, transactionID string) error
}

// EntryReader defines the aggregate and range queries over journal entries.
// Nil bounds are open-ended; bounds are inclusive calendar dates.
type EntryReader interface {
	// SumEntries returns the debit and credit totals of one account.
	SumEntries(ctx context.Context, tenantID, accountID string, from, to *time.Time) (domain.EntryTotals, error)

	// SumEntriesByAccount returns totals keyed by account ID for every account with entries.
	SumEntriesByAccount(ctx context.Context, tenantID string, from, to *time.Time) (map[string]domain.EntryTotals, error)

	// SumEntriesByFund returns totals keyed by the owning transaction's fund, then account ID.
	SumEntriesByFund(ctx context.Context, tenantID string, from, to *time.Time) (map[domain.FundType]map[string]domain.EntryTotals, error)

	// ListEntriesByAccount returns an account's entries in date order.
	ListEntriesByAccount(ctx context.Context, tenantID, accountID string, from, to *time.Time) ([]domain.LedgerLine, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	EntryReader
}
