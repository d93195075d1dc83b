package services

import (
	"context"
	"time"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// PostingRequest asks the engine to post a balanced two-line transaction.
type PostingRequest struct {
	TenantID        string
	ActorID         string
	ReferenceNumber string // source document number; the engine prefixes TXN-
	TransactionType domain.TransactionType
	DebitCode       string
	CreditCode      string
	Amount          decimal.Decimal
	Date            time.Time
	Description     string
	Memo            string // entry description
	FundType        domain.FundType
	ReversalOfID    *string
}

// PostingEngine writes balanced transactions. Post runs inside the caller's
// unit of work so a failure rolls back the source document too.
type PostingEngine interface {
	Post(ctx context.Context, repos portsrepo.RepositoryProvider, req PostingRequest) (*domain.Transaction, error)

	// ResolveAccounts maps a document onto the account codes it posts to.
	ResolveAccounts(kind domain.DocumentKind, category string, fund domain.FundType, paymentMode string) (domain.AccountPair, error)

	// Rules returns the posting table in force.
	Rules() domain.PostingRules
}
