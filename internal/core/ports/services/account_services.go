package services

import (
	"context"
	"time"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for the chart of accounts.
type AccountReaderSvc interface {
	// ResolveAccount looks an account up by code within the actor's tenant.
	ResolveAccount(ctx context.Context, actor domain.Actor, code string) (*domain.Account, error)

	// ListAccounts returns the tenant's chart ordered by code.
	ListAccounts(ctx context.Context, actor domain.Actor, filter domain.AccountFilter) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts.
type AccountWriterSvc interface {
	// CreateAccount adds a custom account.
	CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error)

	// SeedDefaultChart inserts the configured default accounts whose codes are
	// missing. It returns how many were created; a second call creates none.
	SeedDefaultChart(ctx context.Context, actor domain.Actor) (int, error)
}

// AccountCalculatorSvc defines balance queries. Nil bounds are open-ended.
type AccountCalculatorSvc interface {
	// GetBalance returns the signed balance of an account over [from, to].
	GetBalance(ctx context.Context, actor domain.Actor, code string, from, to *time.Time) (decimal.Decimal, error)

	// AccountLedger lists an account's entries over [from, to] with running balances.
	AccountLedger(ctx context.Context, actor domain.Actor, code string, from, to *time.Time) (*domain.AccountLedger, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
