package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type postingEngine struct {
	BaseService
	rules domain.PostingRules
}

// NewPostingEngine creates the engine that turns documents into balanced
// two-line transactions using rules.
func NewPostingEngine(rules domain.PostingRules, opts ...Option) portssvc.PostingEngine {
	return &postingEngine{BaseService: newBaseService(opts), rules: rules}
}

var _ portssvc.PostingEngine = (*postingEngine)(nil)

func (e *postingEngine) Rules() domain.PostingRules {
	return e.rules
}

func (e *postingEngine) ResolveAccounts(kind domain.DocumentKind, category string, fund domain.FundType, paymentMode string) (domain.AccountPair, error) {
	pair, err := e.rules.Resolve(kind, category, fund, paymentMode)
	if err != nil {
		return domain.AccountPair{}, fmt.Errorf("%w: %v", apperrors.ErrAccountMappingMissing, err)
	}
	return pair, nil
}

func (e *postingEngine) account(ctx context.Context, repos portsrepo.RepositoryProvider, tenantID, code string) (*domain.Account, error) {
	account, err := repos.AccountRepo.FindAccountByCode(ctx, tenantID, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s is not in the chart", apperrors.ErrAccountMappingMissing, code)
		}
		return nil, err
	}
	return account, nil
}

func (e *postingEngine) Post(ctx context.Context, repos portsrepo.RepositoryProvider, req portssvc.PostingRequest) (*domain.Transaction, error) {
	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, apperrors.NewValidationError("posting amount must be positive, got %s", req.Amount)
	}
	if !accounting.IsMoney(req.Amount) {
		return nil, apperrors.NewValidationError("posting amount %s has more than two decimal places", req.Amount)
	}
	if req.DebitCode == req.CreditCode {
		return nil, fmt.Errorf("%w: debit and credit both map to account %s", apperrors.ErrIntegrity, req.DebitCode)
	}

	debit, err := e.account(ctx, repos, req.TenantID, req.DebitCode)
	if err != nil {
		e.LogError(ctx, err, "Cannot resolve debit account", slog.String("code", req.DebitCode), slog.String("reference", req.ReferenceNumber))
		return nil, err
	}
	credit, err := e.account(ctx, repos, req.TenantID, req.CreditCode)
	if err != nil {
		e.LogError(ctx, err, "Cannot resolve credit account", slog.String("code", req.CreditCode), slog.String("reference", req.ReferenceNumber))
		return nil, err
	}

	now := e.Now()
	date := truncateDay(req.Date)
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		TenantID:        req.TenantID,
		ReferenceNumber: domain.TransactionReference(req.ReferenceNumber),
		TransactionType: req.TransactionType,
		Date:            date,
		Description:     req.Description,
		FundType:        req.FundType,
		TotalAmount:     req.Amount,
		ReversalOfID:    req.ReversalOfID,
		CreatedBy:       req.ActorID,
		CreatedAt:       now,
	}
	txn.Entries = []domain.JournalEntry{
		{
			EntryID:       uuid.NewString(),
			TransactionID: txn.TransactionID,
			AccountID:     debit.AccountID,
			DebitAmount:   req.Amount,
			CreditAmount:  decimal.Zero,
			Date:          date,
			Description:   req.Memo,
			CreatedAt:     now,
		},
		{
			EntryID:       uuid.NewString(),
			TransactionID: txn.TransactionID,
			AccountID:     credit.AccountID,
			DebitAmount:   decimal.Zero,
			CreditAmount:  req.Amount,
			Date:          date,
			Description:   req.Memo,
			CreatedAt:     now,
		},
	}
	if !txn.IsBalanced() {
		d, c := txn.Totals()
		return nil, fmt.Errorf("%w: transaction %s debits %s credits %s", apperrors.ErrIntegrity, txn.ReferenceNumber, d, c)
	}

	if err := repos.LedgerRepo.SaveTransaction(ctx, txn); err != nil {
		e.LogError(ctx, err, "Failed to save transaction", slog.String("reference", txn.ReferenceNumber))
		return nil, err
	}
	e.LogDebug(ctx, "Transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("reference", txn.ReferenceNumber),
		slog.String("debit", debit.Code),
		slog.String("credit", credit.Code),
		slog.String("amount", req.Amount.StringFixed(2)))
	return &txn, nil
}
