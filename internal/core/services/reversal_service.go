package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/google/uuid"
)

type reversalService struct {
	BaseService
	store  portsrepo.Store
	engine portssvc.PostingEngine
	guard  portssvc.PeriodGuard
	audit  portssvc.AuditRecorder
}

// NewReversalService creates the service that corrects documents by mirroring them.
func NewReversalService(store portsrepo.Store, engine portssvc.PostingEngine, guard portssvc.PeriodGuard, audit portssvc.AuditRecorder, opts ...Option) portssvc.ReversalSvc {
	return &reversalService{
		BaseService: newBaseService(opts),
		store:       store,
		engine:      engine,
		guard:       guard,
		audit:       audit,
	}
}

var _ portssvc.ReversalSvc = (*reversalService)(nil)

// mirror builds the reversal document for original dated today.
func mirror(original domain.Document, actorID, remarks string, today, now time.Time) domain.Document {
	var by *string
	if actorID != "" {
		by = &actorID
	}
	originalID := original.DocumentID
	rev := domain.Document{
		DocumentID:          uuid.NewString(),
		TenantID:            original.TenantID,
		Kind:                original.Kind,
		Number:              domain.ReversalNumber(original.Number),
		Date:                today,
		Time:                original.Time,
		Category:            original.Category,
		FundType:            original.FundType,
		Counterparty:        original.Counterparty,
		CounterpartyContact: original.CounterpartyContact,
		PaymentMode:         original.PaymentMode,
		PaymentReference:    original.PaymentReference,
		Amount:              original.Amount.Neg(),
		Description:         fmt.Sprintf("Reversal of %s: %s", original.Number, remarks),
		VerificationStatus:  domain.VerificationVerified,
		VerifiedBy:          by,
		VerifiedAt:          &now,
		EnteredBy:           actorID,
		ReversalOfID:        &originalID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if original.Kind.RequiresApproval() {
		rev.VerificationRemarks = "Auto-verified reversal"
		rev.ApprovalStatus = domain.ApprovalApproved
		rev.ApprovedBy = by
		rev.ApprovedAt = &now
		rev.ApprovalRemarks = "Auto-approved reversal: " + remarks
	} else {
		rev.VerificationRemarks = "Auto-verified reversal: " + remarks
	}
	return rev
}

func (s *reversalService) Reverse(ctx context.Context, actor domain.Actor, kind domain.DocumentKind, documentID, remarks string) (*domain.Document, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapReverseEntry)
	if err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("unknown document kind %q", kind)
	}
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return nil, apperrors.NewValidationError("remarks are required to reverse an entry")
	}

	now := s.Now()
	today := truncateDay(now)
	var rev domain.Document
	err = s.store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		original, err := repos.DocumentRepo.FindDocumentByID(ctx, tenantID, kind, documentID)
		if err != nil {
			return err
		}
		if original.IsReversal() {
			return apperrors.ErrReversalOfReversal
		}
		if original.IsReversed {
			return apperrors.ErrAlreadyReversed
		}
		if err := s.guard.EnsureOpen(ctx, repos, tenantID, original.Date); err != nil {
			return err
		}
		if err := s.guard.EnsureOpen(ctx, repos, tenantID, today); err != nil {
			return err
		}

		before := original.Snapshot()
		rev = mirror(*original, actor.UserID, remarks, today, now)
		if original.IsPosted() {
			txn, err := s.counterPost(ctx, repos, *original, rev, actor.UserID, remarks)
			if err != nil {
				return err
			}
			rev.TransactionID = &txn.TransactionID
		}

		if err := repos.DocumentRepo.SaveDocument(ctx, rev); err != nil {
			return err
		}
		original.IsReversed = true
		original.UpdatedAt = now
		if err := repos.DocumentRepo.UpdateDocument(ctx, *original); err != nil {
			return err
		}
		return s.audit.Record(ctx, repos, actor, portssvc.AuditEvent{
			Action:     domain.AuditReverse,
			EntityType: kind.EntityType(),
			EntityID:   original.DocumentID,
			Old:        before,
			New:        map[string]any{"is_reversed": true, "reversal_id": rev.DocumentID, "reversal_number": rev.Number},
			Remarks:    remarks,
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to reverse document",
			slog.String("document_id", documentID),
			slog.String("user_id", actor.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Document reversed",
		slog.String("document_id", documentID),
		slog.String("reversal_id", rev.DocumentID),
		slog.String("number", rev.Number))
	return &rev, nil
}

// counterPost writes the transaction that cancels the original's posting:
// the same amount with debit and credit accounts swapped.
func (s *reversalService) counterPost(ctx context.Context, repos portsrepo.RepositoryProvider, original, rev domain.Document, actorID, remarks string) (*domain.Transaction, error) {
	txn, err := repos.LedgerRepo.FindTransactionByID(ctx, original.TenantID, *original.TransactionID)
	if err != nil {
		return nil, err
	}
	if txn.IsReversed {
		return nil, apperrors.ErrAlreadyReversed
	}

	var debitID, creditID string
	for _, e := range txn.Entries {
		if e.IsDebit() {
			debitID = e.AccountID
		} else {
			creditID = e.AccountID
		}
	}
	if len(txn.Entries) != 2 || debitID == "" || creditID == "" {
		return nil, fmt.Errorf("%w: transaction %s is not a two-line posting", apperrors.ErrIntegrity, txn.ReferenceNumber)
	}
	accounts, err := repos.AccountRepo.FindAccountsByIDs(ctx, original.TenantID, []string{debitID, creditID})
	if err != nil {
		return nil, err
	}
	debit, okDebit := accounts[debitID]
	credit, okCredit := accounts[creditID]
	if !okDebit || !okCredit {
		return nil, fmt.Errorf("%w: accounts of transaction %s", apperrors.ErrAccountMappingMissing, txn.ReferenceNumber)
	}

	reversing, err := s.engine.Post(ctx, repos, portssvc.PostingRequest{
		TenantID:        original.TenantID,
		ActorID:         actorID,
		ReferenceNumber: rev.Number,
		TransactionType: original.Kind.ReversalType(),
		DebitCode:       credit.Code,
		CreditCode:      debit.Code,
		Amount:          txn.TotalAmount.Abs(),
		Date:            rev.Date,
		Description:     fmt.Sprintf("Reversal of %s: %s", txn.ReferenceNumber, remarks),
		Memo:            "Reversal of " + entryMemo(original),
		FundType:        txn.FundType,
		ReversalOfID:    &txn.TransactionID,
	})
	if err != nil {
		return nil, err
	}
	if err := repos.LedgerRepo.MarkTransactionReversed(ctx, original.TenantID, txn.TransactionID); err != nil {
		return nil, err
	}
	return reversing, nil
}
