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
	"github.com/SscSPs/fund_ledger/internal/core/workflow"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/SscSPs/fund_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	autoVerifiedRemarks = "Auto-verified on creation"
	autoApprovedRemarks = "Auto-approved on creation"
)

type documentService struct {
	BaseService
	store    portsrepo.Store
	engine   portssvc.PostingEngine
	guard    portssvc.PeriodGuard
	settings portssvc.SettingsReaderSvc
	audit    portssvc.AuditRecorder
}

// NewDocumentService creates the income and expense service.
func NewDocumentService(
	store portsrepo.Store,
	engine portssvc.PostingEngine,
	guard portssvc.PeriodGuard,
	settings portssvc.SettingsReaderSvc,
	audit portssvc.AuditRecorder,
	opts ...Option,
) portssvc.DocumentSvcFacade {
	return &documentService{
		BaseService: newBaseService(opts),
		store:       store,
		engine:      engine,
		guard:       guard,
		settings:    settings,
		audit:       audit,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// draft holds the validated fields shared by receipts and vouchers.
type draft struct {
	kind             domain.DocumentKind
	date             time.Time
	time             string
	category         string
	fund             domain.FundType
	counterparty     string
	contact          string
	paymentMode      string
	paymentReference string
	amount           decimal.Decimal
	description      string
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return apperrors.NewValidationError("amount must be greater than zero")
	}
	if !accounting.IsMoney(amount) {
		return apperrors.NewValidationError("amount must have at most two decimal places")
	}
	return nil
}

func (s *documentService) checkDraft(d *draft) error {
	rules := s.engine.Rules()
	if err := validateAmount(d.amount); err != nil {
		return err
	}
	if !rules.AcceptsCategory(d.kind, d.category) {
		return apperrors.NewValidationError("unknown %s category %q", strings.ToLower(string(d.kind)), d.category)
	}
	if d.fund != "" && !rules.HasFund(d.fund) {
		return apperrors.NewValidationError("unknown fund %q", d.fund)
	}
	d.fund = rules.FundFor(d.kind, d.category, d.fund)
	if !rules.HasPaymentMode(d.paymentMode) {
		return apperrors.NewValidationError("unknown payment mode %q", d.paymentMode)
	}
	return nil
}

func (s *documentService) CreateIncome(ctx context.Context, actor domain.Actor, req dto.CreateIncomeRequest) (*domain.Document, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, actor, draft{
		kind:             domain.KindIncome,
		date:             date,
		time:             strings.TrimSpace(req.Time),
		category:         strings.TrimSpace(req.Category),
		fund:             req.FundType,
		counterparty:     strings.TrimSpace(req.Payer),
		contact:          strings.TrimSpace(req.PayerContact),
		paymentMode:      strings.TrimSpace(req.PaymentMode),
		paymentReference: strings.TrimSpace(req.PaymentReference),
		amount:           req.Amount,
		description:      strings.TrimSpace(req.Description),
	})
}

func (s *documentService) CreateExpense(ctx context.Context, actor domain.Actor, req dto.CreateExpenseRequest) (*domain.Document, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, actor, draft{
		kind:             domain.KindExpense,
		date:             date,
		category:         strings.TrimSpace(req.Category),
		fund:             req.FundType,
		counterparty:     strings.TrimSpace(req.Payee),
		contact:          strings.TrimSpace(req.PayeeContact),
		paymentMode:      strings.TrimSpace(req.PaymentMode),
		paymentReference: strings.TrimSpace(req.PaymentReference),
		amount:           req.Amount,
		description:      strings.TrimSpace(req.Description),
	})
}

func (s *documentService) create(ctx context.Context, actor domain.Actor, d draft) (*domain.Document, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapCreateEntry)
	if err != nil {
		return nil, err
	}
	if err := s.checkDraft(&d); err != nil {
		return nil, err
	}
	settings, err := s.settings.Settings(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	doc := domain.Document{
		DocumentID:          uuid.NewString(),
		TenantID:            tenantID,
		Kind:                d.kind,
		Date:                d.date,
		Time:                d.time,
		Category:            d.category,
		FundType:            d.fund,
		Counterparty:        d.counterparty,
		CounterpartyContact: d.contact,
		PaymentMode:         d.paymentMode,
		PaymentReference:    d.paymentReference,
		Amount:              d.amount,
		Description:         d.description,
		VerificationStatus:  domain.VerificationPending,
		EnteredBy:           actor.UserID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if d.kind.RequiresApproval() {
		doc.ApprovalStatus = domain.ApprovalPending
	}

	err = s.store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		if err := s.guard.EnsureOpen(ctx, repos, tenantID, doc.Date); err != nil {
			return err
		}
		today := truncateDay(now)
		seq, err := repos.DocumentRepo.NextSequence(ctx, tenantID, domain.DayPrefix(d.kind, today))
		if err != nil {
			return err
		}
		doc.Number = domain.FormatDocumentNumber(d.kind, today, seq)

		if settings.AutoVerify {
			autoApprove(&doc, actor.UserID, now)
			txn, err := s.post(ctx, repos, doc, actor.UserID)
			if err != nil {
				return err
			}
			doc.TransactionID = &txn.TransactionID
		}

		if err := repos.DocumentRepo.SaveDocument(ctx, doc); err != nil {
			return err
		}
		return s.audit.Record(ctx, repos, actor, portssvc.AuditEvent{
			Action:     domain.AuditCreate,
			EntityType: d.kind.EntityType(),
			EntityID:   doc.DocumentID,
			New:        doc.Snapshot(),
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create document",
			slog.String("kind", string(d.kind)),
			slog.String("category", d.category),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Document created",
		slog.String("document_id", doc.DocumentID),
		slog.String("number", doc.Number),
		slog.Bool("posted", doc.IsPosted()))
	return &doc, nil
}

// autoApprove stamps every workflow stage of a new document as passed.
func autoApprove(doc *domain.Document, userID string, at time.Time) {
	var by *string
	if userID != "" {
		by = &userID
	}
	doc.VerificationStatus = domain.VerificationVerified
	doc.VerifiedBy = by
	doc.VerifiedAt = &at
	doc.VerificationRemarks = autoVerifiedRemarks
	if doc.Kind.RequiresApproval() {
		doc.ApprovalStatus = domain.ApprovalApproved
		doc.ApprovedBy = by
		doc.ApprovedAt = &at
		doc.ApprovalRemarks = autoApprovedRemarks
	}
}

func postingDescription(doc domain.Document, categoryName string) string {
	label := "Income"
	if doc.Kind == domain.KindExpense {
		label = "Expense"
	}
	return fmt.Sprintf("%s: %s - %s", label, doc.Counterparty, categoryName)
}

func entryMemo(doc domain.Document) string {
	if doc.Kind == domain.KindExpense {
		return "Voucher: " + doc.Number
	}
	return "Receipt: " + doc.Number
}

// post writes the ledger transaction for doc inside the caller's unit of work.
func (s *documentService) post(ctx context.Context, repos portsrepo.RepositoryProvider, doc domain.Document, actorID string) (*domain.Transaction, error) {
	pair, err := s.engine.ResolveAccounts(doc.Kind, doc.Category, doc.FundType, doc.PaymentMode)
	if err != nil {
		return nil, err
	}
	return s.engine.Post(ctx, repos, portssvc.PostingRequest{
		TenantID:        doc.TenantID,
		ActorID:         actorID,
		ReferenceNumber: doc.Number,
		TransactionType: doc.Kind.PostingType(),
		DebitCode:       pair.DebitCode,
		CreditCode:      pair.CreditCode,
		Amount:          doc.Amount,
		Date:            doc.Date,
		Description:     postingDescription(doc, s.engine.Rules().CategoryName(doc.Kind, doc.Category)),
		Memo:            entryMemo(doc),
		FundType:        pair.Fund,
	})
}

func (s *documentService) Verify(ctx context.Context, actor domain.Actor, kind domain.DocumentKind, documentID, remarks string) (*domain.Document, error) {
	return s.transition(ctx, actor, kind, documentID, workflow.Verify, remarks)
}

func (s *documentService) Approve(ctx context.Context, actor domain.Actor, kind domain.DocumentKind, documentID, remarks string) (*domain.Document, error) {
	return s.transition(ctx, actor, kind, documentID, workflow.Approve, remarks)
}

func (s *documentService) Reject(ctx context.Context, actor domain.Actor, kind domain.DocumentKind, documentID, remarks string) (*domain.Document, error) {
	return s.transition(ctx, actor, kind, documentID, workflow.Reject, remarks)
}

func (s *documentService) transition(ctx context.Context, actor domain.Actor, kind domain.DocumentKind, documentID string, action workflow.Action, remarks string) (*domain.Document, error) {
	tenantID, err := s.scope.TenantFor(actor)
	if err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("unknown document kind %q", kind)
	}
	req := workflow.Request{Actor: actor, Action: action, Remarks: strings.TrimSpace(remarks)}

	var doc *domain.Document
	err = s.store.Do(ctx, func(repos portsrepo.RepositoryProvider) error {
		found, err := repos.DocumentRepo.FindDocumentByID(ctx, tenantID, kind, documentID)
		if err != nil {
			return err
		}
		doc = found
		from := workflow.StateOf(*doc)
		to, posts, err := workflow.Check(*doc, req)
		if err != nil {
			return err
		}
		if posts {
			if err := s.guard.EnsureOpen(ctx, repos, tenantID, doc.Date); err != nil {
				return err
			}
		}

		before := doc.Snapshot()
		workflow.Apply(doc, from, to, req, s.Now())
		if posts {
			txn, err := s.post(ctx, repos, *doc, actor.UserID)
			if err != nil {
				return err
			}
			doc.TransactionID = &txn.TransactionID
		}
		if err := repos.DocumentRepo.UpdateDocument(ctx, *doc); err != nil {
			return err
		}
		return s.audit.Record(ctx, repos, actor, portssvc.AuditEvent{
			Action:     workflow.AuditAction(action),
			EntityType: kind.EntityType(),
			EntityID:   doc.DocumentID,
			Old:        before,
			New:        doc.Snapshot(),
			Remarks:    req.Remarks,
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Workflow transition failed",
			slog.String("action", string(action)),
			slog.String("document_id", documentID),
			slog.String("user_id", actor.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Workflow transition applied",
		slog.String("action", string(action)),
		slog.String("document_id", doc.DocumentID),
		slog.String("state", string(workflow.StateOf(*doc))),
		slog.Bool("posted", doc.IsPosted()))
	return doc, nil
}

func (s *documentService) GetDocument(ctx context.Context, actor domain.Actor, kind domain.DocumentKind, documentID string) (*domain.Document, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("unknown document kind %q", kind)
	}
	return s.store.Repositories().DocumentRepo.FindDocumentByID(ctx, tenantID, kind, documentID)
}

func (s *documentService) ListDocuments(ctx context.Context, actor domain.Actor, filter domain.DocumentFilter) ([]domain.Document, *string, error) {
	tenantID, err := s.authorize(ctx, actor, domain.CapViewLedger)
	if err != nil {
		return nil, nil, err
	}
	if filter.Kind != "" && !filter.Kind.IsValid() {
		return nil, nil, apperrors.NewValidationError("unknown document kind %q", filter.Kind)
	}
	docs, next, err := s.store.Repositories().DocumentRepo.ListDocuments(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", slog.String("tenant_id", tenantID))
		return nil, nil, err
	}
	return docs, next, nil
}
