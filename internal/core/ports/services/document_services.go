package services

import (
	"context"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/dto"
)

// DocumentWriterSvc creates income receipts and expense vouchers.
type DocumentWriterSvc interface {
	CreateIncome(ctx context.Context, actor domain.Actor, req dto.CreateIncomeRequest) (*domain.Document, error)
	CreateExpense(ctx context.Context, actor domain.Actor, req dto.CreateExpenseRequest) (*domain.Document, error)
}

// WorkflowSvc moves documents through verification and approval.
type WorkflowSvc interface {
	Verify(ctx context.Context, actor domain.Actor, kind domain.DocumentKind, documentID, remarks string) (*domain.Document, error)
	Approve(ctx context.Context, actor domain.Actor, kind domain.DocumentKind, documentID, remarks string) (*domain.Document, error)
	Reject(ctx context.Context, actor domain.Actor, kind domain.DocumentKind, documentID, remarks string) (*domain.Document, error)
}

// DocumentReaderSvc reads documents.
type DocumentReaderSvc interface {
	GetDocument(ctx context.Context, actor domain.Actor, kind domain.DocumentKind, documentID string) (*domain.Document, error)
	ListDocuments(ctx context.Context, actor domain.Actor, filter domain.DocumentFilter) ([]domain.Document, *string, error)
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentWriterSvc
	WorkflowSvc
	DocumentReaderSvc
}

// ReversalSvc corrects posted or pending documents by mirroring them.
type ReversalSvc interface {
	Reverse(ctx context.Context, actor domain.Actor, kind domain.DocumentKind, documentID, remarks string) (*domain.Document, error)
}
