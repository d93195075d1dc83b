package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
)

// DocumentReader defines read operations for income receipts and expense vouchers.
type DocumentReader interface {
	// FindDocumentByID retrieves a document of the given kind.
	FindDocumentByID(ctx context.Context, tenantID string, kind domain.DocumentKind, documentID string) (*domain.Document, error)

	// ListDocuments retrieves a page of documents, newest first, using token-based pagination.
	// It returns the documents, a token for the next page, and an error.
	ListDocuments(ctx context.Context, tenantID string, filter domain.DocumentFilter) ([]domain.Document, *string, error)
}

// DocumentWriter defines write operations for documents.
type DocumentWriter interface {
	// SaveDocument persists a new document. A number already used in the
	// tenant yields apperrors.ErrDuplicate.
	SaveDocument(ctx context.Context, doc domain.Document) error

	// UpdateDocument persists workflow status, transaction link and reversal flag.
	UpdateDocument(ctx context.Context, doc domain.Document) error
}

// DocumentSequencer hands out document numbers.
type DocumentSequencer interface {
	// NextSequence atomically increments and returns the counter for
	// (tenantID, prefix). The first call for a prefix returns 1.
	NextSequence(ctx context.Context, tenantID, prefix string) (int, error)
}

// DocumentAggregator serves the document-level activity reports. Only
// documents for which Document.Counts holds are aggregated.
type DocumentAggregator interface {
	// ListDocumentsOnDate returns both kinds dated on date, oldest first,
	// skipping reversed documents and reversal mirrors.
	ListDocumentsOnDate(ctx context.Context, tenantID string, date time.Time) ([]domain.Document, error)

	// SumDocumentsByCategory groups counted documents of kind dated within
	// [from, to] by category, ordered by category. Name is left empty.
	SumDocumentsByCategory(ctx context.Context, tenantID string, kind domain.DocumentKind, from, to time.Time) ([]domain.CategoryTotal, error)

	// SumIncomeByPayer groups counted receipts with a payer by payer name,
	// largest total first. Nil bounds are open.
	SumIncomeByPayer(ctx context.Context, tenantID string, from, to *time.Time) ([]domain.PayerTotal, error)
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
	DocumentSequencer
	DocumentAggregator
}
