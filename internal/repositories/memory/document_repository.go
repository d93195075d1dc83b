package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type documentRepo struct{ access }

var _ portsrepo.DocumentRepositoryFacade = (*documentRepo)(nil)

func (r *documentRepo) FindDocumentByID(ctx context.Context, tenantID string, kind domain.DocumentKind, documentID string) (*domain.Document, error) {
	var out *domain.Document
	err := r.read(func(st *state) error {
		doc, ok := st.documents[documentID]
		if !ok || doc.TenantID != tenantID || doc.Kind != kind {
			return apperrors.NewNotFoundError(fmt.Sprintf("%s %s", kind.EntityType(), documentID))
		}
		out = &doc
		return nil
	})
	return out, err
}

func matchesDocument(doc domain.Document, f domain.DocumentFilter) bool {
	switch {
	case f.Kind != "" && doc.Kind != f.Kind:
		return false
	case f.VerificationStatus != "" && doc.VerificationStatus != f.VerificationStatus:
		return false
	case f.ApprovalStatus != "" && doc.ApprovalStatus != f.ApprovalStatus:
		return false
	case f.Category != "" && doc.Category != f.Category:
		return false
	case f.FundType != "" && doc.FundType != f.FundType:
		return false
	case !f.IncludeReversed && doc.IsReversed:
		return false
	}
	return true
}

func (r *documentRepo) ListDocuments(ctx context.Context, tenantID string, filter domain.DocumentFilter) ([]domain.Document, *string, error) {
	var docs []domain.Document
	err := r.read(func(st *state) error {
		for _, doc := range st.documents {
			if doc.TenantID == tenantID && matchesDocument(doc, filter) {
				docs = append(docs, doc)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(docs, func(i, j int) bool {
		return pagination.After(docs[j].CreatedAt, docs[j].DocumentID, docs[i].CreatedAt, docs[i].DocumentID)
	})

	if filter.NextToken != nil && *filter.NextToken != "" {
		at, id, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("%v", err)
		}
		start := len(docs)
		for i, doc := range docs {
			if pagination.After(doc.CreatedAt, doc.DocumentID, at, id) {
				start = i
				break
			}
		}
		docs = docs[start:]
	}

	limit := pagination.Limit(filter.Limit)
	if len(docs) <= limit {
		return docs, nil, nil
	}
	page := docs[:limit]
	last := page[len(page)-1]
	next := pagination.EncodeToken(last.CreatedAt, last.DocumentID)
	return page, &next, nil
}

func (r *documentRepo) SaveDocument(ctx context.Context, doc domain.Document) error {
	return r.write(func(st *state) error {
		for _, existing := range st.documents {
			if existing.TenantID == doc.TenantID && existing.Number == doc.Number {
				return fmt.Errorf("document number %s: %w", doc.Number, apperrors.ErrDuplicate)
			}
		}
		st.documents[doc.DocumentID] = doc
		return nil
	})
}

func (r *documentRepo) UpdateDocument(ctx context.Context, doc domain.Document) error {
	return r.write(func(st *state) error {
		existing, ok := st.documents[doc.DocumentID]
		if !ok || existing.TenantID != doc.TenantID {
			return apperrors.NewNotFoundError("document " + doc.DocumentID)
		}
		st.documents[doc.DocumentID] = doc
		return nil
	})
}

func (r *documentRepo) NextSequence(ctx context.Context, tenantID, prefix string) (int, error) {
	var next int
	err := r.write(func(st *state) error {
		k := key(tenantID, prefix)
		st.sequences[k]++
		next = st.sequences[k]
		return nil
	})
	return next, err
}

func (r *documentRepo) ListDocumentsOnDate(ctx context.Context, tenantID string, date time.Time) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.read(func(st *state) error {
		for _, doc := range st.documents {
			if doc.TenantID == tenantID && doc.Date.Equal(date) && !doc.IsReversed && !doc.IsReversal() {
				docs = append(docs, doc)
			}
		}
		return nil
	})
	sort.Slice(docs, func(i, j int) bool {
		return pagination.After(docs[i].CreatedAt, docs[i].DocumentID, docs[j].CreatedAt, docs[j].DocumentID)
	})
	return docs, err
}

func (r *documentRepo) SumDocumentsByCategory(ctx context.Context, tenantID string, kind domain.DocumentKind, from, to time.Time) ([]domain.CategoryTotal, error) {
	byCategory := map[string]*domain.CategoryTotal{}
	err := r.read(func(st *state) error {
		for _, doc := range st.documents {
			if doc.TenantID != tenantID || doc.Kind != kind || !doc.Counts() || !inRange(doc.Date, &from, &to) {
				continue
			}
			t, ok := byCategory[doc.Category]
			if !ok {
				t = &domain.CategoryTotal{Category: doc.Category, Total: decimal.Zero}
				byCategory[doc.Category] = t
			}
			t.Count++
			t.Total = t.Total.Add(doc.Amount)
		}
		return nil
	})
	out := make([]domain.CategoryTotal, 0, len(byCategory))
	for _, t := range byCategory {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, err
}

func (r *documentRepo) SumIncomeByPayer(ctx context.Context, tenantID string, from, to *time.Time) ([]domain.PayerTotal, error) {
	byPayer := map[string]*domain.PayerTotal{}
	err := r.read(func(st *state) error {
		for _, doc := range st.documents {
			if doc.TenantID != tenantID || doc.Kind != domain.KindIncome || doc.Counterparty == "" ||
				!doc.Counts() || !inRange(doc.Date, from, to) {
				continue
			}
			t, ok := byPayer[doc.Counterparty]
			if !ok {
				t = &domain.PayerTotal{Payer: doc.Counterparty, Total: decimal.Zero}
				byPayer[doc.Counterparty] = t
			}
			t.Count++
			t.Total = t.Total.Add(doc.Amount)
		}
		return nil
	})
	out := make([]domain.PayerTotal, 0, len(byPayer))
	for _, t := range byPayer {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Payer < out[j].Payer
	})
	return out, err
}
