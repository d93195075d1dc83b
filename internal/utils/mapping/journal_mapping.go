package mapping

import (
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Entries are mapped separately with ToModelJournalEntry.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		TenantID:        d.TenantID,
		ReferenceNumber: d.ReferenceNumber,
		TransactionType: string(d.TransactionType),
		TransactionDate: d.Date,
		Description:     d.Description,
		FundType:        string(d.FundType),
		TotalAmount:     d.TotalAmount,
		IsReversed:      d.IsReversed,
		ReversalOfID:    d.ReversalOfID,
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction together with its entries.
func ToDomainTransaction(m models.Transaction, entries []models.JournalEntry) domain.Transaction {
	d := domain.Transaction{
		TransactionID:   m.TransactionID,
		TenantID:        m.TenantID,
		ReferenceNumber: m.ReferenceNumber,
		TransactionType: domain.TransactionType(m.TransactionType),
		Date:            m.TransactionDate,
		Description:     m.Description,
		FundType:        domain.FundType(m.FundType),
		TotalAmount:     m.TotalAmount,
		IsReversed:      m.IsReversed,
		ReversalOfID:    m.ReversalOfID,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
	}
	for _, e := range entries {
		d.Entries = append(d.Entries, ToDomainJournalEntry(e))
	}
	return d
}

// ToModelJournalEntry converts an entry, stamping the owning tenant.
func ToModelJournalEntry(d domain.JournalEntry, tenantID string) models.JournalEntry {
	return models.JournalEntry{
		EntryID:       d.EntryID,
		TransactionID: d.TransactionID,
		TenantID:      tenantID,
		AccountID:     d.AccountID,
		DebitAmount:   d.DebitAmount,
		CreditAmount:  d.CreditAmount,
		EntryDate:     d.Date,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainJournalEntry converts a model JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       m.EntryID,
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		DebitAmount:   m.DebitAmount,
		CreditAmount:  m.CreditAmount,
		Date:          m.EntryDate,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
	}
}
