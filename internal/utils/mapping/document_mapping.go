package mapping

import (
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/SscSPs/fund_ledger/internal/models"
)

// ToModelDocument converts a domain Document to a model Document.
func ToModelDocument(d domain.Document) models.Document {
	m := models.Document{
		DocumentID:          d.DocumentID,
		TenantID:            d.TenantID,
		Kind:                string(d.Kind),
		Number:              d.Number,
		TransactionID:       d.TransactionID,
		DocumentDate:        d.Date,
		DocumentTime:        nullable(d.Time),
		Category:            d.Category,
		FundType:            string(d.FundType),
		Counterparty:        d.Counterparty,
		CounterpartyContact: nullable(d.CounterpartyContact),
		PaymentMode:         d.PaymentMode,
		PaymentReference:    nullable(d.PaymentReference),
		Amount:              d.Amount,
		Description:         d.Description,
		VerificationStatus:  string(d.VerificationStatus),
		VerifiedBy:          d.VerifiedBy,
		VerifiedAt:          d.VerifiedAt,
		VerificationRemarks: nullable(d.VerificationRemarks),
		ApprovedBy:          d.ApprovedBy,
		ApprovedAt:          d.ApprovedAt,
		ApprovalRemarks:     nullable(d.ApprovalRemarks),
		EnteredBy:           d.EnteredBy,
		IsReversed:          d.IsReversed,
		ReversalOfID:        d.ReversalOfID,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
	if d.ApprovalStatus != "" {
		status := string(d.ApprovalStatus)
		m.ApprovalStatus = &status
	}
	return m
}

// ToDomainDocument converts a model Document to a domain Document.
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:          m.DocumentID,
		TenantID:            m.TenantID,
		Kind:                domain.DocumentKind(m.Kind),
		Number:              m.Number,
		TransactionID:       m.TransactionID,
		Date:                m.DocumentDate,
		Time:                deref(m.DocumentTime),
		Category:            m.Category,
		FundType:            domain.FundType(m.FundType),
		Counterparty:        m.Counterparty,
		CounterpartyContact: deref(m.CounterpartyContact),
		PaymentMode:         m.PaymentMode,
		PaymentReference:    deref(m.PaymentReference),
		Amount:              m.Amount,
		Description:         m.Description,
		VerificationStatus:  domain.VerificationStatus(m.VerificationStatus),
		VerifiedBy:          m.VerifiedBy,
		VerifiedAt:          m.VerifiedAt,
		VerificationRemarks: deref(m.VerificationRemarks),
		ApprovalStatus:      domain.ApprovalStatus(deref(m.ApprovalStatus)),
		ApprovedBy:          m.ApprovedBy,
		ApprovedAt:          m.ApprovedAt,
		ApprovalRemarks:     deref(m.ApprovalRemarks),
		EnteredBy:           m.EnteredBy,
		IsReversed:          m.IsReversed,
		ReversalOfID:        m.ReversalOfID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
