package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is a row of the documents table, shared by income receipts and
// expense vouchers. Approval columns stay NULL for receipts.
type Document struct {
	DocumentID          string          `db:"document_id"`
	TenantID            string          `db:"tenant_id"`
	Kind                string          `db:"kind"`
	Number              string          `db:"number"`
	TransactionID       *string         `db:"transaction_id"`
	DocumentDate        time.Time       `db:"document_date"`
	DocumentTime        *string         `db:"document_time"`
	Category            string          `db:"category"`
	FundType            string          `db:"fund_type"`
	Counterparty        string          `db:"counterparty"`
	CounterpartyContact *string         `db:"counterparty_contact"`
	PaymentMode         string          `db:"payment_mode"`
	PaymentReference    *string         `db:"payment_reference"`
	Amount              decimal.Decimal `db:"amount"`
	Description         string          `db:"description"`
	VerificationStatus  string          `db:"verification_status"`
	VerifiedBy          *string         `db:"verified_by"`
	VerifiedAt          *time.Time      `db:"verified_at"`
	VerificationRemarks *string         `db:"verification_remarks"`
	ApprovalStatus      *string         `db:"approval_status"`
	ApprovedBy          *string         `db:"approved_by"`
	ApprovedAt          *time.Time      `db:"approved_at"`
	ApprovalRemarks     *string         `db:"approval_remarks"`
	EnteredBy           string          `db:"entered_by"`
	IsReversed          bool            `db:"is_reversed"`
	ReversalOfID        *string         `db:"reversal_of_id"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}
