package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind distinguishes income receipts from expense vouchers.
type DocumentKind string

const (
	KindIncome  DocumentKind = "INCOME"
	KindExpense DocumentKind = "EXPENSE"
)

// IsValid reports whether k is a known kind.
func (k DocumentKind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

// NumberPrefix returns the human-readable number prefix for the kind.
func (k DocumentKind) NumberPrefix() string {
	if k == KindExpense {
		return "EXP"
	}
	return "RCP"
}

// EntityType returns the audit entity name for the kind.
func (k DocumentKind) EntityType() string {
	if k == KindExpense {
		return EntityExpense
	}
	return EntityIncome
}

// PostingType returns the transaction type used when the document is posted.
func (k DocumentKind) PostingType() TransactionType {
	if k == KindExpense {
		return TxnExpense
	}
	return TxnIncome
}

// ReversalType returns the transaction type used for its counter posting.
func (k DocumentKind) ReversalType() TransactionType {
	if k == KindExpense {
		return TxnExpenseReversal
	}
	return TxnIncomeReversal
}

// RequiresApproval reports whether the kind has the second approval stage.
func (k DocumentKind) RequiresApproval() bool {
	return k == KindExpense
}

// VerificationStatus is the first workflow stage.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// ApprovalStatus is the second workflow stage, used by expenses only.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ReversalNumberPrefix prefixes the number of a mirror reversal document.
const ReversalNumberPrefix = "REV-"

// Document is an income receipt or expense voucher: the source record a
// posting is made from. It is never edited or deleted once posted, only
// reversed by a mirror document with a negated amount.
type Document struct {
	DocumentID          string             `json:"documentID"`
	TenantID            string             `json:"tenantID"`
	Kind                DocumentKind       `json:"kind"`
	Number              string             `json:"number"`
	TransactionID       *string            `json:"transactionID,omitempty"`
	Date                time.Time          `json:"date"`
	Time                string             `json:"time,omitempty"` // HH:MM, income receipts
	Category            string             `json:"category"`
	FundType            FundType           `json:"fundType"`
	Counterparty        string             `json:"counterparty"` // payer or payee
	CounterpartyContact string             `json:"counterpartyContact,omitempty"`
	PaymentMode         string             `json:"paymentMode"`
	PaymentReference    string             `json:"paymentReference,omitempty"`
	Amount              decimal.Decimal    `json:"amount"`
	Description         string             `json:"description"`
	VerificationStatus  VerificationStatus `json:"verificationStatus"`
	VerifiedBy          *string            `json:"verifiedBy,omitempty"`
	VerifiedAt          *time.Time         `json:"verifiedAt,omitempty"`
	VerificationRemarks string             `json:"verificationRemarks,omitempty"`
	ApprovalStatus      ApprovalStatus     `json:"approvalStatus,omitempty"`
	ApprovedBy          *string            `json:"approvedBy,omitempty"`
	ApprovedAt          *time.Time         `json:"approvedAt,omitempty"`
	ApprovalRemarks     string             `json:"approvalRemarks,omitempty"`
	EnteredBy           string             `json:"enteredBy"`
	IsReversed          bool               `json:"isReversed"`
	ReversalOfID        *string            `json:"reversalOfID,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

// IsReversal reports whether the document mirrors another one.
func (d Document) IsReversal() bool {
	return d.ReversalOfID != nil
}

// IsPosted reports whether a ledger transaction is linked.
func (d Document) IsPosted() bool {
	return d.TransactionID != nil
}

// Counts reports whether the document contributes to activity reports:
// posted, not reversed, and not itself a reversal mirror.
func (d Document) Counts() bool {
	return d.IsPosted() && !d.IsReversed && !d.IsReversal()
}

// Snapshot returns the fields recorded in audit logs.
func (d Document) Snapshot() map[string]any {
	snap := map[string]any{
		"number":              d.Number,
		"amount":              d.Amount.StringFixed(2),
		"category":            d.Category,
		"fund_type":           d.FundType,
		"verification_status": d.VerificationStatus,
		"is_reversed":         d.IsReversed,
	}
	if d.Kind.RequiresApproval() {
		snap["approval_status"] = d.ApprovalStatus
	}
	return snap
}

// DocumentFilter narrows document listings. Zero values mean "any".
type DocumentFilter struct {
	Kind               DocumentKind
	VerificationStatus VerificationStatus
	ApprovalStatus     ApprovalStatus
	Category           string
	FundType           FundType
	IncludeReversed    bool
	Limit              int
	NextToken          *string
}

// DayPrefix returns the number prefix for documents of kind k created on day.
func DayPrefix(k DocumentKind, day time.Time) string {
	return k.NumberPrefix() + day.Format("20060102")
}

// FormatDocumentNumber renders PREFIX + YYYYMMDD + 4-digit sequence.
func FormatDocumentNumber(k DocumentKind, day time.Time, seq int) string {
	return fmt.Sprintf("%s%04d", DayPrefix(k, day), seq)
}

// ReversalNumber returns the mirror document number for original.
func ReversalNumber(original string) string {
	return ReversalNumberPrefix + original
}

// TransactionReference returns the ledger reference for a document number.
func TransactionReference(documentNumber string) string {
	return TransactionReferencePrefix + strings.TrimSpace(documentNumber)
}
