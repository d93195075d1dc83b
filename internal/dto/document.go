package dto

import (
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest records money received.
type CreateIncomeRequest struct {
	Date             string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string          `json:"time" validate:"omitempty,datetime=15:04"`
	Category         string          `json:"category" validate:"required,max=50"`
	FundType         domain.FundType `json:"fundType" validate:"omitempty,max=50"`
	Payer            string          `json:"payer" validate:"required,max=200"`
	PayerContact     string          `json:"payerContact" validate:"max=100"`
	PaymentMode      string          `json:"paymentMode" validate:"required"`
	PaymentReference string          `json:"paymentReference" validate:"max=100"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description" validate:"max=1000"`
}

// CreateExpenseRequest records money paid out.
type CreateExpenseRequest struct {
	Date             string          `json:"date" validate:"required,datetime=2006-01-02"`
	Category         string          `json:"category" validate:"required,max=50"`
	FundType         domain.FundType `json:"fundType" validate:"required,max=50"`
	Payee            string          `json:"payee" validate:"required,max=200"`
	PayeeContact     string          `json:"payeeContact" validate:"max=100"`
	PaymentMode      string          `json:"paymentMode" validate:"required"`
	PaymentReference string          `json:"paymentReference" validate:"max=100"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description" validate:"max=1000"`
}

// RemarksRequest carries the justification every workflow action and reversal needs.
type RemarksRequest struct {
	Remarks string `json:"remarks"`
}

// ListDocumentsParams defines query parameters for listing income or expenses.
type ListDocumentsParams struct {
	Status          string  `form:"status"`
	Approval        string  `form:"approval"`
	Category        string  `form:"category"`
	Fund            string  `form:"fund"`
	IncludeReversed bool    `form:"includeReversed"`
	Limit           int     `form:"limit,default=20"`
	NextToken       *string `form:"nextToken"`
}

// ListDocumentsResponse is one page of documents.
type ListDocumentsResponse struct {
	Documents []domain.Document `json:"documents"`
	NextToken *string           `json:"nextToken,omitempty"`
}
