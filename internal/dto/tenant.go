package dto

import "github.com/SscSPs/fund_ledger/internal/core/domain"

// CreateTenantRequest defines the data needed to open a new set of books.
type CreateTenantRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=500"`
}

// AddMemberRequest grants a user a role in a tenant.
type AddMemberRequest struct {
	UserID string      `json:"userID" validate:"required,max=100"`
	Role   domain.Role `json:"role" validate:"required,oneof=ADMIN TREASURER ACCOUNTANT AUDITOR"`
}
