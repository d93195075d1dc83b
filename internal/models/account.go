package models

import "time"

// AuditFields holds the created/updated columns shared by mutable tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// Account is a row of the accounts table.
type Account struct {
	AccountID       string  `db:"account_id"`
	TenantID        string  `db:"tenant_id"`
	Code            string  `db:"code"`
	Name            string  `db:"name"`
	AccountType     string  `db:"account_type"`
	FundType        string  `db:"fund_type"`
	ParentAccountID *string `db:"parent_account_id"` // Nullable
	Description     string  `db:"description"`
	IsActive        bool    `db:"is_active"`
	AuditFields
}
