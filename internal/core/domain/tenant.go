package domain

import "time"

// Tenant is the isolated book of accounts an organisation keeps. Every
// account, document, transaction and lock carries its TenantID.
type Tenant struct {
	TenantID    string `json:"tenantID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// TenantMember grants a user a role within a tenant.
type TenantMember struct {
	UserID   string    `json:"userID"`
	TenantID string    `json:"tenantID"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}
