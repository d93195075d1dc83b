package models

import "time"

// Tenant is a row of the tenants table.
type Tenant struct {
	TenantID    string `db:"tenant_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// TenantMember is a row of the tenant_members table.
type TenantMember struct {
	TenantID string    `db:"tenant_id"`
	UserID   string    `db:"user_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}

// Settings is a row of the settings table.
type Settings struct {
	TenantID         string    `db:"tenant_id"`
	OrganizationName string    `db:"organization_name"`
	AutoVerify       bool      `db:"auto_verify"`
	UpdatedBy        string    `db:"updated_by"`
	UpdatedAt        time.Time `db:"updated_at"`
}
