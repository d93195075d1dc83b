package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// AuditAction names the state change recorded in the audit trail.
type AuditAction string

const (
	AuditCreate  AuditAction = "create"
	AuditVerify  AuditAction = "verify"
	AuditApprove AuditAction = "approve"
	AuditReject  AuditAction = "reject"
	AuditReverse AuditAction = "reverse"
	AuditDelete  AuditAction = "delete"
	AuditSeed    AuditAction = "seed"
	AuditUpdate  AuditAction = "update"
	AuditLock    AuditAction = "lock"
	AuditUnlock  AuditAction = "unlock"
)

// AuditLog is an append-only record of a state-changing call.
// OldValues and NewValues are JSON snapshots; either may be empty.
type AuditLog struct {
	AuditID    string      `json:"auditID"`
	TenantID   string      `json:"tenantID"`
	ActorID    string      `json:"actorID"`
	Action     AuditAction `json:"action"`
	EntityType string      `json:"entityType"`
	EntityID   string      `json:"entityID"`
	OldValues  string      `json:"oldValues,omitempty"`
	NewValues  string      `json:"newValues,omitempty"`
	Remarks    string      `json:"remarks,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Entity type names used in audit records.
const (
	EntityAccount    = "account"
	EntityIncome     = "income"
	EntityExpense    = "expense"
	EntityPeriodLock = "period_lock"
	EntitySettings   = "settings"
	EntityTenant     = "tenant"
	EntityMember     = "tenant_member"
)

// AuditFilter narrows audit listings. Zero values mean "any".
type AuditFilter struct {
	Action     AuditAction
	EntityType string
	EntityID   string
	Limit      int
	NextToken  *string
}
