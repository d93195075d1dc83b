package models

import "time"

// AuditLog is a row of the append-only audit_logs table. Snapshots are
// stored as JSONB and travel as text.
type AuditLog struct {
	AuditID    string    `db:"audit_id"`
	TenantID   string    `db:"tenant_id"`
	ActorID    string    `db:"actor_id"`
	Action     string    `db:"action"`
	EntityType string    `db:"entity_type"`
	EntityID   string    `db:"entity_id"`
	OldValues  *string   `db:"old_values"`
	NewValues  *string   `db:"new_values"`
	Remarks    *string   `db:"remarks"`
	CreatedAt  time.Time `db:"created_at"`
}

// PeriodLock is a row of the period_locks table.
type PeriodLock struct {
	LockID   string    `db:"lock_id"`
	TenantID string    `db:"tenant_id"`
	Year     int       `db:"year"`
	Month    int       `db:"month"`
	LockedBy string    `db:"locked_by"`
	LockedAt time.Time `db:"locked_at"`
	Remarks  *string   `db:"remarks"`
}
