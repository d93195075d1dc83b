package domain

// Role is the coarse permission set an actor holds within a tenant.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleTreasurer  Role = "TREASURER"
	RoleAccountant Role = "ACCOUNTANT"
	RoleAuditor    Role = "AUDITOR"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Capability is a single permission checked by the services.
type Capability string

const (
	CapViewLedger         Capability = "view_ledger"
	CapCreateEntry        Capability = "create_entry"
	CapVerifyEntry        Capability = "verify_entry"
	CapApproveEntry       Capability = "approve_entry"
	CapReverseEntry       Capability = "reverse_entry"
	CapManageAccounts     Capability = "manage_accounts"
	CapManagePeriodLocks  Capability = "manage_period_locks"
	CapManageSettings     Capability = "manage_settings"
	CapViewAuditLog       Capability = "view_audit_log"
	CapOverrideSelfAction Capability = "override_self_action"
	CapManageMembers      Capability = "manage_members"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapViewLedger: true, CapCreateEntry: true, CapVerifyEntry: true, CapApproveEntry: true,
		CapReverseEntry: true, CapManageAccounts: true, CapManagePeriodLocks: true,
		CapManageSettings: true, CapViewAuditLog: true, CapOverrideSelfAction: true,
		CapManageMembers: true,
	},
	RoleTreasurer: {
		CapViewLedger: true, CapCreateEntry: true, CapVerifyEntry: true, CapApproveEntry: true,
		CapReverseEntry: true, CapManagePeriodLocks: true, CapViewAuditLog: true,
	},
	RoleAccountant: {
		CapViewLedger: true, CapCreateEntry: true, CapVerifyEntry: true,
	},
	// read-only
	RoleAuditor: {
		CapViewLedger: true, CapViewAuditLog: true,
	},
}

// Can is the single permission policy: it reports whether role grants capability.
func Can(role Role, capability Capability) bool {
	return roleCapabilities[role][capability]
}

// Actor is the authenticated caller of a core operation.
// An empty UserID means "no authenticated user": operations still run but
// no audit record is written.
type Actor struct {
	UserID   string `json:"userID"`
	Role     Role   `json:"role"`
	TenantID string `json:"tenantID"`
}

// Can reports whether the actor's role grants capability.
func (a Actor) Can(capability Capability) bool {
	return Can(a.Role, capability)
}

// IsAuthenticated reports whether an identity is attached.
func (a Actor) IsAuthenticated() bool {
	return a.UserID != ""
}

// TenancyMode selects how the tenant partition key is derived.
type TenancyMode string

const (
	// TenancyMulti partitions every entity by the actor's tenant.
	TenancyMulti TenancyMode = "multi"
	// TenancySingle maps every actor onto one shared tenant.
	TenancySingle TenancyMode = "single"
)

// DefaultTenantID is the partition used in single-tenant deployments.
const DefaultTenantID = "default"
