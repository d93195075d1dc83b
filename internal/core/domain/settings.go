package domain

import "time"

// SettingsSource tells callers whether settings were stored or defaulted.
type SettingsSource string

const (
	SettingsStored   SettingsSource = "stored"
	SettingsDefaults SettingsSource = "defaults"
)

// Settings are the per-tenant organisation preferences the core consults.
type Settings struct {
	TenantID         string         `json:"tenantID"`
	OrganizationName string         `json:"organizationName"`
	AutoVerify       bool           `json:"autoVerify"`
	Source           SettingsSource `json:"source"`
	UpdatedBy        string         `json:"updatedBy,omitempty"`
	UpdatedAt        time.Time      `json:"updatedAt,omitempty"`
}

// DefaultSettings returns the settings used when a tenant has stored none.
func DefaultSettings(tenantID string, autoVerify bool) Settings {
	return Settings{
		TenantID:         tenantID,
		OrganizationName: "Masjid",
		AutoVerify:       autoVerify,
		Source:           SettingsDefaults,
	}
}
