package dto

// UpdateSettingsRequest changes tenant settings. Nil fields are left unchanged.
type UpdateSettingsRequest struct {
	OrganizationName *string `json:"organizationName" validate:"omitempty,min=1,max=200"`
	AutoVerify       *bool   `json:"autoVerify"`
}
