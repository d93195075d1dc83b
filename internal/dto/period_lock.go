package dto

// LockPeriodRequest closes a month.
type LockPeriodRequest struct {
	Year    int    `json:"year" validate:"required,min=1900,max=9999"`
	Month   int    `json:"month" validate:"required,min=1,max=12"`
	Remarks string `json:"remarks" validate:"max=500"`
}
