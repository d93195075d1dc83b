package domain

import (
	"fmt"
	"time"
)

// Period is an accounting month.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// PeriodOf returns the month a date falls in.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// Validate checks year and month ranges.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month %d out of range 1-12", p.Month)
	}
	if p.Year < 1900 || p.Year > 9999 {
		return fmt.Errorf("year %d out of range", p.Year)
	}
	return nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// PeriodLock closes a month to new postings and reversals.
type PeriodLock struct {
	LockID   string    `json:"lockID"`
	TenantID string    `json:"tenantID"`
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	LockedBy string    `json:"lockedBy"`
	LockedAt time.Time `json:"lockedAt"`
	Remarks  string    `json:"remarks,omitempty"`
}

// Period returns the locked month.
func (l PeriodLock) Period() Period {
	return Period{Year: l.Year, Month: l.Month}
}
