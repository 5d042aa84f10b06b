package domain

import "time"

// DutyRoster is one day of a site's weekly guard roster: who holds the
// morning, afternoon and evening shifts. WeekStart is the date of that
// week's Sunday. A missing shift holder is a valid state, not an error.
type DutyRoster struct {
	ID          int64     `json:"id"`
	SiteID      int64     `json:"siteID"`
	WeekStart   time.Time `json:"weekStart"`
	DayOfWeek   int32     `json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	MorningID   *int64    `json:"morningID"`
	AfternoonID *int64    `json:"afternoonID"`
	EveningID   *int64    `json:"eveningID"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}
