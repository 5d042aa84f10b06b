package domain

import "time"

// SafetyEvent records an accident or near-miss at a site.
type SafetyEvent struct {
	ID          int64     `json:"id"`
	SiteID      int64     `json:"siteID"`
	ReporterID  int64     `json:"reporterID"`
	OccurredAt  time.Time `json:"occurredAt"`
	Severity    string    `json:"severity"` // near-miss, minor, major
	Description string    `json:"description"`
	PhotoKeys   []string  `json:"photoKeys"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}
