package domain

import "time"

type Inspection struct {
	ID          int64     `json:"id"`
	SiteID      int64     `json:"siteID"`
	InspectorID int64     `json:"inspectorID"`
	HeldAt      time.Time `json:"heldAt"`
	Score       int32     `json:"score"` // 0..100
	Notes       string    `json:"notes"`
	PhotoKeys   []string  `json:"photoKeys"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}
