package domain

import "time"

// Site is the organizational unit (outpost) whose boards and records are
// scoped together. Every persisted row carries a site id.
type Site struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
