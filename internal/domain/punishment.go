package domain

import "time"

type Punishment struct {
	ID        int64     `json:"id"`
	SiteID    int64     `json:"siteID"`
	PersonID  int64     `json:"personID"`
	IssuerID  int64     `json:"issuerID"`
	Reason    string    `json:"reason"`
	Sanction  string    `json:"sanction"`
	IssuedAt  time.Time `json:"issuedAt"`
	IsRevoked bool      `json:"isRevoked"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
