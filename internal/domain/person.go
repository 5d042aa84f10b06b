package domain

import "time"

type Role string

const (
	RoleSoldier   Role = "soldier"
	RoleSergeant  Role = "sergeant"
	RoleCommander Role = "commander"
)

type Person struct {
	ID           int64     `json:"id"`
	SiteID       int64     `json:"siteID"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
