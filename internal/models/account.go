package models

import (
	"strings"
	"time"
)

// Account is a login identity. Staff flags decide what the holder may do
// outside the generic CRUD surface.
type Account struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email          string     `gorm:"uniqueIndex;size:254;not null" json:"email"`
	PasswordHash   string     `gorm:"not null" json:"-"`
	FirstName      string     `gorm:"size:150" json:"first_name"`
	LastName       string     `gorm:"size:150" json:"last_name"`
	IsAdminService bool       `gorm:"not null" json:"is_admin_service"`
	IsTechnician   bool       `gorm:"not null" json:"is_technician"`
	IsActive       bool       `gorm:"not null" json:"is_active"`
	LastLogin      *time.Time `json:"last_login"`
	DateJoined     time.Time  `gorm:"autoCreateTime" json:"date_joined"`
}

func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// AuthToken is the opaque bearer credential handed out at registration and
// login. One live token per account.
type AuthToken struct {
	Key       string   `gorm:"primaryKey;size:64"`
	AccountID uint     `gorm:"uniqueIndex;not null"`
	Account   *Account `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (t AuthToken) Expired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.After(t.CreatedAt.Add(ttl))
}
