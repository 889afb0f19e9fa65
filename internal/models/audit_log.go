package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	AccountID uint
	Account   *Account `gorm:"constraint:OnDelete:CASCADE"`

	Entity   string `gorm:"size:50;not null"` // "customer", "order", "payment"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "update", "delete"
	Details  string `gorm:"type:text"`
}
