package models

import "gorm.io/gorm"

type TechnicianLevel string

const (
	LevelJunior       TechnicianLevel = "Junior"
	LevelIntermediate TechnicianLevel = "Intermediate"
	LevelSenior       TechnicianLevel = "Senior"
)

func (l TechnicianLevel) Valid() bool {
	switch l {
	case LevelJunior, LevelIntermediate, LevelSenior:
		return true
	}
	return false
}

type Technician struct {
	ID             uint            `gorm:"primaryKey"`
	UserID         uint            `gorm:"uniqueIndex;not null"`
	User           *Account        `gorm:"constraint:OnDelete:CASCADE"`
	Level          TechnicianLevel `gorm:"type:varchar(20);not null"`
	Specialization string          `gorm:"size:100;not null"`
}

func (t Technician) RecordID() uint     { return t.ID }
func (t Technician) EntityName() string { return "technician" }

// BeforeDelete detaches the technician from orders; the orders stay.
func (t *Technician) BeforeDelete(tx *gorm.DB) error {
	return tx.Model(&Order{}).
		Where("technician_id = ?", t.ID).
		UpdateColumn("technician_id", nil).Error
}
