package models

import "gorm.io/gorm"

type Device struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerID   uint      `gorm:"not null;index" json:"customer"`
	Customer     *Customer `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Brand        string    `gorm:"size:50;not null" json:"brand"`
	Model        string    `gorm:"size:50;not null" json:"model"`
	SerialNumber string    `gorm:"size:50;not null" json:"serial_number"`
	Specs        string    `gorm:"type:text" json:"specs"`
}

func (d Device) RecordID() uint     { return d.ID }
func (d Device) EntityName() string { return "device" }

func (d *Device) BeforeDelete(tx *gorm.DB) error {
	return deleteEach[Order](tx, "device_id = ?", d.ID)
}
