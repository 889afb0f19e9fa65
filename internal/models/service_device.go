package models

import "time"

type ServiceStatus string

const (
	ServiceIn       ServiceStatus = "Masuk"   // baru datang
	ServiceProcess  ServiceStatus = "Proses"  // dalam perbaikan
	ServiceDone     ServiceStatus = "Selesai" // sudah diperbaiki
	ServicePickedUp ServiceStatus = "Diambil" // sudah diambil pelanggan
)

func (s ServiceStatus) Valid() bool {
	switch s {
	case ServiceIn, ServiceProcess, ServiceDone, ServicePickedUp:
		return true
	}
	return false
}

type RecordStatus string

const (
	StatusActive   RecordStatus = "Aktif"
	StatusInactive RecordStatus = "Tidak Aktif"
)

func (s RecordStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// ServiceDevice is the walk-in intake record. Customer and device are kept
// as free text and are not linked to Customer/Device rows.
type ServiceDevice struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	Code              string        `gorm:"size:20;not null" json:"code"`
	CustomerName      string        `gorm:"size:100;not null" json:"customer_name"`
	DeviceType        string        `gorm:"size:50;not null" json:"device_type"`
	Brand             string        `gorm:"size:50;not null" json:"brand"`
	DamageDescription string        `gorm:"type:text;not null" json:"damage_description"`
	ServiceStatus     ServiceStatus `gorm:"type:varchar(20);not null" json:"service_status"`
	Status            RecordStatus  `gorm:"type:varchar(15);not null" json:"status"`

	UserCreateID *uint    `gorm:"index" json:"user_create"`
	UserCreate   *Account `gorm:"foreignKey:UserCreateID;constraint:OnDelete:SET NULL" json:"-"`
	UserUpdateID *uint    `gorm:"index" json:"user_update"`
	UserUpdate   *Account `gorm:"foreignKey:UserUpdateID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedOn    time.Time `gorm:"autoCreateTime" json:"created_on"`
	LastModified time.Time `gorm:"autoUpdateTime" json:"last_modified"`
}

func (s ServiceDevice) RecordID() uint     { return s.ID }
func (s ServiceDevice) EntityName() string { return "service_device" }
