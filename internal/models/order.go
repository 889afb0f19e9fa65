package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string
type OrderPriority string

const (
	OrderPending    OrderStatus = "Pending"
	OrderInProgress OrderStatus = "In Progress"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"

	PriorityLow    OrderPriority = "Low"
	PriorityNormal OrderPriority = "Normal"
	PriorityHigh   OrderPriority = "High"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

func (p OrderPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

type Order struct {
	ID uint `gorm:"primaryKey"`

	CustomerID uint      `gorm:"not null;index"`
	Customer   *Customer `gorm:"constraint:OnDelete:CASCADE"`

	DeviceID uint    `gorm:"not null;index"`
	Device   *Device `gorm:"constraint:OnDelete:CASCADE"`

	TechnicianID *uint       `gorm:"index"`
	Technician   *Technician `gorm:"constraint:OnDelete:SET NULL"`

	ServiceTypeID uint         `gorm:"not null;index"`
	ServiceType   *ServiceType `gorm:"constraint:OnDelete:CASCADE"`

	Status   OrderStatus   `gorm:"type:varchar(20);not null"`
	Priority OrderPriority `gorm:"type:varchar(20);not null"`

	CreatedOn time.Time `gorm:"autoCreateTime"`
	UpdatedOn time.Time `gorm:"autoUpdateTime"`
}

func (o Order) RecordID() uint     { return o.ID }
func (o Order) EntityName() string { return "order" }

func (o *Order) BeforeDelete(tx *gorm.DB) error {
	return tx.Where("order_id = ?", o.ID).Delete(&Payment{}).Error
}
