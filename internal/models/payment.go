package models

import "time"

type PaymentMethod string

const (
	MethodCash       PaymentMethod = "Cash"
	MethodTransfer   PaymentMethod = "Transfer"
	MethodEWallet    PaymentMethod = "E-Wallet"
	MethodCreditCard PaymentMethod = "Credit Card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodEWallet, MethodCreditCard:
		return true
	}
	return false
}

type Payment struct {
	ID      uint          `gorm:"primaryKey"`
	OrderID uint          `gorm:"not null;index"`
	Order   *Order        `gorm:"constraint:OnDelete:CASCADE"`
	Amount  float64       `gorm:"type:decimal(10,2);not null"`
	Method  PaymentMethod `gorm:"type:varchar(20);not null"`
	PaidOn  time.Time     `gorm:"autoCreateTime"`
}

func (p Payment) RecordID() uint     { return p.ID }
func (p Payment) EntityName() string { return "payment" }
