package models

import "gorm.io/gorm"

type CustomerType string

const (
	CustomerIndividual CustomerType = "Individual"
	CustomerBusiness   CustomerType = "Business"
	CustomerGovernment CustomerType = "Government"
)

func (t CustomerType) Valid() bool {
	switch t {
	case CustomerIndividual, CustomerBusiness, CustomerGovernment:
		return true
	}
	return false
}

type Customer struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"size:100;not null" json:"name"`
	CustomerType CustomerType `gorm:"type:varchar(20);not null" json:"customer_type"`
	Contact      string       `gorm:"size:50;not null" json:"contact"`
	Email        *string      `gorm:"size:254" json:"email"`
	Address      *string      `gorm:"type:text" json:"address"`
}

func (c Customer) RecordID() uint     { return c.ID }
func (c Customer) EntityName() string { return "customer" }

// BeforeDelete removes the customer's devices (and through them their
// orders) plus any order still pointing at the customer directly.
func (c *Customer) BeforeDelete(tx *gorm.DB) error {
	if err := deleteEach[Device](tx, "customer_id = ?", c.ID); err != nil {
		return err
	}
	return deleteEach[Order](tx, "customer_id = ?", c.ID)
}
