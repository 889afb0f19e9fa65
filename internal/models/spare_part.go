package models

import "gorm.io/gorm"

type SparePart struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Name             string  `gorm:"size:100;not null" json:"name"`
	CompatibleModels string  `gorm:"type:text" json:"compatible_models"`
	Price            float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (p SparePart) RecordID() uint     { return p.ID }
func (p SparePart) EntityName() string { return "spare_part" }

func (p *SparePart) BeforeDelete(tx *gorm.DB) error {
	return tx.Where("spare_part_id = ?", p.ID).Delete(&Inventory{}).Error
}

// DefaultLowStockThreshold applies when an inventory row is created without
// an explicit threshold.
const DefaultLowStockThreshold = 5

type Inventory struct {
	ID                uint       `gorm:"primaryKey"`
	SparePartID       uint       `gorm:"uniqueIndex;not null"`
	SparePart         *SparePart `gorm:"constraint:OnDelete:CASCADE"`
	Stock             int        `gorm:"not null"`
	LowStockThreshold int        `gorm:"not null"`
}

func (i Inventory) RecordID() uint     { return i.ID }
func (i Inventory) EntityName() string { return "inventory" }

func (i Inventory) IsLowStock() bool {
	return i.Stock <= i.LowStockThreshold
}
