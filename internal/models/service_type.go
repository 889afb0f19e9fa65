package models

import "gorm.io/gorm"

type ServiceCategory string

const (
	CategorySoftware ServiceCategory = "Software"
	CategoryHardware ServiceCategory = "Hardware"
	CategoryNetwork  ServiceCategory = "Network"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategorySoftware, CategoryHardware, CategoryNetwork:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyLow, DifficultyMedium, DifficultyHigh:
		return true
	}
	return false
}

// ServiceType is a catalog entry with a fixed price.
type ServiceType struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"size:100;not null" json:"name"`
	Category   ServiceCategory `gorm:"type:varchar(20);not null" json:"category"`
	Difficulty Difficulty      `gorm:"type:varchar(20);not null" json:"difficulty"`
	Price      float64         `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (s ServiceType) RecordID() uint     { return s.ID }
func (s ServiceType) EntityName() string { return "service_type" }

func (s *ServiceType) BeforeDelete(tx *gorm.DB) error {
	return deleteEach[Order](tx, "service_type_id = ?", s.ID)
}
