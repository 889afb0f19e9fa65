package handlers

import (
	"context"

	"jasa-service/internal/models"
	"jasa-service/internal/store"
	"jasa-service/internal/validation"

	"gorm.io/gorm"
)

type deviceInput struct {
	Customer     *uint   `json:"customer"`
	Brand        *string `json:"brand" binding:"omitempty,max=50"`
	Model        *string `json:"model" binding:"omitempty,max=50"`
	SerialNumber *string `json:"serial_number" binding:"omitempty,max=50"`
	Specs        *string `json:"specs"`
}

func (in *deviceInput) Validate(ctx context.Context, db *gorm.DB, current *models.Device) error {
	create := current == nil
	fe := validation.FieldErrors{}
	fe.Required("customer", in.Customer != nil, create)
	fe.String("brand", in.Brand, create)
	fe.String("model", in.Model, create)
	fe.String("serial_number", in.SerialNumber, create)
	if in.Customer != nil {
		if err := validation.Exists[models.Customer](ctx, db, fe, "customer", *in.Customer); err != nil {
			return err
		}
	}
	return fe.Err()
}

func (in *deviceInput) Build() *models.Device {
	return &models.Device{
		CustomerID:   deref(in.Customer),
		Brand:        str(in.Brand),
		Model:        str(in.Model),
		SerialNumber: str(in.SerialNumber),
		Specs:        deref(in.Specs),
	}
}

func (in *deviceInput) Changes() map[string]any {
	cols := map[string]any{}
	set(cols, "customer_id", in.Customer)
	setString(cols, "brand", in.Brand)
	setString(cols, "model", in.Model)
	setString(cols, "serial_number", in.SerialNumber)
	set(cols, "specs", in.Specs)
	return cols
}

func NewDeviceResource(db *gorm.DB) *Resource[models.Device, *deviceInput] {
	return NewResource(db, store.New[models.Device](db),
		func() *deviceInput { return new(deviceInput) })
}
