package handlers

import (
	"context"

	"jasa-service/internal/models"
	"jasa-service/internal/store"
	"jasa-service/internal/validation"

	"gorm.io/gorm"
)

type sparePartInput struct {
	Name             *string  `json:"name" binding:"omitempty,max=100"`
	CompatibleModels *string  `json:"compatible_models"`
	Price            *float64 `json:"price" binding:"omitempty,gte=0"`
}

func (in *sparePartInput) Validate(_ context.Context, _ *gorm.DB, current *models.SparePart) error {
	create := current == nil
	fe := validation.FieldErrors{}
	fe.String("name", in.Name, create)
	fe.Required("price", in.Price != nil, create)
	fe.Money("price", in.Price)
	return fe.Err()
}

func (in *sparePartInput) Build() *models.SparePart {
	return &models.SparePart{
		Name:             str(in.Name),
		CompatibleModels: deref(in.CompatibleModels),
		Price:            deref(in.Price),
	}
}

func (in *sparePartInput) Changes() map[string]any {
	cols := map[string]any{}
	setString(cols, "name", in.Name)
	set(cols, "compatible_models", in.CompatibleModels)
	set(cols, "price", in.Price)
	return cols
}

func NewSparePartResource(db *gorm.DB) *Resource[models.SparePart, *sparePartInput] {
	return NewResource(db, store.New[models.SparePart](db),
		func() *sparePartInput { return new(sparePartInput) })
}
