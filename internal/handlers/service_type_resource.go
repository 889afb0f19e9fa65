package handlers

import (
	"context"

	"jasa-service/internal/models"
	"jasa-service/internal/store"
	"jasa-service/internal/validation"

	"gorm.io/gorm"
)

type serviceTypeInput struct {
	Name       *string  `json:"name" binding:"omitempty,max=100"`
	Category   *string  `json:"category"`
	Difficulty *string  `json:"difficulty"`
	Price      *float64 `json:"price" binding:"omitempty,gte=0"`
}

func (in *serviceTypeInput) Validate(_ context.Context, _ *gorm.DB, current *models.ServiceType) error {
	create := current == nil
	fe := validation.FieldErrors{}
	fe.String("name", in.Name, create)
	fe.Required("category", in.Category != nil, create)
	validation.Choice(fe, "category", in.Category, models.ServiceCategory.Valid)
	fe.Required("difficulty", in.Difficulty != nil, create)
	validation.Choice(fe, "difficulty", in.Difficulty, models.Difficulty.Valid)
	fe.Required("price", in.Price != nil, create)
	fe.Money("price", in.Price)
	return fe.Err()
}

func (in *serviceTypeInput) Build() *models.ServiceType {
	return &models.ServiceType{
		Name:       str(in.Name),
		Category:   models.ServiceCategory(deref(in.Category)),
		Difficulty: models.Difficulty(deref(in.Difficulty)),
		Price:      deref(in.Price),
	}
}

func (in *serviceTypeInput) Changes() map[string]any {
	cols := map[string]any{}
	setString(cols, "name", in.Name)
	set(cols, "category", in.Category)
	set(cols, "difficulty", in.Difficulty)
	set(cols, "price", in.Price)
	return cols
}

func NewServiceTypeResource(db *gorm.DB) *Resource[models.ServiceType, *serviceTypeInput] {
	return NewResource(db, store.New[models.ServiceType](db),
		func() *serviceTypeInput { return new(serviceTypeInput) })
}
