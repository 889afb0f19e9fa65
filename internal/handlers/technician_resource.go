package handlers

import (
	"context"

	"jasa-service/internal/models"
	"jasa-service/internal/store"
	"jasa-service/internal/validation"

	"gorm.io/gorm"
)

const msgTechnicianTaken = "Technician with this user already exists."

type technicianInput struct {
	UserID         *uint   `json:"user_id"`
	Level          *string `json:"level"`
	Specialization *string `json:"specialization" binding:"omitempty,max=100"`
}

func (in *technicianInput) Validate(ctx context.Context, db *gorm.DB, current *models.Technician) error {
	create := current == nil
	fe := validation.FieldErrors{}
	fe.Required("user_id", in.UserID != nil, create)
	fe.Required("level", in.Level != nil, create)
	validation.Choice(fe, "level", in.Level, models.TechnicianLevel.Valid)
	fe.String("specialization", in.Specialization, create)

	if in.UserID != nil {
		if err := validation.Exists[models.Account](ctx, db, fe, "user_id", *in.UserID); err != nil {
			return err
		}
		var except uint
		if current != nil {
			except = current.ID
		}
		if !fe.Has("user_id") {
			if err := validation.Unique[models.Technician](ctx, db, fe, "user_id", "user_id", *in.UserID, except, msgTechnicianTaken); err != nil {
				return err
			}
		}
	}
	return fe.Err()
}

func (in *technicianInput) Build() *models.Technician {
	return &models.Technician{
		UserID:         deref(in.UserID),
		Level:          models.TechnicianLevel(deref(in.Level)),
		Specialization: str(in.Specialization),
	}
}

func (in *technicianInput) Changes() map[string]any {
	cols := map[string]any{}
	set(cols, "user_id", in.UserID)
	set(cols, "level", in.Level)
	setString(cols, "specialization", in.Specialization)
	return cols
}

func NewTechnicianResource(db *gorm.DB) *Resource[models.Technician, *technicianInput] {
	return NewResource(db,
		store.New[models.Technician](db,
			store.WithPreload("User"),
			store.WithUnique("user_id", msgTechnicianTaken)),
		func() *technicianInput { return new(technicianInput) },
		WithPresenter[models.Technician, *technicianInput](presentTechnician))
}
