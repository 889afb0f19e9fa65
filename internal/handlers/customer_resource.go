package handlers

import (
	"context"

	"jasa-service/internal/models"
	"jasa-service/internal/store"
	"jasa-service/internal/validation"

	"gorm.io/gorm"
)

type customerInput struct {
	Name         *string          `json:"name" binding:"omitempty,max=100"`
	CustomerType *string          `json:"customer_type"`
	Contact      *string          `json:"contact" binding:"omitempty,max=50"`
	Email        Nullable[string] `json:"email"`
	Address      Nullable[string] `json:"address"`
}

func (in *customerInput) Validate(_ context.Context, _ *gorm.DB, current *models.Customer) error {
	create := current == nil
	fe := validation.FieldErrors{}
	fe.String("name", in.Name, create)
	fe.Required("customer_type", in.CustomerType != nil, create)
	validation.Choice(fe, "customer_type", in.CustomerType, models.CustomerType.Valid)
	fe.String("contact", in.Contact, create)
	if v := in.Email.Value; v != nil && *v != "" && !validation.Email(*v) {
		fe.Add("email", validation.MsgEmail)
	}
	return fe.Err()
}

func (in *customerInput) Build() *models.Customer {
	return &models.Customer{
		Name:         str(in.Name),
		CustomerType: models.CustomerType(str(in.CustomerType)),
		Contact:      str(in.Contact),
		Email:        in.Email.Value,
		Address:      in.Address.Value,
	}
}

func (in *customerInput) Changes() map[string]any {
	cols := map[string]any{}
	setString(cols, "name", in.Name)
	setString(cols, "customer_type", in.CustomerType)
	setString(cols, "contact", in.Contact)
	if in.Email.Set {
		cols["email"] = in.Email.column()
	}
	if in.Address.Set {
		cols["address"] = in.Address.column()
	}
	return cols
}

func NewCustomerResource(db *gorm.DB) *Resource[models.Customer, *customerInput] {
	return NewResource(db, store.New[models.Customer](db),
		func() *customerInput { return new(customerInput) })
}
