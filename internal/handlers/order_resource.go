package handlers

import (
	"context"

	"jasa-service/internal/models"
	"jasa-service/internal/store"
	"jasa-service/internal/validation"

	"gorm.io/gorm"
)

type orderInput struct {
	CustomerID    *uint          `json:"customer_id"`
	DeviceID      *uint          `json:"device_id"`
	TechnicianID  Nullable[uint] `json:"technician_id"`
	ServiceTypeID *uint          `json:"service_type_id"`
	Status        *string        `json:"status"`
	Priority      *string        `json:"priority"`
}

func (in *orderInput) Validate(ctx context.Context, db *gorm.DB, current *models.Order) error {
	create := current == nil
	fe := validation.FieldErrors{}
	fe.Required("customer_id", in.CustomerID != nil, create)
	fe.Required("device_id", in.DeviceID != nil, create)
	fe.Required("service_type_id", in.ServiceTypeID != nil, create)
	validation.Choice(fe, "status", in.Status, models.OrderStatus.Valid)
	validation.Choice(fe, "priority", in.Priority, models.OrderPriority.Valid)

	refs := []struct {
		field string
		id    *uint
		check func(context.Context, *gorm.DB, validation.FieldErrors, string, uint) error
	}{
		{"customer_id", in.CustomerID, validation.Exists[models.Customer]},
		{"device_id", in.DeviceID, validation.Exists[models.Device]},
		{"technician_id", in.TechnicianID.Value, validation.Exists[models.Technician]},
		{"service_type_id", in.ServiceTypeID, validation.Exists[models.ServiceType]},
	}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		if err := ref.check(ctx, db, fe, ref.field, *ref.id); err != nil {
			return err
		}
	}
	return fe.Err()
}

func (in *orderInput) Build() *models.Order {
	o := &models.Order{
		CustomerID:    deref(in.CustomerID),
		DeviceID:      deref(in.DeviceID),
		TechnicianID:  in.TechnicianID.Value,
		ServiceTypeID: deref(in.ServiceTypeID),
		Status:        models.OrderPending,
		Priority:      models.PriorityNormal,
	}
	if in.Status != nil {
		o.Status = models.OrderStatus(*in.Status)
	}
	if in.Priority != nil {
		o.Priority = models.OrderPriority(*in.Priority)
	}
	return o
}

func (in *orderInput) Changes() map[string]any {
	cols := map[string]any{}
	set(cols, "customer_id", in.CustomerID)
	set(cols, "device_id", in.DeviceID)
	if in.TechnicianID.Set {
		cols["technician_id"] = in.TechnicianID.column()
	}
	set(cols, "service_type_id", in.ServiceTypeID)
	set(cols, "status", in.Status)
	set(cols, "priority", in.Priority)
	return cols
}

var orderPreloads = []string{"Customer", "Device", "Technician.User", "ServiceType"}

func NewOrderResource(db *gorm.DB) *Resource[models.Order, *orderInput] {
	return NewResource(db,
		store.New[models.Order](db, store.WithPreload(orderPreloads...)),
		func() *orderInput { return new(orderInput) },
		WithPresenter[models.Order, *orderInput](presentOrder))
}
