package handlers

import (
	"time"

	"jasa-service/internal/models"
)

// Read projections. Write payloads take scalar ids; reads expand the
// related rows inline and keep the ids next to them.

type technicianView struct {
	ID             uint                   `json:"id"`
	User           string                 `json:"user"`
	UserID         uint                   `json:"user_id"`
	Level          models.TechnicianLevel `json:"level"`
	Specialization string                 `json:"specialization"`
}

func newTechnicianView(t *models.Technician) *technicianView {
	if t == nil {
		return nil
	}
	v := &technicianView{
		ID:             t.ID,
		UserID:         t.UserID,
		Level:          t.Level,
		Specialization: t.Specialization,
	}
	if t.User != nil {
		v.User = t.User.FullName()
	}
	return v
}

func presentTechnician(t *models.Technician) any {
	return newTechnicianView(t)
}

type orderView struct {
	ID            uint                 `json:"id"`
	Customer      *models.Customer     `json:"customer"`
	CustomerID    uint                 `json:"customer_id"`
	Device        *models.Device       `json:"device"`
	DeviceID      uint                 `json:"device_id"`
	Technician    *technicianView      `json:"technician"`
	TechnicianID  *uint                `json:"technician_id"`
	ServiceType   *models.ServiceType  `json:"service_type"`
	ServiceTypeID uint                 `json:"service_type_id"`
	Status        models.OrderStatus   `json:"status"`
	Priority      models.OrderPriority `json:"priority"`
	CreatedOn     time.Time            `json:"created_on"`
	UpdatedOn     time.Time            `json:"updated_on"`
}

func newOrderView(o *models.Order) *orderView {
	if o == nil {
		return nil
	}
	return &orderView{
		ID:            o.ID,
		Customer:      o.Customer,
		CustomerID:    o.CustomerID,
		Device:        o.Device,
		DeviceID:      o.DeviceID,
		Technician:    newTechnicianView(o.Technician),
		TechnicianID:  o.TechnicianID,
		ServiceType:   o.ServiceType,
		ServiceTypeID: o.ServiceTypeID,
		Status:        o.Status,
		Priority:      o.Priority,
		CreatedOn:     o.CreatedOn,
		UpdatedOn:     o.UpdatedOn,
	}
}

func presentOrder(o *models.Order) any {
	return newOrderView(o)
}

type paymentView struct {
	ID      uint                 `json:"id"`
	Order   *orderView           `json:"order"`
	OrderID uint                 `json:"order_id"`
	Amount  float64              `json:"amount"`
	Method  models.PaymentMethod `json:"method"`
	PaidOn  time.Time            `json:"paid_on"`
}

func presentPayment(p *models.Payment) any {
	return &paymentView{
		ID:      p.ID,
		Order:   newOrderView(p.Order),
		OrderID: p.OrderID,
		Amount:  p.Amount,
		Method:  p.Method,
		PaidOn:  p.PaidOn,
	}
}

type inventoryView struct {
	ID                uint `json:"id"`
	SparePart         uint `json:"spare_part"`
	Stock             int  `json:"stock"`
	LowStockThreshold int  `json:"low_stock_threshold"`
	IsLowStock        bool `json:"is_low_stock"`
}

func presentInventory(i *models.Inventory) any {
	return &inventoryView{
		ID:                i.ID,
		SparePart:         i.SparePartID,
		Stock:             i.Stock,
		LowStockThreshold: i.LowStockThreshold,
		IsLowStock:        i.IsLowStock(),
	}
}
