package handlers

import (
	"context"
	"strconv"

	"jasa-service/internal/models"
	"jasa-service/internal/store"
	"jasa-service/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type paymentInput struct {
	OrderID *uint    `json:"order_id"`
	Amount  *float64 `json:"amount" binding:"omitempty,gte=0"`
	Method  *string  `json:"method"`
}

func (in *paymentInput) Validate(ctx context.Context, db *gorm.DB, current *models.Payment) error {
	create := current == nil
	fe := validation.FieldErrors{}
	fe.Required("order_id", in.OrderID != nil, create)
	fe.Required("amount", in.Amount != nil, create)
	fe.Money("amount", in.Amount)
	fe.Required("method", in.Method != nil, create)
	validation.Choice(fe, "method", in.Method, models.PaymentMethod.Valid)
	if in.OrderID != nil {
		if err := validation.Exists[models.Order](ctx, db, fe, "order_id", *in.OrderID); err != nil {
			return err
		}
	}
	return fe.Err()
}

func (in *paymentInput) Build() *models.Payment {
	return &models.Payment{
		OrderID: deref(in.OrderID),
		Amount:  deref(in.Amount),
		Method:  models.PaymentMethod(deref(in.Method)),
	}
}

func (in *paymentInput) Changes() map[string]any {
	cols := map[string]any{}
	set(cols, "order_id", in.OrderID)
	set(cols, "amount", in.Amount)
	set(cols, "method", in.Method)
	return cols
}

// paymentFilter: ?order_id=, ?method=. Latest payment first. A non-numeric
// order_id is ignored.
func paymentFilter(c *gin.Context) []store.Scope {
	scopes := []store.Scope{func(db *gorm.DB) *gorm.DB {
		return db.Order("paid_on desc").Order("id desc")
	}}
	if v, err := strconv.ParseUint(c.Query("order_id"), 10, 64); err == nil {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("order_id = ?", v)
		})
	}
	if v := c.Query("method"); v != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("method = ?", v)
		})
	}
	return scopes
}

func NewPaymentResource(db *gorm.DB) *Resource[models.Payment, *paymentInput] {
	preloads := make([]string, 0, len(orderPreloads)+1)
	preloads = append(preloads, "Order")
	for _, p := range orderPreloads {
		preloads = append(preloads, "Order."+p)
	}
	return NewResource(db,
		store.New[models.Payment](db, store.WithPreload(preloads...)),
		func() *paymentInput { return new(paymentInput) },
		WithPresenter[models.Payment, *paymentInput](presentPayment),
		WithFilter[models.Payment, *paymentInput](paymentFilter))
}
