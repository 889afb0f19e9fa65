package handlers

import (
	"context"

	"jasa-service/internal/models"
	"jasa-service/internal/store"
	"jasa-service/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const msgInventoryTaken = "inventory with this spare part already exists."

type inventoryInput struct {
	SparePart         *uint `json:"spare_part"`
	Stock             *int  `json:"stock" binding:"omitempty,gte=0"`
	LowStockThreshold *int  `json:"low_stock_threshold" binding:"omitempty,gte=0"`
}

func (in *inventoryInput) Validate(ctx context.Context, db *gorm.DB, current *models.Inventory) error {
	create := current == nil
	fe := validation.FieldErrors{}
	fe.Required("spare_part", in.SparePart != nil, create)
	fe.Required("stock", in.Stock != nil, create)

	if in.SparePart != nil {
		if err := validation.Exists[models.SparePart](ctx, db, fe, "spare_part", *in.SparePart); err != nil {
			return err
		}
		var except uint
		if current != nil {
			except = current.ID
		}
		if !fe.Has("spare_part") {
			if err := validation.Unique[models.Inventory](ctx, db, fe, "spare_part", "spare_part_id", *in.SparePart, except, msgInventoryTaken); err != nil {
				return err
			}
		}
	}
	return fe.Err()
}

func (in *inventoryInput) Build() *models.Inventory {
	inv := &models.Inventory{
		SparePartID:       deref(in.SparePart),
		Stock:             deref(in.Stock),
		LowStockThreshold: models.DefaultLowStockThreshold,
	}
	if in.LowStockThreshold != nil {
		inv.LowStockThreshold = *in.LowStockThreshold
	}
	return inv
}

func (in *inventoryInput) Changes() map[string]any {
	cols := map[string]any{}
	set(cols, "spare_part_id", in.SparePart)
	set(cols, "stock", in.Stock)
	set(cols, "low_stock_threshold", in.LowStockThreshold)
	return cols
}

// inventoryFilter: ?low_stock=true keeps rows at or under their threshold.
func inventoryFilter(c *gin.Context) []store.Scope {
	if c.Query("low_stock") != "true" {
		return nil
	}
	return []store.Scope{func(db *gorm.DB) *gorm.DB {
		return db.Where("stock <= low_stock_threshold")
	}}
}

func NewInventoryResource(db *gorm.DB) *Resource[models.Inventory, *inventoryInput] {
	return NewResource(db,
		store.New[models.Inventory](db, store.WithUnique("spare_part", msgInventoryTaken)),
		func() *inventoryInput { return new(inventoryInput) },
		WithPresenter[models.Inventory, *inventoryInput](presentInventory),
		WithFilter[models.Inventory, *inventoryInput](inventoryFilter))
}
