package handlers

import (
	"context"
	"strings"

	"jasa-service/internal/models"
	"jasa-service/internal/store"
	"jasa-service/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type serviceDeviceInput struct {
	Code              *string `json:"code" binding:"omitempty,max=20"`
	CustomerName      *string `json:"customer_name" binding:"omitempty,max=100"`
	DeviceType        *string `json:"device_type" binding:"omitempty,max=50"`
	Brand             *string `json:"brand" binding:"omitempty,max=50"`
	DamageDescription *string `json:"damage_description"`
	ServiceStatus     *string `json:"service_status"`
	Status            *string `json:"status"`

	account uint
}

func (in *serviceDeviceInput) Validate(_ context.Context, _ *gorm.DB, current *models.ServiceDevice) error {
	create := current == nil
	fe := validation.FieldErrors{}
	fe.String("code", in.Code, create)
	fe.String("customer_name", in.CustomerName, create)
	fe.String("device_type", in.DeviceType, create)
	fe.String("brand", in.Brand, create)
	fe.String("damage_description", in.DamageDescription, create)
	validation.Choice(fe, "service_status", in.ServiceStatus, models.ServiceStatus.Valid)
	validation.Choice(fe, "status", in.Status, models.RecordStatus.Valid)
	return fe.Err()
}

// Stamp records the caller. Build uses it as creator and last editor,
// Changes as last editor only.
func (in *serviceDeviceInput) Stamp(accountID uint) {
	in.account = accountID
}

func (in *serviceDeviceInput) Build() *models.ServiceDevice {
	sd := &models.ServiceDevice{
		Code:              str(in.Code),
		CustomerName:      str(in.CustomerName),
		DeviceType:        str(in.DeviceType),
		Brand:             str(in.Brand),
		DamageDescription: str(in.DamageDescription),
		ServiceStatus:     models.ServiceIn,
		Status:            models.StatusActive,
	}
	if in.ServiceStatus != nil {
		sd.ServiceStatus = models.ServiceStatus(*in.ServiceStatus)
	}
	if in.Status != nil {
		sd.Status = models.RecordStatus(*in.Status)
	}
	if in.account != 0 {
		id := in.account
		sd.UserCreateID, sd.UserUpdateID = &id, &id
	}
	return sd
}

func (in *serviceDeviceInput) Changes() map[string]any {
	cols := map[string]any{}
	setString(cols, "code", in.Code)
	setString(cols, "customer_name", in.CustomerName)
	setString(cols, "device_type", in.DeviceType)
	setString(cols, "brand", in.Brand)
	setString(cols, "damage_description", in.DamageDescription)
	set(cols, "service_status", in.ServiceStatus)
	set(cols, "status", in.Status)
	if in.account != 0 && len(cols) > 0 {
		cols["user_update_id"] = in.account
	}
	return cols
}

// serviceDeviceFilter: ?service_status=, ?status=, ?q= (code, customer
// name or brand). Newest first.
func serviceDeviceFilter(c *gin.Context) []store.Scope {
	scopes := []store.Scope{func(db *gorm.DB) *gorm.DB {
		return db.Order("created_on desc").Order("id desc")
	}}
	if v := c.Query("service_status"); v != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("service_status = ?", v)
		})
	}
	if v := c.Query("status"); v != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", v)
		})
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(code) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(brand) LIKE ?", like, like, like)
		})
	}
	return scopes
}

func NewServiceDeviceResource(db *gorm.DB) *Resource[models.ServiceDevice, *serviceDeviceInput] {
	return NewResource(db, store.New[models.ServiceDevice](db),
		func() *serviceDeviceInput { return new(serviceDeviceInput) },
		WithFilter[models.ServiceDevice, *serviceDeviceInput](serviceDeviceFilter))
}
