package database

import (
	"context"
	"log"

	"jasa-service/internal/models"

	"gorm.io/gorm"
)

// CreateAuditLog appends to the audit trail. A failed write is logged and
// never fails the request that triggered it.
func CreateAuditLog(ctx context.Context, db *gorm.DB, accountID uint, entity string, entityID uint, action, details string) {
	if db == nil || accountID == 0 {
		return
	}
	record := models.AuditLog{
		AccountID: accountID,
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		Details:   details,
	}
	if err := db.WithContext(ctx).Create(&record).Error; err != nil {
		log.Printf("audit log %s %s #%d: %v", action, entity, entityID, err)
	}
}
