package handlers

import (
	"net/http"
	"strconv"
	"time"

	"jasa-service/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const auditPageSize = 200

type auditView struct {
	ID        uint   `json:"id"`
	CreatedAt string `json:"created_at"`
	AccountID uint   `json:"account_id"`
	Username  string `json:"username"`
	Entity    string `json:"entity"`
	EntityID  uint   `json:"entity_id"`
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
}

// ListAuditLogs returns the latest entries, optionally narrowed by
// ?entity= and ?entity_id=.
func ListAuditLogs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.WithContext(c.Request.Context()).
			Preload("Account").
			Order("created_at desc").
			Order("id desc").
			Limit(auditPageSize)
		if v := c.Query("entity"); v != "" {
			q = q.Where("entity = ?", v)
		}
		if v, err := strconv.ParseUint(c.Query("entity_id"), 10, 64); err == nil {
			q = q.Where("entity_id = ?", v)
		}

		var logs []models.AuditLog
		if err := q.Find(&logs).Error; err != nil {
			writeError(c, err)
			return
		}

		out := make([]auditView, 0, len(logs))
		for _, l := range logs {
			v := auditView{
				ID:        l.ID,
				CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
				AccountID: l.AccountID,
				Entity:    l.Entity,
				EntityID:  l.EntityID,
				Action:    l.Action,
				Details:   l.Details,
			}
			if l.Account != nil {
				v.Username = l.Account.Username
			}
			out = append(out, v)
		}
		c.JSON(http.StatusOK, out)
	}
}
