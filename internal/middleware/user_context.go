package middleware

import (
	"jasa-service/internal/models"

	"github.com/gin-gonic/gin"
)

const accountKey = "CurrentAccount"

// CurrentAccount returns the account RequireAuth resolved for this request.
func CurrentAccount(c *gin.Context) (*models.Account, bool) {
	v, ok := c.Get(accountKey)
	if !ok {
		return nil, false
	}
	account, ok := v.(*models.Account)
	return account, ok && account != nil
}

// CurrentAccountID is 0 for anonymous requests.
func CurrentAccountID(c *gin.Context) uint {
	if account, ok := CurrentAccount(c); ok {
		return account.ID
	}
	return 0
}
