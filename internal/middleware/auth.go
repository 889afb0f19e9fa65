package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"jasa-service/internal/auth"
	"jasa-service/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	// SessionTokenKey holds the token in the login session cookie.
	SessionTokenKey = "token"

	MsgUnauthorized = "Authentication credentials were not provided or are invalid."
	MsgForbidden    = "You do not have permission to perform this action."
)

type Authenticator interface {
	Authenticate(ctx context.Context, key string) (*models.Account, error)
}

// RequireAuth accepts "Authorization: Bearer <key>" or "Token <key>". Reads
// (GET, HEAD) may fall back to the token stored in the session cookie;
// writes always need the header.
func RequireAuth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := headerToken(c.GetHeader("Authorization"))
		if key == "" && safeMethod(c.Request.Method) {
			key = sessionToken(c)
		}

		account, err := a.Authenticate(c.Request.Context(), key)
		if err != nil {
			if !errors.Is(err, auth.ErrUnauthorized) {
				log.Printf("authenticate: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server."})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": MsgUnauthorized})
			return
		}

		c.Set(accountKey, account)
		c.Next()
	}
}

// OptionalAuth resolves a header token when one is sent and lets the request
// through either way. A bad token leaves the request anonymous.
func OptionalAuth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := headerToken(c.GetHeader("Authorization")); key != "" {
			if account, err := a.Authenticate(c.Request.Context(), key); err == nil {
				c.Set(accountKey, account)
			}
		}
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := CurrentAccount(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": MsgUnauthorized})
			return
		}
		if !account.IsAdminService {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": MsgForbidden})
			return
		}
		c.Next()
	}
}

func headerToken(h string) string {
	scheme, key, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok {
		return ""
	}
	switch strings.ToLower(scheme) {
	case "bearer", "token":
		return strings.TrimSpace(key)
	}
	return ""
}

func safeMethod(m string) bool {
	return m == http.MethodGet || m == http.MethodHead
}

func sessionToken(c *gin.Context) string {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return ""
	}
	key, _ := sessions.Default(c).Get(SessionTokenKey).(string)
	return key
}
