package server

import (
	"net/http"

	"jasa-service/internal/auth"
	"jasa-service/internal/config"
	"jasa-service/internal/handlers"
	"jasa-service/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(cfg.TokenTTL.Seconds()),
		SameSite: http.SameSiteStrictMode,
	})
	r.Use(sessions.Sessions("jasa_session", store))

	authSvc := auth.NewService(db,
		auth.WithTokenTTL(cfg.TokenTTL),
		auth.WithPasswordPolicy(auth.DefaultPasswordPolicy(cfg.PasswordMinLength)),
	)
	authHandler := handlers.NewAuthHandler(authSvc)

	api := r.Group("/api")

	// AUTH
	api.POST("/register", middleware.OptionalAuth(authSvc), authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(authSvc))

	protected.GET("/me", authHandler.Me)

	// DATA MASTER & TRANSAKSI
	handlers.NewServiceDeviceResource(db).Routes(protected, "/service_devices")
	handlers.NewCustomerResource(db).Routes(protected, "/customers")
	handlers.NewTechnicianResource(db).Routes(protected, "/technicians")
	handlers.NewDeviceResource(db).Routes(protected, "/devices")
	handlers.NewOrderResource(db).Routes(protected, "/orders")
	handlers.NewServiceTypeResource(db).Routes(protected, "/service_types")
	handlers.NewSparePartResource(db).Routes(protected, "/spare_parts")
	handlers.NewInventoryResource(db).Routes(protected, "/inventories")
	handlers.NewPaymentResource(db).Routes(protected, "/payments")

	// ADMIN
	admin := protected.Group("")
	admin.Use(middleware.RequireAdmin())
	admin.PUT("/accounts/:id", authHandler.UpdateAccount)
	admin.PATCH("/accounts/:id", authHandler.UpdateAccount)
	admin.GET("/audit_logs", handlers.ListAuditLogs(db))

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
