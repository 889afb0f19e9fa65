package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"jasa-service/internal/auth"
	"jasa-service/internal/middleware"
	"jasa-service/internal/models"
	"jasa-service/internal/validation"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	MsgRegistered      = "Selamat anda telah terdaftar..."
	MsgLoggedIn        = "Login berhasil."
	MsgEmptyLogin      = "Mohon isi nama pengguna dan kata sandi."
	MsgBadCredentials  = "Username atau password salah."
	MsgInactiveAccount = "Status pengguna tidak aktif."
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type accountView struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	IsActive       bool   `json:"is_active"`
	IsAdminService bool   `json:"is_admin_service"`
	IsTechnician   bool   `json:"is_technician"`
}

func newAccountView(a *models.Account) accountView {
	return accountView{
		ID:             a.ID,
		Username:       a.Username,
		Email:          a.Email,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		IsActive:       a.IsActive,
		IsAdminService: a.IsAdminService,
		IsTechnician:   a.IsTechnician,
	}
}

type registerPayload struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password1      string `json:"password1"`
	Password2      string `json:"password2"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	IsAdminService bool   `json:"is_admin_service"`
	IsTechnician   bool   `json:"is_technician"`
	IsActive       *bool  `json:"is_active"`
}

// Register is open to anyone. Role flags are only honoured when an admin
// token comes with the request.
func (h *AuthHandler) Register(c *gin.Context) {
	var form registerPayload
	if err := bindBody(c, &form); err != nil {
		registerFailed(c, err)
		return
	}
	if caller, ok := middleware.CurrentAccount(c); !ok || !caller.IsAdminService {
		form.IsAdminService, form.IsTechnician = false, false
	}

	account, token, err := h.svc.Register(c.Request.Context(), auth.RegisterRequest{
		Username:       form.Username,
		Email:          form.Email,
		Password1:      form.Password1,
		Password2:      form.Password2,
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		IsAdminService: form.IsAdminService,
		IsTechnician:   form.IsTechnician,
		IsActive:       form.IsActive,
	})
	if err != nil {
		registerFailed(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  http.StatusCreated,
		"message": MsgRegistered,
		"data":    newAccountView(account),
		"token":   token,
	})
}

func registerFailed(c *gin.Context, err error) {
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "data": fe})
		return
	}
	writeError(c, err)
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login also keeps the token in the session cookie so browser clients can
// skip the Authorization header.
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginPayload
	if err := bindBody(c, &form); err != nil {
		writeError(c, err)
		return
	}

	account, token, err := h.svc.Login(c.Request.Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		loginFailed(c, http.StatusBadRequest, MsgEmptyLogin)
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		loginFailed(c, http.StatusUnauthorized, MsgBadCredentials)
		return
	case errors.Is(err, auth.ErrInactiveAccount):
		loginFailed(c, http.StatusUnauthorized, MsgInactiveAccount)
		return
	case err != nil:
		writeError(c, err)
		return
	}

	if _, ok := c.Get(sessions.DefaultKey); ok {
		sess := sessions.Default(c)
		sess.Set(middleware.SessionTokenKey, token)
		if err := sess.Save(); err != nil {
			log.Printf("save session: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": MsgLoggedIn,
		"data": gin.H{
			"token":            token,
			"id":               account.ID,
			"first_name":       account.FirstName,
			"last_name":        account.LastName,
			"email":            account.Email,
			"is_active":        account.IsActive,
			"is_admin_service": account.IsAdminService,
			"is_technician":    account.IsTechnician,
		},
	})
}

func loginFailed(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"status": code, "message": msg})
}

// Logout drops the session; the bearer token itself stays valid.
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, ok := c.Get(sessions.DefaultKey); ok {
		sess := sessions.Default(c)
		sess.Clear()
		_ = sess.Save()
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "message": "Logout berhasil."})
}

func (h *AuthHandler) Me(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": middleware.MsgUnauthorized})
		return
	}
	c.JSON(http.StatusOK, newAccountView(account))
}

type accountPayload struct {
	FirstName      *string `json:"first_name" binding:"omitempty,max=150"`
	LastName       *string `json:"last_name" binding:"omitempty,max=150"`
	Email          *string `json:"email"`
	IsAdminService *bool   `json:"is_admin_service"`
	IsTechnician   *bool   `json:"is_technician"`
	IsActive       *bool   `json:"is_active"`
}

// UpdateAccount is the admin-only partial edit of another account's profile
// and role flags.
func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}
	var form accountPayload
	if err := bindBody(c, &form); err != nil {
		writeError(c, err)
		return
	}

	account, err := h.svc.UpdateAccount(c.Request.Context(), id, auth.AccountUpdate{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Email:          form.Email,
		IsAdminService: form.IsAdminService,
		IsTechnician:   form.IsTechnician,
		IsActive:       form.IsActive,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountView(account))
}

func bindBody(c *gin.Context, obj any) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	return validation.BindJSON(body, obj)
}
