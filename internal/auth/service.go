// Package auth implements registration, login and bearer-token checks.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jasa-service/internal/models"
	"jasa-service/internal/store"
	"jasa-service/internal/validation"

	"gorm.io/gorm"
)

const (
	MsgPasswordMismatch = "Kata sandi dan Ulang kata sandi tidak sama."
	MsgUsernameTaken    = "A user with that username already exists."
)

type Service struct {
	db       *gorm.DB
	tokenTTL time.Duration
	policy   PasswordPolicy
	now      func() time.Time
}

type Option func(*Service)

func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Service) { s.tokenTTL = ttl }
}

func WithPasswordPolicy(p PasswordPolicy) Option {
	return func(s *Service) { s.policy = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(db *gorm.DB, opts ...Option) *Service {
	s := &Service{
		db:       db,
		tokenTTL: 30 * 24 * time.Hour,
		policy:   DefaultPasswordPolicy(8),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type RegisterRequest struct {
	Username       string
	Email          string
	Password1      string
	Password2      string
	FirstName      string
	LastName       string
	IsAdminService bool
	IsTechnician   bool
	IsActive       *bool
}

func (r *RegisterRequest) normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

// Register creates the account and its first token in one transaction.
// Validation failures come back as validation.FieldErrors and persist
// nothing.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.Account, string, error) {
	req.normalize()

	fe := validation.FieldErrors{}
	for _, f := range []struct{ name, value string }{
		{"username", req.Username},
		{"email", req.Email},
		{"password1", req.Password1},
		{"password2", req.Password2},
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
	} {
		if f.value == "" {
			fe.Add(f.name, validation.MsgRequired)
		}
	}
	if req.Email != "" && !validation.Email(req.Email) {
		fe.Add("email", validation.MsgEmail)
	}
	if len(req.Username) > 150 {
		fe.Add("username", "Ensure this field has no more than 150 characters.")
	}
	if req.Password1 != "" {
		for _, p := range s.policy(req.Password1, req.Username, req.Email, req.FirstName, req.LastName) {
			fe.Add("password1", p)
		}
	}
	if req.Password1 != "" && req.Password2 != "" && req.Password1 != req.Password2 {
		fe.Add("password", MsgPasswordMismatch)
	}
	if len(fe) > 0 {
		return nil, "", fe
	}

	hash, err := HashPassword(req.Password1)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	account := models.Account{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		IsAdminService: req.IsAdminService,
		IsTechnician:   req.IsTechnician,
		IsActive:       active,
	}

	var token string
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validation.Unique[models.Account](ctx, tx, fe, "username", "username", account.Username, 0, MsgUsernameTaken); err != nil {
			return err
		}
		if err := validation.Unique[models.Account](ctx, tx, fe, "email", "email", account.Email, 0, validation.MsgUnique); err != nil {
			return err
		}
		if len(fe) > 0 {
			return fe
		}
		if err := tx.Create(&account).Error; err != nil {
			if store.IsDuplicate(err) {
				fe.Add(validation.NonField, "A user with that username or email already exists.")
				return fe
			}
			return err
		}
		token, err = s.issueToken(tx, account.ID)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return &account, token, nil
}

// Login checks credentials and returns the account with a live token.
func (s *Service) Login(ctx context.Context, username, password string) (*models.Account, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	var account models.Account
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("load account: %w", err)
	}
	if !CheckPassword(account.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, "", ErrInactiveAccount
	}

	var token string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if token, err = s.issueToken(tx, account.ID); err != nil {
			return err
		}
		now := s.now()
		account.LastLogin = &now
		return tx.Model(&account).UpdateColumn("last_login", now).Error
	})
	if err != nil {
		return nil, "", err
	}
	return &account, token, nil
}

// AccountUpdate carries the administratively editable account fields. Nil
// means unchanged.
type AccountUpdate struct {
	FirstName      *string
	LastName       *string
	Email          *string
	IsAdminService *bool
	IsTechnician   *bool
	IsActive       *bool
}

// UpdateAccount applies a partial profile/role change. Deactivating an
// account revokes its tokens.
func (s *Service) UpdateAccount(ctx context.Context, id uint, upd AccountUpdate) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("load account: %w", err)
	}

	fe := validation.FieldErrors{}
	cols := map[string]any{}
	if upd.FirstName != nil {
		cols["first_name"] = strings.TrimSpace(*upd.FirstName)
	}
	if upd.LastName != nil {
		cols["last_name"] = strings.TrimSpace(*upd.LastName)
	}
	if upd.Email != nil {
		email := strings.TrimSpace(*upd.Email)
		if !validation.Email(email) {
			fe.Add("email", validation.MsgEmail)
		} else if err := validation.Unique[models.Account](ctx, s.db, fe, "email", "email", email, account.ID, validation.MsgUnique); err != nil {
			return nil, err
		}
		cols["email"] = email
	}
	if upd.IsAdminService != nil {
		cols["is_admin_service"] = *upd.IsAdminService
	}
	if upd.IsTechnician != nil {
		cols["is_technician"] = *upd.IsTechnician
	}
	if upd.IsActive != nil {
		cols["is_active"] = *upd.IsActive
	}
	if len(fe) > 0 {
		return nil, fe
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(cols) > 0 {
			if err := tx.Model(&account).Updates(cols).Error; err != nil {
				return err
			}
		}
		if upd.IsActive != nil && !*upd.IsActive {
			return revokeTokens(tx, account.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, fmt.Errorf("reload account: %w", err)
	}
	return &account, nil
}
