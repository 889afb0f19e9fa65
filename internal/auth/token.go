package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jasa-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewTokenKey mints an opaque token key.
func NewTokenKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// issueToken returns the account's live token, replacing it if expired.
func (s *Service) issueToken(tx *gorm.DB, accountID uint) (string, error) {
	var tok models.AuthToken
	err := tx.Where("account_id = ?", accountID).First(&tok).Error
	switch {
	case err == nil:
		if !tok.Expired(s.tokenTTL, s.now()) {
			return tok.Key, nil
		}
		if err := tx.Delete(&tok).Error; err != nil {
			return "", fmt.Errorf("drop expired token: %w", err)
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return "", fmt.Errorf("load token: %w", err)
	}

	tok = models.AuthToken{
		Key:       NewTokenKey(),
		AccountID: accountID,
		CreatedAt: s.now(),
	}
	if err := tx.Create(&tok).Error; err != nil {
		return "", fmt.Errorf("create token: %w", err)
	}
	return tok.Key, nil
}

// Authenticate resolves a bearer key to its active account.
func (s *Service) Authenticate(ctx context.Context, key string) (*models.Account, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrUnauthorized
	}

	var tok models.AuthToken
	if err := s.db.WithContext(ctx).Preload("Account").Where(&models.AuthToken{Key: key}).First(&tok).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("load token: %w", err)
	}
	if tok.Expired(s.tokenTTL, s.now()) {
		_ = s.db.WithContext(ctx).Delete(&tok).Error
		return nil, ErrUnauthorized
	}
	if tok.Account == nil || !tok.Account.IsActive {
		return nil, ErrUnauthorized
	}
	return tok.Account, nil
}

// revokeTokens drops every token held by the account.
func revokeTokens(tx *gorm.DB, accountID uint) error {
	return tx.Where("account_id = ?", accountID).Delete(&models.AuthToken{}).Error
}
