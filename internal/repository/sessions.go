package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gopherit/internal/models"
)

// Session and reset-token rows are owned by the identity manager; the
// repository only moves them in and out of the store.

func (c *Content) CreateSession(ctx context.Context, userID uint, token string, expiresAt time.Time) error {
	session := models.Session{UserID: userID, Token: token, ExpiresAt: expiresAt}
	if err := c.db.WithContext(ctx).Create(&session).Error; err != nil {
		return storeErr("create session", err)
	}
	return nil
}

// SessionByToken returns (nil, nil) when no session matches.
func (c *Content) SessionByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := c.db.WithContext(ctx).Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find session by token", err)
	}
	return &session, nil
}

func (c *Content) DeleteSessionByToken(ctx context.Context, token string) error {
	err := c.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
	if err != nil {
		return storeErr("delete session", err)
	}
	return nil
}

func (c *Content) CreateResetToken(ctx context.Context, userID uint, token string, expiresAt time.Time) error {
	reset := models.PasswordResetToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	if err := c.db.WithContext(ctx).Create(&reset).Error; err != nil {
		return storeErr("create reset token", err)
	}
	return nil
}

// ResetTokenByValue returns (nil, nil) when no token matches.
func (c *Content) ResetTokenByValue(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	var reset models.PasswordResetToken
	err := c.db.WithContext(ctx).Where("token = ?", token).First(&reset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find reset token", err)
	}
	return &reset, nil
}

func (c *Content) DeleteResetToken(ctx context.Context, token string) error {
	err := c.db.WithContext(ctx).Where("token = ?", token).Delete(&models.PasswordResetToken{}).Error
	if err != nil {
		return storeErr("delete reset token", err)
	}
	return nil
}
