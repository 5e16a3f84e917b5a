package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gopherit/internal/apperr"
	"gopherit/internal/models"
)

// CreateUser inserts a user row and returns its id. The password must
// already be hashed by the identity manager; the repository never sees
// plaintext.
func (c *Content) CreateUser(ctx context.Context, username, hashedPassword, email string) (uint, error) {
	user := models.User{Username: username, Password: hashedPassword, Email: email}
	if err := c.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperr.Wrap(apperr.CodeDuplicateUser, "a user with this username or email already exists", err)
		}
		return 0, storeErr("create user", err)
	}
	return user.ID, nil
}

// UserByUsername returns (nil, nil) when no user matches.
func (c *Content) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := c.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find user by username", err)
	}
	return &user, nil
}

// UserByEmail returns (nil, nil) when no user matches.
func (c *Content) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := c.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find user by email", err)
	}
	return &user, nil
}

// UserByID returns (nil, nil) when no user matches.
func (c *Content) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := c.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find user by id", err)
	}
	return &user, nil
}

// UpdatePassword overwrites the stored hash for a user.
func (c *Content) UpdatePassword(ctx context.Context, userID uint, hashedPassword string) error {
	err := c.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Update("password", hashedPassword).Error
	if err != nil {
		return storeErr("update password", err)
	}
	return nil
}
