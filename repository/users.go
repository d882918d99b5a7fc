package repository

import (
	"context"

	"github.com/BerniceZTT/crm_core/models"

	"gorm.io/gorm"
)

// FindUserByUsername looks an account up for login. Returns ErrNotFound
// when the username is unknown.
func FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
