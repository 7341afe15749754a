package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wiliafri0-dotcom/sayursegar02/models"
)

// AdminRepository looks up administrator credentials. A lookup that matches
// nothing returns (nil, nil); an error always means the store failed.
type AdminRepository interface {
	FindByCredentials(ctx context.Context, username, password string) (*models.AdminCredential, error)
	FindByUsername(ctx context.Context, username string) (*models.AdminCredential, error)
}

type GormAdminRepository struct {
	db *gorm.DB
}

func NewGormAdminRepository(db *gorm.DB) AdminRepository {
	return &GormAdminRepository{db: db}
}

// FindByCredentials matches username and password exactly, jointly.
func (r *GormAdminRepository) FindByCredentials(ctx context.Context, username, password string) (*models.AdminCredential, error) {
	return r.first(r.db.WithContext(ctx).Where("username = ? AND password = ?", username, password))
}

func (r *GormAdminRepository) FindByUsername(ctx context.Context, username string) (*models.AdminCredential, error) {
	return r.first(r.db.WithContext(ctx).Where("username = ?", username))
}

func (r *GormAdminRepository) first(query *gorm.DB) (*models.AdminCredential, error) {
	var admin models.AdminCredential
	err := query.First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
