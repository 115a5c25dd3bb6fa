package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"finz-affiliate/internal/adapters/persistence/models"
	"finz-affiliate/internal/core/domain"
)

type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

// GetByID gets an admin by ID
func (r *adminUserRepository) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByUsername gets an admin by username
func (r *adminUserRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *adminUserRepository) first(ctx context.Context, query string, arg string) (*domain.AdminUser, error) {
	var row models.AdminUser
	err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdminUserNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// UpdatePassword replaces the stored password hash
func (r *adminUserRepository) UpdatePassword(ctx context.Context, id, hashed string) error {
	result := r.db.WithContext(ctx).Model(&models.AdminUser{}).Where("id = ?", id).Update("password", hashed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAdminUserNotFound
	}
	return nil
}
