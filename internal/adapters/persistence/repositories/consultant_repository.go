package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"finz-affiliate/internal/adapters/persistence/models"
	"finz-affiliate/internal/core/domain"
)

type consultantRepository struct {
	db *gorm.DB
}

// NewConsultantRepository creates a new consultant repository
func NewConsultantRepository(db *gorm.DB) ConsultantRepository {
	return &consultantRepository{db: db}
}

// First returns the oldest consultant row
func (r *consultantRepository) First(ctx context.Context) (*domain.Consultant, error) {
	var row models.Consultant
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConsultantNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// Upsert inserts the profile or replaces the row with the same id
func (r *consultantRepository) Upsert(ctx context.Context, c *domain.Consultant) error {
	row := models.ConsultantFromDomain(c)
	db := r.db.WithContext(ctx)

	if row.ID != "" {
		var existing models.Consultant
		err := db.Select("id", "created_at").Where("id = ?", row.ID).First(&existing).Error
		switch {
		case err == nil:
			row.CreatedAt = existing.CreatedAt
			if err := db.Save(row).Error; err != nil {
				return err
			}
			*c = *row.ToDomain()
			return nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
	}

	if err := db.Create(row).Error; err != nil {
		return err
	}
	*c = *row.ToDomain()
	return nil
}
