package repositories

import (
	"context"

	"gorm.io/gorm"

	"finz-affiliate/internal/adapters/persistence/models"
	"finz-affiliate/internal/core/domain"
)

type navbarLinkRepository struct {
	db *gorm.DB
}

// NewNavbarLinkRepository creates a new navbar link repository
func NewNavbarLinkRepository(db *gorm.DB) NavbarLinkRepository {
	return &navbarLinkRepository{db: db}
}

// List returns all rows in insertion order
func (r *navbarLinkRepository) List(ctx context.Context) ([]domain.NavbarLink, error) {
	var rows []models.NavbarLink
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	links := make([]domain.NavbarLink, 0, len(rows))
	for i := range rows {
		links = append(links, rows[i].ToDomain())
	}
	return links, nil
}

func (r *navbarLinkRepository) Create(ctx context.Context, link *domain.NavbarLink) error {
	row := &models.NavbarLink{ID: link.ID, Title: link.Title, URL: link.URL}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*link = row.ToDomain()
	return nil
}

func (r *navbarLinkRepository) UpdateURL(ctx context.Context, id, url string) error {
	result := r.db.WithContext(ctx).Model(&models.NavbarLink{}).Where("id = ?", id).Update("url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *navbarLinkRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.NavbarLink{}).Error
}
