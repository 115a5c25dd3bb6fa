package repositories

import (
	"context"

	"gorm.io/gorm"

	"finz-affiliate/internal/adapters/persistence/models"
	"finz-affiliate/internal/core/domain"
)

// trackingRepository stores impression and click events
type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository creates a new tracking repository
func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

// InsertImpression appends one impression row
func (r *trackingRepository) InsertImpression(ctx context.Context, e *domain.OfferImpression) error {
	row := models.OfferImpressionFromDomain(e)
	if err := r.db.WithContext(ctx).Omit("LoanPackage").Create(row).Error; err != nil {
		return err
	}
	e.ID, e.CreatedAt = row.ID, row.CreatedAt
	return nil
}

// InsertClick appends one click row
func (r *trackingRepository) InsertClick(ctx context.Context, e *domain.ClickTracking) error {
	row := models.ClickTrackingFromDomain(e)
	if err := r.db.WithContext(ctx).Omit("LoanPackage").Create(row).Error; err != nil {
		return err
	}
	e.ID, e.CreatedAt = row.ID, row.CreatedAt
	return nil
}

// InsertBatch writes both event sets in one transaction
func (r *trackingRepository) InsertBatch(ctx context.Context, impressions []domain.OfferImpression, clicks []domain.ClickTracking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(impressions) > 0 {
			rows := make([]*models.OfferImpression, 0, len(impressions))
			for i := range impressions {
				rows = append(rows, models.OfferImpressionFromDomain(&impressions[i]))
			}
			if err := tx.Omit("LoanPackage").Create(&rows).Error; err != nil {
				return err
			}
		}

		if len(clicks) > 0 {
			rows := make([]*models.ClickTracking, 0, len(clicks))
			for i := range clicks {
				rows = append(rows, models.ClickTrackingFromDomain(&clicks[i]))
			}
			if err := tx.Omit("LoanPackage").Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListImpressions returns every impression, newest first, joined to its package
func (r *trackingRepository) ListImpressions(ctx context.Context) ([]domain.OfferImpression, error) {
	var rows []models.OfferImpression
	err := r.db.WithContext(ctx).
		Preload("LoanPackage").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return impressionsToDomain(rows), nil
}

// ListClicks returns every click, newest first, joined to its package
func (r *trackingRepository) ListClicks(ctx context.Context) ([]domain.ClickTracking, error) {
	var rows []models.ClickTracking
	err := r.db.WithContext(ctx).
		Preload("LoanPackage").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return clicksToDomain(rows), nil
}

// PageImpressions lists impressions with pagination
func (r *trackingRepository) PageImpressions(ctx context.Context, offset, limit int) ([]domain.OfferImpression, int64, error) {
	var rows []models.OfferImpression
	var total int64

	db := r.db.WithContext(ctx).Model(&models.OfferImpression{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("LoanPackage").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return impressionsToDomain(rows), total, nil
}

// PageClicks lists clicks with pagination
func (r *trackingRepository) PageClicks(ctx context.Context, offset, limit int) ([]domain.ClickTracking, int64, error) {
	var rows []models.ClickTracking
	var total int64

	db := r.db.WithContext(ctx).Model(&models.ClickTracking{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("LoanPackage").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return clicksToDomain(rows), total, nil
}

// Clear deletes every event row
func (r *trackingRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.OfferImpression{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ClickTracking{}).Error
	})
}

func impressionsToDomain(rows []models.OfferImpression) []domain.OfferImpression {
	out := make([]domain.OfferImpression, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out
}

func clicksToDomain(rows []models.ClickTracking) []domain.ClickTracking {
	out := make([]domain.ClickTracking, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out
}
