package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"finz-affiliate/internal/adapters/persistence/models"
	"finz-affiliate/internal/core/domain"
)

// loanPackageRepository implements LoanPackageRepository interface
type loanPackageRepository struct {
	db *gorm.DB
}

// NewLoanPackageRepository creates a new loan package repository
func NewLoanPackageRepository(db *gorm.DB) LoanPackageRepository {
	return &loanPackageRepository{db: db}
}

// List returns all packages, oldest first
func (r *loanPackageRepository) List(ctx context.Context) ([]*domain.LoanPackage, error) {
	var rows []models.LoanPackage
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	pkgs := make([]*domain.LoanPackage, 0, len(rows))
	for i := range rows {
		pkgs = append(pkgs, rows[i].ToDomain())
	}
	return pkgs, nil
}

// GetByID gets a package by ID
func (r *loanPackageRepository) GetByID(ctx context.Context, id string) (*domain.LoanPackage, error) {
	var row models.LoanPackage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanPackageNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// Count returns the number of stored packages
func (r *loanPackageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LoanPackage{}).Count(&count).Error
	return count, err
}

// Create inserts a package and writes the assigned id back
func (r *loanPackageRepository) Create(ctx context.Context, pkg *domain.LoanPackage) error {
	row := models.LoanPackageFromDomain(pkg)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*pkg = *row.ToDomain()
	return nil
}

// Save inserts or fully replaces a package by id
func (r *loanPackageRepository) Save(ctx context.Context, pkg *domain.LoanPackage) error {
	if pkg.ID == "" {
		return r.Create(ctx, pkg)
	}

	var existing models.LoanPackage
	err := r.db.WithContext(ctx).Select("id", "created_at").Where("id = ?", pkg.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.Create(ctx, pkg)
	}
	if err != nil {
		return err
	}

	row := models.LoanPackageFromDomain(pkg)
	row.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return err
	}
	*pkg = *row.ToDomain()
	return nil
}

// Delete removes a package. Tracking rows referencing it are kept.
func (r *loanPackageRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.LoanPackage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLoanPackageNotFound
	}
	return nil
}
