package repositories

import (
	"context"

	"finz-affiliate/internal/core/domain"
)

// LoanPackageRepository defines loan package repository interface
type LoanPackageRepository interface {
	List(ctx context.Context) ([]*domain.LoanPackage, error)
	GetByID(ctx context.Context, id string) (*domain.LoanPackage, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, pkg *domain.LoanPackage) error
	Save(ctx context.Context, pkg *domain.LoanPackage) error
	Delete(ctx context.Context, id string) error
}

// ConsultantRepository defines consultant repository interface
type ConsultantRepository interface {
	First(ctx context.Context) (*domain.Consultant, error)
	Upsert(ctx context.Context, c *domain.Consultant) error
}

// NavbarLinkRepository defines navbar link repository interface
type NavbarLinkRepository interface {
	List(ctx context.Context) ([]domain.NavbarLink, error)
	Create(ctx context.Context, link *domain.NavbarLink) error
	UpdateURL(ctx context.Context, id, url string) error
	Delete(ctx context.Context, id string) error
}

// AdminUserRepository defines admin user repository interface
type AdminUserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	UpdatePassword(ctx context.Context, id, hashed string) error
}

// TrackingRepository defines the event store. Rows are append-only
// apart from the admin Clear.
type TrackingRepository interface {
	InsertImpression(ctx context.Context, e *domain.OfferImpression) error
	InsertClick(ctx context.Context, e *domain.ClickTracking) error
	InsertBatch(ctx context.Context, impressions []domain.OfferImpression, clicks []domain.ClickTracking) error
	ListImpressions(ctx context.Context) ([]domain.OfferImpression, error)
	ListClicks(ctx context.Context) ([]domain.ClickTracking, error)
	PageImpressions(ctx context.Context, offset, limit int) ([]domain.OfferImpression, int64, error)
	PageClicks(ctx context.Context, offset, limit int) ([]domain.ClickTracking, int64, error)
	Clear(ctx context.Context) error
}
