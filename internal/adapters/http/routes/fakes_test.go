package routes

import (
	"context"
	"fmt"
	"sync"

	"finz-affiliate/internal/core/domain"
)

type memPackages struct {
	rows []*domain.LoanPackage
}

func (m *memPackages) List(ctx context.Context) ([]*domain.LoanPackage, error) {
	return m.rows, nil
}

func (m *memPackages) GetByID(ctx context.Context, id string) (*domain.LoanPackage, error) {
	for _, p := range m.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrLoanPackageNotFound
}

func (m *memPackages) Count(ctx context.Context) (int64, error) {
	return int64(len(m.rows)), nil
}

func (m *memPackages) Create(ctx context.Context, pkg *domain.LoanPackage) error {
	pkg.ID = fmt.Sprintf("pkg-%d", len(m.rows)+1)
	m.rows = append(m.rows, pkg)
	return nil
}

func (m *memPackages) Save(ctx context.Context, pkg *domain.LoanPackage) error {
	for i, p := range m.rows {
		if p.ID == pkg.ID {
			m.rows[i] = pkg
			return nil
		}
	}
	return m.Create(ctx, pkg)
}

func (m *memPackages) Delete(ctx context.Context, id string) error {
	for i, p := range m.rows {
		if p.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrLoanPackageNotFound
}

type memConsultants struct {
	row *domain.Consultant
}

func (m *memConsultants) First(ctx context.Context) (*domain.Consultant, error) {
	if m.row == nil {
		return nil, domain.ErrConsultantNotFound
	}
	return m.row, nil
}

func (m *memConsultants) Upsert(ctx context.Context, c *domain.Consultant) error {
	if c.ID == "" {
		c.ID = "consultant-1"
	}
	m.row = c
	return nil
}

type memNavbar struct {
	rows []domain.NavbarLink
}

func (m *memNavbar) List(ctx context.Context) ([]domain.NavbarLink, error) {
	return append([]domain.NavbarLink(nil), m.rows...), nil
}

func (m *memNavbar) Create(ctx context.Context, link *domain.NavbarLink) error {
	link.ID = fmt.Sprintf("nav-%d", len(m.rows)+1)
	m.rows = append(m.rows, *link)
	return nil
}

func (m *memNavbar) UpdateURL(ctx context.Context, id, url string) error {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].URL = url
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memNavbar) Delete(ctx context.Context, id string) error {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type memAdmins struct {
	users []*domain.AdminUser
}

func (m *memAdmins) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrAdminUserNotFound
}

func (m *memAdmins) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrAdminUserNotFound
}

func (m *memAdmins) UpdatePassword(ctx context.Context, id, hashed string) error {
	u, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

type memEvents struct {
	mu          sync.Mutex
	impressions []domain.OfferImpression
	clicks      []domain.ClickTracking
}

func (m *memEvents) InsertImpression(ctx context.Context, e *domain.OfferImpression) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.impressions = append(m.impressions, *e)
	return nil
}

func (m *memEvents) InsertClick(ctx context.Context, e *domain.ClickTracking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clicks = append(m.clicks, *e)
	return nil
}

func (m *memEvents) InsertBatch(ctx context.Context, impressions []domain.OfferImpression, clicks []domain.ClickTracking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.impressions = append(m.impressions, impressions...)
	m.clicks = append(m.clicks, clicks...)
	return nil
}

func (m *memEvents) ListImpressions(ctx context.Context) ([]domain.OfferImpression, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.OfferImpression(nil), m.impressions...), nil
}

func (m *memEvents) ListClicks(ctx context.Context) ([]domain.ClickTracking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ClickTracking(nil), m.clicks...), nil
}

func (m *memEvents) PageImpressions(ctx context.Context, offset, limit int) ([]domain.OfferImpression, int64, error) {
	rows, _ := m.ListImpressions(ctx)
	return rows, int64(len(rows)), nil
}

func (m *memEvents) PageClicks(ctx context.Context, offset, limit int) ([]domain.ClickTracking, int64, error) {
	rows, _ := m.ListClicks(ctx)
	return rows, int64(len(rows)), nil
}

func (m *memEvents) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.impressions, m.clicks = nil, nil
	return nil
}
