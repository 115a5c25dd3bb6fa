package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"finz-affiliate/internal/core/domain"
)

var errStoreDown = errors.New("store unavailable")

func nopLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

// clock hands out strictly increasing creation times
type clock struct {
	mu   sync.Mutex
	next time.Time
}

func newClock() *clock {
	return &clock{next: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *clock) tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = c.next.Add(time.Second)
	return c.next
}

// ---- loan packages ----

type fakePackageRepo struct {
	clock *clock
	seq   int
	rows  map[string]*domain.LoanPackage
	fail  bool
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{clock: newClock(), rows: map[string]*domain.LoanPackage{}}
}

func (f *fakePackageRepo) List(ctx context.Context) ([]*domain.LoanPackage, error) {
	if f.fail {
		return nil, errStoreDown
	}
	out := make([]*domain.LoanPackage, 0, len(f.rows))
	for _, p := range f.rows {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePackageRepo) GetByID(ctx context.Context, id string) (*domain.LoanPackage, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrLoanPackageNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePackageRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakePackageRepo) Create(ctx context.Context, pkg *domain.LoanPackage) error {
	if f.fail {
		return errStoreDown
	}
	if pkg.ID == "" {
		f.seq++
		pkg.ID = fmt.Sprintf("pkg-%d", f.seq)
	}
	pkg.CreatedAt = f.clock.tick()
	cp := *pkg
	f.rows[pkg.ID] = &cp
	return nil
}

func (f *fakePackageRepo) Save(ctx context.Context, pkg *domain.LoanPackage) error {
	existing, ok := f.rows[pkg.ID]
	if pkg.ID == "" || !ok {
		return f.Create(ctx, pkg)
	}
	pkg.CreatedAt = existing.CreatedAt
	cp := *pkg
	f.rows[pkg.ID] = &cp
	return nil
}

func (f *fakePackageRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return domain.ErrLoanPackageNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakePackageRepo) seed(names ...string) {
	for _, n := range names {
		_ = f.Create(context.Background(), &domain.LoanPackage{Name: n})
	}
}

// ---- consultant ----

type fakeConsultantRepo struct {
	rows    []*domain.Consultant
	upserts int
}

func (f *fakeConsultantRepo) First(ctx context.Context) (*domain.Consultant, error) {
	if len(f.rows) == 0 {
		return nil, domain.ErrConsultantNotFound
	}
	cp := *f.rows[0]
	return &cp, nil
}

func (f *fakeConsultantRepo) Upsert(ctx context.Context, c *domain.Consultant) error {
	f.upserts++
	for i, row := range f.rows {
		if c.ID != "" && row.ID == c.ID {
			cp := *c
			f.rows[i] = &cp
			return nil
		}
	}
	if c.ID == "" {
		c.ID = fmt.Sprintf("consultant-%d", len(f.rows)+1)
	}
	cp := *c
	f.rows = append(f.rows, &cp)
	return nil
}

// ---- navbar links ----

type fakeNavbarRepo struct {
	clock *clock
	seq   int
	rows  []domain.NavbarLink
	fail  bool
}

func newFakeNavbarRepo(links ...domain.NavbarLink) *fakeNavbarRepo {
	f := &fakeNavbarRepo{clock: newClock()}
	for _, l := range links {
		l := l
		_ = f.Create(context.Background(), &l)
	}
	return f
}

func (f *fakeNavbarRepo) List(ctx context.Context) ([]domain.NavbarLink, error) {
	if f.fail {
		return nil, errStoreDown
	}
	out := make([]domain.NavbarLink, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeNavbarRepo) Create(ctx context.Context, link *domain.NavbarLink) error {
	f.seq++
	link.ID = fmt.Sprintf("nav-%d", f.seq)
	link.CreatedAt = f.clock.tick()
	f.rows = append(f.rows, *link)
	return nil
}

func (f *fakeNavbarRepo) UpdateURL(ctx context.Context, id, url string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].URL = url
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNavbarRepo) Delete(ctx context.Context, id string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ---- admin users ----

type fakeAdminRepo struct {
	users map[string]*domain.AdminUser
}

func newFakeAdminRepo(users ...*domain.AdminUser) *fakeAdminRepo {
	f := &fakeAdminRepo{users: map[string]*domain.AdminUser{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrAdminUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrAdminUserNotFound
}

func (f *fakeAdminRepo) UpdatePassword(ctx context.Context, id, hashed string) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrAdminUserNotFound
	}
	u.Password = hashed
	return nil
}

// ---- tracking events ----

type fakeTrackingRepo struct {
	mu          sync.Mutex
	clock       *clock
	failReads   bool
	impressions []domain.OfferImpression
	clicks      []domain.ClickTracking
	names       map[string]string // offer id -> package name for the join
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{clock: newClock(), names: map[string]string{}}
}

func (f *fakeTrackingRepo) InsertImpression(ctx context.Context, e *domain.OfferImpression) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.CreatedAt = f.clock.tick()
	f.impressions = append(f.impressions, *e)
	return nil
}

func (f *fakeTrackingRepo) InsertClick(ctx context.Context, e *domain.ClickTracking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.CreatedAt = f.clock.tick()
	f.clicks = append(f.clicks, *e)
	return nil
}

func (f *fakeTrackingRepo) InsertBatch(ctx context.Context, impressions []domain.OfferImpression, clicks []domain.ClickTracking) error {
	for i := range impressions {
		_ = f.InsertImpression(ctx, &impressions[i])
	}
	for i := range clicks {
		_ = f.InsertClick(ctx, &clicks[i])
	}
	return nil
}

func (f *fakeTrackingRepo) join(offerID string) *domain.OfferRef {
	if name, ok := f.names[offerID]; ok {
		return &domain.OfferRef{ID: offerID, Name: name}
	}
	return nil
}

func (f *fakeTrackingRepo) ListImpressions(ctx context.Context) ([]domain.OfferImpression, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return nil, errStoreDown
	}
	out := make([]domain.OfferImpression, 0, len(f.impressions))
	for i := len(f.impressions) - 1; i >= 0; i-- {
		e := f.impressions[i]
		e.Offer = f.join(e.OfferID)
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeTrackingRepo) ListClicks(ctx context.Context) ([]domain.ClickTracking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return nil, errStoreDown
	}
	out := make([]domain.ClickTracking, 0, len(f.clicks))
	for i := len(f.clicks) - 1; i >= 0; i-- {
		e := f.clicks[i]
		e.Offer = f.join(e.OfferID)
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeTrackingRepo) PageImpressions(ctx context.Context, offset, limit int) ([]domain.OfferImpression, int64, error) {
	all, err := f.ListImpressions(ctx)
	if err != nil {
		return nil, 0, err
	}
	return window(all, offset, limit), int64(len(all)), nil
}

func (f *fakeTrackingRepo) PageClicks(ctx context.Context, offset, limit int) ([]domain.ClickTracking, int64, error) {
	all, err := f.ListClicks(ctx)
	if err != nil {
		return nil, 0, err
	}
	return window(all, offset, limit), int64(len(all)), nil
}

func (f *fakeTrackingRepo) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.impressions = nil
	f.clicks = nil
	return nil
}

func window[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}
