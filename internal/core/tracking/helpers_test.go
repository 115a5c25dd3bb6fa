package tracking

import (
	"context"
	"errors"
	"sync"

	"finz-affiliate/internal/core/domain"
)

var errStoreDown = errors.New("store unavailable")

type memEventStore struct {
	mu          sync.Mutex
	fail        bool
	impressions []domain.OfferImpression
	clicks      []domain.ClickTracking
}

func (m *memEventStore) InsertImpression(ctx context.Context, impression *domain.OfferImpression) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	m.impressions = append(m.impressions, *impression)
	return nil
}

func (m *memEventStore) InsertClick(ctx context.Context, click *domain.ClickTracking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	m.clicks = append(m.clicks, *click)
	return nil
}

func intPtr(v int) *int { return &v }
