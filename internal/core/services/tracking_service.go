package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"finz-affiliate/internal/adapters/persistence/repositories"
	"finz-affiliate/internal/core/domain"
	"finz-affiliate/internal/core/tracking"
	"finz-affiliate/internal/pkg/pagination"
)

// minTestPackages is how many catalog entries the test data generator spreads events over
const minTestPackages = 3

// TrackingService ties live sessions, the recorder and the event store together
type TrackingService struct {
	repo     repositories.TrackingRepository
	packages repositories.LoanPackageRepository
	sessions *tracking.SessionStore
	recorder *tracking.Recorder
	log      *zap.SugaredLogger
	now      func() time.Time
}

// NewTrackingService creates a new tracking service
func NewTrackingService(
	repo repositories.TrackingRepository,
	packages repositories.LoanPackageRepository,
	sessions *tracking.SessionStore,
	recorder *tracking.Recorder,
	log *zap.SugaredLogger,
) *TrackingService {
	return &TrackingService{
		repo:     repo,
		packages: packages,
		sessions: sessions,
		recorder: recorder,
		log:      log,
		now:      time.Now,
	}
}

// ImpressionInput represents an impression beacon
type ImpressionInput struct {
	OfferID        string `json:"offer_id" validate:"notblank,max=64"`
	PlatformSource string `json:"platform_source" validate:"max=100"`
	Path           string `json:"path"`
}

// ClickInput represents a click beacon. StayTime and ScrollDepth override
// the session values when present.
type ClickInput struct {
	OfferID        string `json:"offer_id" validate:"notblank,max=64"`
	PlatformSource string `json:"platform_source" validate:"max=100"`
	Path           string `json:"path"`
	SessionID      string `json:"session_id"`
	StayTime       *int   `json:"stay_time" validate:"omitempty,min=0"`
	ScrollDepth    *int   `json:"scroll_depth" validate:"omitempty,min=0,max=100"`
}

// NavigationClickInput represents a menu click beacon
type NavigationClickInput struct {
	NavigationType string `json:"navigation_type" validate:"notblank,max=80"`
	SessionID      string `json:"session_id"`
}

// ScrollInput carries either raw scroll geometry or a precomputed depth
type ScrollInput struct {
	ScrollTop      float64 `json:"scroll_top"`
	ScrollHeight   float64 `json:"scroll_height"`
	ViewportHeight float64 `json:"viewport_height"`
	ScrollDepth    *int    `json:"scroll_depth" validate:"omitempty,min=0,max=100"`
}

// SeedResult reports what the test data generator inserted
type SeedResult struct {
	Impressions int `json:"impressions"`
	Clicks      int `json:"clicks"`
}

// StartSession registers a session for a new page visit
func (s *TrackingService) StartSession(userAgent string) tracking.Snapshot {
	sess := s.sessions.Start(userAgent)
	return sess.Snapshot(s.now())
}

// UpdateScroll records the visitor's scroll position on a live session
func (s *TrackingService) UpdateScroll(sessionID string, input ScrollInput) (tracking.Snapshot, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return tracking.Snapshot{}, domain.ErrSessionNotFound
	}

	if input.ScrollDepth != nil {
		sess.SetScrollDepth(*input.ScrollDepth)
	} else {
		sess.UpdateScroll(input.ScrollTop, input.ScrollHeight, input.ViewportHeight)
	}
	return sess.Snapshot(s.now()), nil
}

// EndSession forgets a session when its page unloads. Unknown ids are ignored.
func (s *TrackingService) EndSession(sessionID string) {
	s.sessions.Remove(sessionID)
}

// RecordImpression queues an impression write
func (s *TrackingService) RecordImpression(input ImpressionInput) {
	s.recorder.RecordImpression(input.OfferID, input.PlatformSource, input.Path)
}

// RecordClick queues a click write. An unknown or expired session still
// records the click, without device or session details.
func (s *TrackingService) RecordClick(input ClickInput) {
	sess := s.liveSession(input.SessionID)
	s.recorder.RecordClick(sess, input.OfferID, input.PlatformSource, input.Path, tracking.ClickOverrides{
		StayTime:    input.StayTime,
		ScrollDepth: input.ScrollDepth,
	})
}

// RecordNavigationClick queues a menu click write
func (s *TrackingService) RecordNavigationClick(input NavigationClickInput) {
	s.recorder.RecordNavigationClick(s.liveSession(input.SessionID), input.NavigationType)
}

func (s *TrackingService) liveSession(id string) *tracking.Session {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil
	}
	return sess
}

// SweepSessions drops sessions idle for longer than ttl
func (s *TrackingService) SweepSessions(ttl time.Duration) int {
	return s.sessions.Sweep(ttl)
}

// FetchStats loads every event with its offer join and aggregates them
func (s *TrackingService) FetchStats(ctx context.Context) (*tracking.Stats, error) {
	impressions, err := s.repo.ListImpressions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load impressions: %w", err)
	}

	clicks, err := s.repo.ListClicks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clicks: %w", err)
	}

	stats := tracking.ComputeStats(impressions, clicks)
	return &stats, nil
}

// ListImpressions returns one page of raw impressions, newest first
func (s *TrackingService) ListImpressions(ctx context.Context, params pagination.Params) ([]domain.OfferImpression, int64, error) {
	return s.repo.PageImpressions(ctx, params.Offset, params.Limit)
}

// ListClicks returns one page of raw clicks, newest first
func (s *TrackingService) ListClicks(ctx context.Context, params pagination.Params) ([]domain.ClickTracking, int64, error) {
	return s.repo.PageClicks(ctx, params.Offset, params.Limit)
}

// SeedTestData writes a small fixed event set over the first three packages
func (s *TrackingService) SeedTestData(ctx context.Context) (*SeedResult, error) {
	pkgs, err := s.packages.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(pkgs) < minTestPackages {
		return nil, domain.ErrNotEnoughPackages
	}

	ids := []string{pkgs[0].ID, pkgs[1].ID, pkgs[2].ID}
	impressions := []domain.OfferImpression{
		{OfferID: ids[0], PlatformSource: tracking.PlatformHomepage},
		{OfferID: ids[1], PlatformSource: tracking.PlatformMuadee},
		{OfferID: ids[2], PlatformSource: tracking.PlatformTnex},
		{OfferID: ids[0], PlatformSource: tracking.PlatformFE},
		{OfferID: ids[1], PlatformSource: tracking.PlatformCUB},
	}
	clicks := []domain.ClickTracking{
		testClick(ids[0], tracking.PlatformHomepage+"_register", domain.DeviceDesktop, "test_session_1", 45, 75),
		testClick(ids[1], tracking.PlatformMuadee+"_detail", domain.DeviceMobile, "test_session_2", 30, 50),
		testClick(ids[2], tracking.PlatformTnex+"_register", domain.DeviceDesktop, "test_session_3", 60, 90),
		testClick(domain.NavigationOfferID, tracking.NavigationPlatform("home"), domain.DeviceMobile, "test_session_4", 15, 25),
	}

	if err := s.repo.InsertBatch(ctx, impressions, clicks); err != nil {
		return nil, err
	}

	s.log.Infow("🧪 Tracking test data inserted", "impressions", len(impressions), "clicks", len(clicks))
	return &SeedResult{Impressions: len(impressions), Clicks: len(clicks)}, nil
}

func testClick(offerID, platform, device, sessionID string, stay, scroll int) domain.ClickTracking {
	return domain.ClickTracking{
		OfferID:        offerID,
		PlatformSource: platform,
		Device:         &device,
		SessionID:      &sessionID,
		StayTime:       &stay,
		ScrollDepth:    &scroll,
	}
}

// Clear deletes all tracking events
func (s *TrackingService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.log.Warn("🗑️ All tracking data cleared")
	return nil
}
