package tracking

import (
	"context"
	"time"

	"finz-affiliate/internal/core/domain"
)

// EventStore appends tracking events to the record store
type EventStore interface {
	InsertImpression(ctx context.Context, impression *domain.OfferImpression) error
	InsertClick(ctx context.Context, click *domain.ClickTracking) error
}

// ClickOverrides replace the session-derived metrics of a click when set
type ClickOverrides struct {
	StayTime    *int
	ScrollDepth *int
}

// Recorder captures impressions and clicks. Every write is handed to the
// dispatcher; callers never wait on the store and never see its errors.
type Recorder struct {
	store      EventStore
	dispatcher *Dispatcher
	logger     Logger
	now        func() time.Time
}

// NewRecorder creates a recorder writing to store through dispatcher
func NewRecorder(store EventStore, dispatcher *Dispatcher, logger Logger) *Recorder {
	return &Recorder{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// resolvePlatform prefers an explicit label and falls back to the page path
func resolvePlatform(platformSource, path string) string {
	if platformSource != "" {
		return platformSource
	}
	return PlatformFromPath(path)
}

// RecordImpression logs one impression of offerID
func (r *Recorder) RecordImpression(offerID, platformSource, path string) {
	impression := &domain.OfferImpression{
		OfferID:        offerID,
		PlatformSource: resolvePlatform(platformSource, path),
	}

	r.dispatcher.Submit(Task{
		Name: "impression",
		Run: func(ctx context.Context) error {
			return r.store.InsertImpression(ctx, impression)
		},
	})
}

// RecordClick logs one click on offerID using the live session state.
// sess may be nil when the visit's session is gone; device and session id are then null.
func (r *Recorder) RecordClick(sess *Session, offerID, platformSource, path string, overrides ClickOverrides) {
	click := r.NewClick(sess, offerID, resolvePlatform(platformSource, path), overrides)
	r.submitClick("click", click)
}

// RecordNavigationClick logs a menu-navigation click
func (r *Recorder) RecordNavigationClick(sess *Session, navigationType string) {
	click := r.NewClick(sess, domain.NavigationOfferID, NavigationPlatform(navigationType), ClickOverrides{})
	r.submitClick("navigation_click", click)
}

func (r *Recorder) submitClick(name string, click *domain.ClickTracking) {
	r.dispatcher.Submit(Task{
		Name: name,
		Run: func(ctx context.Context) error {
			return r.store.InsertClick(ctx, click)
		},
	})
}

// NewClick builds the click row from the session snapshot and overrides
func (r *Recorder) NewClick(sess *Session, offerID, platformSource string, overrides ClickOverrides) *domain.ClickTracking {
	click := &domain.ClickTracking{
		OfferID:        offerID,
		PlatformSource: platformSource,
	}

	if sess != nil {
		snap := sess.Snapshot(r.now())
		click.Device = &snap.Device
		click.SessionID = &snap.ID
		click.StayTime = &snap.StayTime
		click.ScrollDepth = &snap.ScrollDepth
	}

	if overrides.StayTime != nil {
		v := *overrides.StayTime
		click.StayTime = &v
	}
	if overrides.ScrollDepth != nil {
		v := *overrides.ScrollDepth
		click.ScrollDepth = &v
	}

	return click
}
