package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"finz-affiliate/internal/adapters/persistence/models"
	"finz-affiliate/internal/core/domain"
	"finz-affiliate/internal/core/tracking"
)

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

func TestTrackingRepository_OfferJoin(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	packages := NewLoanPackageRepository(db)
	repo := NewTrackingRepository(db)

	live := createPackage(t, packages, "Tnex")
	gone := createPackage(t, packages, "Gone")
	require.NoError(t, packages.Delete(ctx, gone.ID))

	for _, id := range []string{live.ID, gone.ID, domain.NavigationOfferID} {
		require.NoError(t, repo.InsertImpression(ctx, &domain.OfferImpression{OfferID: id, PlatformSource: tracking.PlatformHomepage}))
	}
	require.NoError(t, repo.InsertBatch(ctx, nil, []domain.ClickTracking{
		{OfferID: live.ID, PlatformSource: "homepage_register", Device: strPtr(domain.DeviceMobile), StayTime: intPtr(20), ScrollDepth: intPtr(40)},
		{OfferID: domain.NavigationOfferID, PlatformSource: tracking.NavigationPlatform("home")},
	}))

	impressions, err := repo.ListImpressions(ctx)
	require.NoError(t, err)
	require.Len(t, impressions, 3)

	joined := make(map[string]*domain.OfferRef)
	for _, imp := range impressions {
		joined[imp.OfferID] = imp.Offer
	}
	require.NotNil(t, joined[live.ID])
	require.Equal(t, "Tnex", joined[live.ID].Name)
	require.Nil(t, joined[gone.ID])
	require.Nil(t, joined[domain.NavigationOfferID])

	clicks, err := repo.ListClicks(ctx)
	require.NoError(t, err)
	require.Len(t, clicks, 2)

	stats := tracking.ComputeStats(impressions, clicks)
	require.Equal(t, "Tnex", stats.ImpressionsByOffer[live.ID].Name)
	require.Equal(t, fmt.Sprintf("Offer %s", gone.ID), stats.ImpressionsByOffer[gone.ID].Name)
	require.Equal(t, "Offer navigation", stats.ClicksByOffer[domain.NavigationOfferID].Name)
	require.Equal(t, 20.0, stats.AvgStayTime)
}

func TestTrackingRepository_NullableClickFields(t *testing.T) {
	ctx := context.Background()
	repo := NewTrackingRepository(newTestDB(t))

	click := &domain.ClickTracking{OfferID: "pkg-1", PlatformSource: tracking.PlatformWeb}
	require.NoError(t, repo.InsertClick(ctx, click))
	require.NotEmpty(t, click.ID)
	require.False(t, click.CreatedAt.IsZero())

	clicks, err := repo.ListClicks(ctx)
	require.NoError(t, err)
	require.Len(t, clicks, 1)
	require.Nil(t, clicks[0].Device)
	require.Nil(t, clicks[0].SessionID)
	require.Nil(t, clicks[0].StayTime)
	require.Nil(t, clicks[0].ScrollDepth)
}

func TestTrackingRepository_Pages(t *testing.T) {
	ctx := context.Background()
	repo := NewTrackingRepository(newTestDB(t))

	impressions := make([]domain.OfferImpression, 5)
	for i := range impressions {
		impressions[i] = domain.OfferImpression{OfferID: fmt.Sprintf("pkg-%d", i), PlatformSource: tracking.PlatformWeb}
	}
	require.NoError(t, repo.InsertBatch(ctx, impressions, nil))

	rows, total, err := repo.PageImpressions(ctx, 2, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, rows, 2)

	rows, total, err = repo.PageImpressions(ctx, 4, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, rows, 1)

	clicks, total, err := repo.PageClicks(ctx, 0, 10)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, clicks)
}

func TestTrackingRepository_Clear(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTrackingRepository(db)

	require.NoError(t, repo.InsertBatch(ctx,
		[]domain.OfferImpression{{OfferID: "a", PlatformSource: "web"}, {OfferID: "b", PlatformSource: "web"}},
		[]domain.ClickTracking{{OfferID: "a", PlatformSource: "web"}},
	))
	require.EqualValues(t, 2, countRows(t, db, &models.OfferImpression{}))
	require.EqualValues(t, 1, countRows(t, db, &models.ClickTracking{}))

	require.NoError(t, repo.Clear(ctx))
	require.Zero(t, countRows(t, db, &models.OfferImpression{}))
	require.Zero(t, countRows(t, db, &models.ClickTracking{}))

	// clearing empty tables is not an error
	require.NoError(t, repo.Clear(ctx))
}
