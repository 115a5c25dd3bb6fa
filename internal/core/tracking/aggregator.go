package tracking

import (
	"fmt"

	"finz-affiliate/internal/core/domain"
)

// OfferBucket counts events for one offer id
type OfferBucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats summarizes the whole history of impressions and clicks
type Stats struct {
	TotalImpressions      int                     `json:"total_impressions"`
	TotalClicks           int                     `json:"total_clicks"`
	ClickThroughRate      float64                 `json:"click_through_rate"`
	AvgStayTime           float64                 `json:"avg_stay_time"`
	AvgScrollDepth        float64                 `json:"avg_scroll_depth"`
	ImpressionsByPlatform map[string]int          `json:"impressions_by_platform"`
	ClicksByPlatform      map[string]int          `json:"clicks_by_platform"`
	ImpressionsByOffer    map[string]*OfferBucket `json:"impressions_by_offer"`
	ClicksByOffer         map[string]*OfferBucket `json:"clicks_by_offer"`
}

// OfferDisplayName returns the joined offer name, or "Offer {id}" when the join missed
func OfferDisplayName(offerID string, offer *domain.OfferRef) string {
	if offer != nil && offer.Name != "" {
		return offer.Name
	}
	return fmt.Sprintf("Offer %s", offerID)
}

func countOffer(buckets map[string]*OfferBucket, offerID string, offer *domain.OfferRef) {
	b, ok := buckets[offerID]
	if !ok {
		b = &OfferBucket{Name: OfferDisplayName(offerID, offer)}
		buckets[offerID] = b
	}
	b.Count++
}

// ComputeStats aggregates the events it is given. It does no I/O and no time filtering.
func ComputeStats(impressions []domain.OfferImpression, clicks []domain.ClickTracking) Stats {
	stats := Stats{
		TotalImpressions:      len(impressions),
		TotalClicks:           len(clicks),
		ImpressionsByPlatform: make(map[string]int),
		ClicksByPlatform:      make(map[string]int),
		ImpressionsByOffer:    make(map[string]*OfferBucket),
		ClicksByOffer:         make(map[string]*OfferBucket),
	}

	if stats.TotalImpressions > 0 {
		stats.ClickThroughRate = float64(stats.TotalClicks) / float64(stats.TotalImpressions) * 100
	}

	for _, imp := range impressions {
		stats.ImpressionsByPlatform[imp.PlatformSource]++
		countOffer(stats.ImpressionsByOffer, imp.OfferID, imp.Offer)
	}

	var staySum, scrollSum, stayN, scrollN int
	for _, c := range clicks {
		stats.ClicksByPlatform[c.PlatformSource]++
		countOffer(stats.ClicksByOffer, c.OfferID, c.Offer)

		if c.StayTime != nil {
			staySum += *c.StayTime
			stayN++
		}
		if c.ScrollDepth != nil {
			scrollSum += *c.ScrollDepth
			scrollN++
		}
	}

	if stayN > 0 {
		stats.AvgStayTime = float64(staySum) / float64(stayN)
	}
	if scrollN > 0 {
		stats.AvgScrollDepth = float64(scrollSum) / float64(scrollN)
	}

	return stats
}
