package usecase

import "math"

// Signals are the ranking inputs a data source may supply for one venue.
// The OSM source fills only DistanceKm and HasScheduleMetadata; Rating,
// OpenNow and PriceLevel stay nil until a richer provider is wired in.
type Signals struct {
	DistanceKm          float64
	HasScheduleMetadata bool
	Rating              *float64
	OpenNow             *bool
	PriceLevel          *int
}

// Scorer computes the ranking score for one venue. Scores are comparable
// only within a single result set; there is no normalization or clamping.
type Scorer interface {
	Score(s Signals) float64
}

// MetadataScorer is the heuristic for sources without rating or live status:
// any schedule metadata is a mild positive signal, and every kilometer of
// distance costs 0.2.
type MetadataScorer struct{}

func (MetadataScorer) Score(s Signals) float64 {
	score := -s.DistanceKm * 0.2
	if s.HasScheduleMetadata {
		score += 0.6
	}
	return score
}

// RichScorer ranks venues when rating, confirmed open status and price level
// are available: rating dominates, confirmed-open is a flat bonus, and the
// price bonus peaks at mid-range and falls off symmetrically.
type RichScorer struct{}

func (RichScorer) Score(s Signals) float64 {
	var rating float64
	if s.Rating != nil {
		rating = *s.Rating
	}

	var open float64
	if s.OpenNow != nil && *s.OpenNow {
		open = 1
	}

	price := 2.0
	if s.PriceLevel != nil {
		price = float64(*s.PriceLevel)
	}
	priceBonus := 0.15 * (2 - math.Abs(price-2))

	return rating*2 + open + priceBonus - s.DistanceKm*0.2
}
