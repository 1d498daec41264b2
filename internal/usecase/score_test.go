package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadataScorer(t *testing.T) {
	s := MetadataScorer{}

	tests := []struct {
		name     string
		signals  Signals
		expected float64
	}{
		{"schedule metadata close by", Signals{DistanceKm: 0.5, HasScheduleMetadata: true}, 0.5},
		{"schedule metadata further", Signals{DistanceKm: 1.2, HasScheduleMetadata: true}, 0.36},
		{"no metadata", Signals{DistanceKm: 2.8, HasScheduleMetadata: false}, -0.56},
		{"at center with metadata", Signals{DistanceKm: 0, HasScheduleMetadata: true}, 0.6},
		{"at center without metadata", Signals{DistanceKm: 0, HasScheduleMetadata: false}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, s.Score(tt.signals), 1e-9)
		})
	}
}

func TestRichScorer(t *testing.T) {
	s := RichScorer{}

	rating := 4.5
	open := true
	closed := false
	cheap := 0
	mid := 2
	expensive := 4

	t.Run("full signals", func(t *testing.T) {
		// 4.5*2 + 1 + 0.15*2 - 1.0*0.2 = 10.1
		got := s.Score(Signals{DistanceKm: 1.0, Rating: &rating, OpenNow: &open, PriceLevel: &mid})
		assert.InDelta(t, 10.1, got, 1e-9)
	})

	t.Run("price bonus peaks at mid-range", func(t *testing.T) {
		base := Signals{DistanceKm: 0, Rating: &rating, OpenNow: &open}

		midS := base
		midS.PriceLevel = &mid
		cheapS := base
		cheapS.PriceLevel = &cheap
		expS := base
		expS.PriceLevel = &expensive

		assert.Greater(t, s.Score(midS), s.Score(cheapS))
		assert.Greater(t, s.Score(midS), s.Score(expS))
		// Symmetric falloff around mid-range.
		assert.InDelta(t, s.Score(cheapS), s.Score(expS), 1e-9)
	})

	t.Run("closed venue loses the open bonus", func(t *testing.T) {
		openS := Signals{DistanceKm: 1.0, Rating: &rating, OpenNow: &open, PriceLevel: &mid}
		closedS := Signals{DistanceKm: 1.0, Rating: &rating, OpenNow: &closed, PriceLevel: &mid}
		assert.InDelta(t, 1.0, s.Score(openS)-s.Score(closedS), 1e-9)
	})

	t.Run("missing signals default", func(t *testing.T) {
		// rating 0, not open, price defaults to mid-range: 0 + 0 + 0.3 - 0.2
		got := s.Score(Signals{DistanceKm: 1.0})
		assert.InDelta(t, 0.1, got, 1e-9)
	})
}
