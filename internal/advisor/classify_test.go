package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/holdem-advisor/poker"
)

func TestClassifyStrength(t *testing.T) {
	t.Parallel()

	const cutoff = 0.7

	tests := []struct {
		name       string
		handType   poker.HandType
		percentile float64
		want       Tier
	}{
		{"straight flush", poker.StraightFlush, 0.0, TierPremium},
		{"four of a kind", poker.FourOfAKind, 0.01, TierPremium},
		{"full house", poker.FullHouse, 0.03, TierPremium},
		{"flush", poker.Flush, 0.1, TierStrong},
		{"straight", poker.Straight, 0.21, TierStrong},
		{"three of a kind", poker.ThreeOfAKind, 0.25, TierStrong},
		{"two pair", poker.TwoPair, 0.35, TierMedium},
		{"pair", poker.Pair, 0.6, TierMedium},
		// percentile only matters for high card hands
		{"pair deep in weak region", poker.Pair, 0.95, TierMedium},
		{"high card above cutoff", poker.HighCard, 0.71, TierWeak},
		{"high card below cutoff", poker.HighCard, 0.69, TierMedium},
		{"high card at cutoff", poker.HighCard, 0.7, TierMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStrength(tt.handType, tt.percentile, cutoff)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Identical inputs always classify identically.
func TestClassifyStrengthPure(t *testing.T) {
	t.Parallel()

	for i := 0; i < 10; i++ {
		assert.Equal(t, TierMedium, ClassifyStrength(poker.Pair, 0.45, 0.7))
	}
}

func TestTierNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "premium", TierPremium.String())
	assert.Equal(t, "strong", TierStrong.String())
	assert.Equal(t, "medium", TierMedium.String())
	assert.Equal(t, "weak", TierWeak.String())
}
