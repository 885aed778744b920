package advisor

import (
	"github.com/lox/holdem-advisor/poker"
)

// Tier is the qualitative strength bucket of a hand
type Tier uint8

const (
	TierPremium Tier = iota
	TierStrong
	TierMedium
	TierWeak
)

// String returns the lowercase tier name
func (t Tier) String() string {
	switch t {
	case TierPremium:
		return "premium"
	case TierStrong:
		return "strong"
	case TierMedium:
		return "medium"
	case TierWeak:
		return "weak"
	default:
		return "unknown"
	}
}

// ClassifyStrength buckets a hand into a tier. Made-hand categories decide
// outright; high card hands past weakCutoff on the percentile scale are
// weak, the rest medium. A royal flush carries the StraightFlush type and
// lands in premium with the rest of the top categories.
func ClassifyStrength(handType poker.HandType, percentile, weakCutoff float64) Tier {
	switch handType {
	case poker.StraightFlush, poker.FourOfAKind, poker.FullHouse:
		return TierPremium
	case poker.Flush, poker.Straight, poker.ThreeOfAKind:
		return TierStrong
	case poker.TwoPair, poker.Pair:
		return TierMedium
	}

	if percentile > weakCutoff {
		return TierWeak
	}
	return TierMedium
}
