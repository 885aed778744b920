package poker

// Hand evaluation on the canonical 7462-rank scale.
// Lower rank values are better hands (0 = Royal Flush, 7461 = worst High Card).

import (
	"math/bits"
)

// HandRank represents the strength of a poker hand (lower is better)
type HandRank uint16

// worstRank is the bottom of the 7462-rank scale
const worstRank = 7461

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable hand type description.
func (ht HandType) String() string {
	switch ht {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Type returns the hand category for a rank.
func (hr HandRank) Type() HandType {
	switch {
	case hr <= 9:
		return StraightFlush
	case hr <= 165:
		return FourOfAKind
	case hr <= 321:
		return FullHouse
	case hr <= 1598:
		return Flush
	case hr <= 1608:
		return Straight
	case hr <= 2466:
		return ThreeOfAKind
	case hr <= 3324:
		return TwoPair
	case hr <= 6184:
		return Pair
	default:
		return HighCard
	}
}

// String returns the readable class label for the rank.
// Rank 0 is the royal flush and gets its own label.
func (hr HandRank) String() string {
	if hr == 0 {
		return "Royal Flush"
	}
	return hr.Type().String()
}

// PercentileRank normalizes the rank to [0,1] where 0.0 is the strongest
// possible hand and 1.0 the weakest. Monotonic with the rank by construction.
func (hr HandRank) PercentileRank() float64 {
	return float64(hr) / float64(worstRank)
}

// Compare returns 1 if hr is the better hand, -1 if other is, 0 if equal.
func (hr HandRank) Compare(other HandRank) int {
	if hr < other {
		return 1
	} else if hr > other {
		return -1
	}
	return 0
}

// Evaluator scores card combinations. It is stateless and safe for
// concurrent use.
type Evaluator struct{}

// NewEvaluator creates a new evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// EvaluateCards scores a combination of 2 to 7 cards. Rank counts are taken
// with multiplicity from the input, so repeated tokens strengthen the made
// hand rather than collapsing. With fewer than five cards the straight and
// flush branches cannot trigger, which keeps partial hands inside the same
// total ordering.
func (e *Evaluator) EvaluateCards(cards []Card) HandRank {
	if len(cards) == 0 {
		return worstRank
	}

	var suitMasks [4]uint16
	var rankCounts [13]int
	for _, c := range cards {
		suitMasks[c.Suit()] |= 1 << c.Rank()
		rankCounts[c.Rank()]++
	}
	rankMask := suitMasks[0] | suitMasks[1] | suitMasks[2] | suitMasks[3]

	// Flush detection
	flushSuit := -1
	var flushRanks uint16
	for i, mask := range suitMasks {
		if bits.OnesCount16(mask) >= 5 {
			flushSuit = i
			flushRanks = highestRanks(mask, 5)
			break
		}
	}

	straightMask := getStraightMask(rankMask)
	hasStraight := straightMask != 0

	// Straight flush
	if flushSuit != -1 && hasStraight {
		if sf := getStraightMask(suitMasks[flushSuit]); sf != 0 {
			if sf == 0x1F00 { // A-K-Q-J-T suited
				return 0
			}
			if sf == 0x100F { // wheel
				return 9
			}
			highRank := 15 - bits.LeadingZeros16(sf)
			return HandRank(12 - highRank)
		}
	}

	quads, trips, pairs := 0, 0, 0
	for _, count := range rankCounts {
		switch {
		case count >= 4:
			quads++
		case count == 3:
			trips++
		case count == 2:
			pairs++
		}
	}

	// Four of a kind (ranks 10-165)
	if quads > 0 {
		quadRank, kickerRank := 0, 0
		for rank, count := range rankCounts {
			if count >= 4 {
				quadRank = rank
			}
		}
		for rank, count := range rankCounts {
			if count >= 1 && rank != quadRank && rank > kickerRank {
				kickerRank = rank
			}
		}
		return HandRank(10 + (12-quadRank)*12 + (12 - kickerRank))
	}

	// Full house (ranks 166-321)
	if trips > 0 && (pairs > 0 || trips > 1) {
		tripRank, pairRank, secondTripRank := 0, 0, 0
		for rank, count := range rankCounts {
			if count == 3 && rank > tripRank {
				secondTripRank = tripRank
				tripRank = rank
			} else if count == 3 && rank > secondTripRank {
				secondTripRank = rank
			} else if count == 2 && rank > pairRank {
				pairRank = rank
			}
		}
		if trips > 1 {
			pairRank = secondTripRank
		}
		return HandRank(166 + (12-tripRank)*12 + (12 - pairRank))
	}

	// Flush (ranks 322-1598)
	if flushSuit != -1 {
		highRank := 15 - bits.LeadingZeros16(flushRanks)
		return HandRank(322 + (12-highRank)*100)
	}

	// Straight (ranks 1599-1608)
	if hasStraight {
		if straightMask == 0x100F { // wheel is the worst straight
			return 1608
		}
		highRank := 15 - bits.LeadingZeros16(straightMask)
		return HandRank(1599 + (12 - highRank))
	}

	// Three of a kind (ranks 1609-2466)
	if trips > 0 {
		tripRank := 0
		for rank, count := range rankCounts {
			if count == 3 {
				tripRank = rank
			}
		}
		return HandRank(1609 + (12-tripRank)*65)
	}

	// Two pair (ranks 2467-3324)
	if pairs >= 2 {
		highPair, lowPair := 0, 0
		for rank, count := range rankCounts {
			if count == 2 {
				if rank > highPair {
					lowPair = highPair
					highPair = rank
				} else if rank > lowPair {
					lowPair = rank
				}
			}
		}
		return HandRank(2467 + (12-highPair)*65 + (12 - lowPair))
	}

	// One pair (ranks 3325-6184)
	if pairs == 1 {
		pairRank := 0
		for rank, count := range rankCounts {
			if count == 2 {
				pairRank = rank
			}
		}
		return HandRank(3325 + (12-pairRank)*220)
	}

	// High card (ranks 6185-7461)
	highRank := 15 - bits.LeadingZeros16(rankMask)
	return HandRank(6185 + (12-highRank)*100)
}

// DescribeCards returns the class label for a card combination.
func (e *Evaluator) DescribeCards(cards []Card) string {
	return e.EvaluateCards(cards).String()
}

// highestRanks returns the highest count ranks set in a rank mask
func highestRanks(ranks uint16, count int) uint16 {
	var result uint16
	remaining := count
	for bit := 12; bit >= 0 && remaining > 0; bit-- {
		if ranks&(1<<bit) != 0 {
			result |= 1 << bit
			remaining--
		}
	}
	return result
}

// getStraightMask returns the mask of the highest straight in ranks, or 0.
func getStraightMask(ranks uint16) uint16 {
	mask := uint16(0x1F00) // A-K-Q-J-T
	for i := 0; i <= 8; i++ {
		if ranks&mask == mask {
			return mask
		}
		mask >>= 1
	}
	if ranks&0x100F == 0x100F { // A-2-3-4-5 wheel
		return 0x100F
	}
	return 0
}
