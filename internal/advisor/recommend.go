package advisor

import (
	"fmt"
	"strings"
)

// positionOrder is the fixed seating order from earliest to latest position.
var positionOrder = []string{"UTG", "UTG1", "UTG2", "MP", "CO", "BTN", "SB", "BB"}

// PositionFactor returns the positional multiplier used to discount the
// equity required to continue. The factor rises toward the button
// (UTG 0.90 .. BTN 1.05) and the blinds are pulled back below their seat
// index. Unknown position labels are neutral.
func PositionFactor(position string) float64 {
	pos := strings.ToUpper(strings.TrimSpace(position))
	idx := -1
	for i, p := range positionOrder {
		if p == pos {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 1.0
	}

	factor := 0.9 + 0.03*float64(idx)
	if pos == "SB" || pos == "BB" {
		factor -= 0.05
	}
	return factor
}

// Situation captures the table context for a recommendation. Stack and pot
// are echoed in reports but do not enter the required-equity formula.
type Situation struct {
	Position string  `json:"position"`
	StackBB  float64 `json:"stackBB"`
	PotBB    float64 `json:"potBB"`
	Players  int     `json:"players"`
}

// Edge labels how the equity estimate compares to the required equity
type Edge uint8

const (
	EdgeLarge Edge = iota
	EdgeSlight
	EdgeMarginal
	EdgeBehind
)

// String returns the edge band label
func (e Edge) String() string {
	switch e {
	case EdgeLarge:
		return "large edge"
	case EdgeSlight:
		return "slight edge"
	case EdgeMarginal:
		return "marginal"
	case EdgeBehind:
		return "disadvantage"
	default:
		return "unknown"
	}
}

// category is the qualitative strength wording paired with each edge band
func (e Edge) category() string {
	switch e {
	case EdgeLarge:
		return "very strong"
	case EdgeSlight:
		return "strong"
	case EdgeMarginal:
		return "borderline"
	default:
		return "weak"
	}
}

// Recommendation is the derived play advice
type Recommendation struct {
	Label       string `json:"label"`
	Action      string `json:"action"`
	Explanation string `json:"explanation"`
}

// Strategy holds the tunable heuristic thresholds.
type Strategy struct {
	// BaseRequiredEquity is the equity needed to continue heads-up from
	// a neutral position, before multiway and position adjustments.
	BaseRequiredEquity float64

	// MultiwayStep is the per-extra-player increase of required equity.
	MultiwayStep float64

	// LargeEdgeGap and SlightEdgeGap are the gaps above required equity
	// for the top two edge bands; MarginalGap is the tolerance below.
	LargeEdgeGap  float64
	SlightEdgeGap float64
	MarginalGap   float64

	// WeakHighCardCutoff is the percentile past which a high card hand
	// classifies as weak.
	WeakHighCardCutoff float64
}

// DefaultStrategy returns the stock heuristic thresholds.
func DefaultStrategy() Strategy {
	return Strategy{
		BaseRequiredEquity: 0.35,
		MultiwayStep:       0.03,
		LargeEdgeGap:       0.15,
		SlightEdgeGap:      0.05,
		MarginalGap:        0.05,
		WeakHighCardCutoff: 0.7,
	}
}

// RequiredEquity is the continue threshold for a situation: the base
// requirement scaled up per extra player in the pot and discounted by
// positional advantage.
func (s Strategy) RequiredEquity(sit Situation) float64 {
	multiway := 1.0 + float64(max(sit.Players-2, 0))*s.MultiwayStep
	return s.BaseRequiredEquity * multiway / PositionFactor(sit.Position)
}

// EdgeBand compares an equity estimate against the required equity.
func (s Strategy) EdgeBand(equityEstimate, requiredEquity float64) Edge {
	switch {
	case equityEstimate > requiredEquity+s.LargeEdgeGap:
		return EdgeLarge
	case equityEstimate > requiredEquity+s.SlightEdgeGap:
		return EdgeSlight
	case equityEstimate > requiredEquity-s.MarginalGap:
		return EdgeMarginal
	default:
		return EdgeBehind
	}
}

// Recommend derives play advice from an evaluation and the table situation.
// Preflop the tier alone decides; postflop the tier is crossed with the
// edge band from the equity heuristic.
func (s Strategy) Recommend(eval Evaluation, sit Situation) Recommendation {
	if eval.Street == Preflop {
		return s.recommendPreflop(eval)
	}
	return s.recommendPostflop(eval, sit)
}

func (s Strategy) recommendPreflop(eval Evaluation) Recommendation {
	switch eval.Tier {
	case TierPremium:
		return Recommendation{
			Label:       "Premium preflop",
			Action:      "3-bet / 4-bet for value; never fold.",
			Explanation: "Very strong starting hand. Play aggressively for value, especially in late position.",
		}
	case TierStrong:
		return Recommendation{
			Label:       "Strong hand preflop",
			Action:      "Open-raise or call a 3-bet; rarely fold.",
			Explanation: "Good starting hand. Tighter in early position, more aggressive in late position.",
		}
	case TierMedium:
		return Recommendation{
			Label:       "Marginal hand preflop",
			Action:      "Open-raise in late position or fold in early position.",
			Explanation: "Playable but position dependent. Fold against heavy action.",
		}
	default:
		return Recommendation{
			Label:       "Trash hand preflop",
			Action:      "Fold.",
			Explanation: "Weak starting hand with no real prospects. Usually just let it go.",
		}
	}
}

func (s Strategy) recommendPostflop(eval Evaluation, sit Situation) Recommendation {
	required := s.RequiredEquity(sit)
	equity := 1.0 - eval.Percentile
	edge := s.EdgeBand(equity, required)
	street := eval.Street.Title()

	switch eval.Tier {
	case TierPremium:
		return Recommendation{
			Label:  fmt.Sprintf("%s: monster hand", street),
			Action: "Big value bet / raise (at least 2/3 pot). Never fold.",
			Explanation: fmt.Sprintf(
				"Your hand is %s (%s). You have a %s against typical ranges. Build the pot and protect against draws.",
				edge.category(), eval.HandClass, edge),
		}
	case TierStrong:
		return Recommendation{
			Label:  fmt.Sprintf("%s: strong made hand / good draw", street),
			Action: "Bet 1/2 to 2/3 pot or call moderate bets.",
			Explanation: fmt.Sprintf(
				"Your hand is %s (%s). You are usually ahead, but big pots against heavy action can get dangerous.",
				edge.category(), eval.HandClass),
		}
	case TierMedium:
		rec := Recommendation{
			Label: fmt.Sprintf("%s: medium hand / weak showdown value", street),
		}
		if equity >= required {
			rec.Action = "Check/call small bets or thin value bet in position."
			rec.Explanation = "Borderline hand: just enough equity to continue, but keep the pot small."
		} else {
			rec.Action = "Check/fold against larger bets."
			rec.Explanation = "Against typical ranges and bet sizes your hand is often behind. Only continue against very small bets."
		}
		return rec
	default:
		return Recommendation{
			Label:       fmt.Sprintf("%s: weak hand / air", street),
			Action:      "Check/fold unless you have a clear bluff spot.",
			Explanation: "Barely any showdown value and little equity. Only playable as a bluff in very good spots.",
		}
	}
}
