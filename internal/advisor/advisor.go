// Package advisor derives qualitative play advice from a ranked Texas
// Hold'em hand and the table situation. Evaluation is a pure function of
// its inputs; the ranking provider sits behind a narrow interface so any
// conforming implementation can be substituted.
package advisor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-advisor/poker"
)

// HandRanker scores a card combination on a total ordering where lower is
// better and the percentile of a rank is the fraction of hands at or below
// it.
type HandRanker interface {
	EvaluateCards(cards []poker.Card) poker.HandRank
}

// Evaluation is the result of ranking hole cards against a board
type Evaluation struct {
	Street      Street  `json:"-"`
	StreetName  string  `json:"street"`
	HandClass   string  `json:"handClass"`
	Score       int     `json:"score"`
	Percentile  float64 `json:"percentile"`
	Description string  `json:"description"`
	Tier        Tier    `json:"-"`
	TierName    string  `json:"tier"`
}

// Advisor evaluates hands and derives recommendations
type Advisor struct {
	ranker   HandRanker
	strategy Strategy
	logger   *log.Logger
}

// New creates an advisor. A nil logger discards debug output.
func New(ranker HandRanker, strategy Strategy, logger *log.Logger) *Advisor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Advisor{
		ranker:   ranker,
		strategy: strategy,
		logger:   logger.WithPrefix("advisor"),
	}
}

// Strategy returns the advisor's heuristic thresholds.
func (a *Advisor) Strategy() Strategy {
	return a.strategy
}

// Evaluate ranks two hole cards against a 0, 3, 4 or 5 card board.
// The street is validated before any ranking happens.
func (a *Advisor) Evaluate(hole, board []poker.Card) (Evaluation, error) {
	if len(hole) != 2 {
		return Evaluation{}, fmt.Errorf("expected exactly 2 hole cards, got %d", len(hole))
	}

	street, err := DetectStreet(len(board))
	if err != nil {
		return Evaluation{}, err
	}

	cards := make([]poker.Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)

	rank := a.ranker.EvaluateCards(cards)
	percentile := rank.PercentileRank()
	tier := ClassifyStrength(rank.Type(), percentile, a.strategy.WeakHighCardCutoff)

	a.logger.Debug("evaluated hand",
		"hole", poker.FormatCards(hole),
		"board", poker.FormatCards(board),
		"street", street,
		"score", int(rank),
		"percentile", percentile,
		"tier", tier)

	return Evaluation{
		Street:      street,
		StreetName:  street.String(),
		HandClass:   rank.String(),
		Score:       int(rank),
		Percentile:  percentile,
		Description: rank.String(),
		Tier:        tier,
		TierName:    tier.String(),
	}, nil
}

// Advise evaluates and recommends in one step.
func (a *Advisor) Advise(hole, board []poker.Card, sit Situation) (Evaluation, Recommendation, error) {
	eval, err := a.Evaluate(hole, board)
	if err != nil {
		return Evaluation{}, Recommendation{}, err
	}
	return eval, a.strategy.Recommend(eval, sit), nil
}
