package advisor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-advisor/poker"
)

func newTestAdvisor() *Advisor {
	return New(poker.NewEvaluator(), DefaultStrategy(), nil)
}

func TestEvaluateStreets(t *testing.T) {
	t.Parallel()
	adv := newTestAdvisor()

	tests := []struct {
		board string
		want  Street
	}{
		{"", Preflop},
		{"AhTd2c", Flop},
		{"AhTd2c9s", Turn},
		{"AhTd2c9s3d", River},
	}

	for _, tt := range tests {
		var board []poker.Card
		if tt.board != "" {
			board = poker.MustParseCards(tt.board)
		}
		eval, err := adv.Evaluate(poker.MustParseCards("AsKs"), board)
		require.NoError(t, err, "board %q", tt.board)
		assert.Equal(t, tt.want, eval.Street, "board %q", tt.board)
	}
}

func TestEvaluateRejectsBadBoard(t *testing.T) {
	t.Parallel()
	adv := newTestAdvisor()

	for _, board := range []string{"Ah", "AhTd", "AhTd2c9s3d4h"} {
		_, err := adv.Evaluate(poker.MustParseCards("AsKs"), poker.MustParseCards(board))
		require.Error(t, err, "board %q", board)

		var invalidBoard *InvalidBoardError
		assert.True(t, errors.As(err, &invalidBoard), "board %q: got %T", board, err)
	}
}

func TestEvaluateRejectsBadHole(t *testing.T) {
	t.Parallel()
	adv := newTestAdvisor()

	_, err := adv.Evaluate(poker.MustParseCards("As"), nil)
	require.Error(t, err)

	_, err = adv.Evaluate(poker.MustParseCards("AsKsQs"), nil)
	require.Error(t, err)
}

func TestEvaluateFields(t *testing.T) {
	t.Parallel()
	adv := newTestAdvisor()

	eval, err := adv.Evaluate(poker.MustParseCards("AsKs"), poker.MustParseCards("AhTd2c"))
	require.NoError(t, err)

	assert.Equal(t, "flop", eval.StreetName)
	assert.Equal(t, "Pair", eval.HandClass)
	assert.Equal(t, 3325, eval.Score)
	assert.InDelta(t, float64(3325)/7461, eval.Percentile, 1e-9)
	assert.Equal(t, "medium", eval.TierName)
}

// A substitute ranking provider slots in behind the HandRanker interface.
type fixedRanker struct {
	rank poker.HandRank
}

func (f fixedRanker) EvaluateCards([]poker.Card) poker.HandRank {
	return f.rank
}

func TestAdvisorAcceptsAlternateRanker(t *testing.T) {
	t.Parallel()

	adv := New(fixedRanker{rank: 200}, DefaultStrategy(), nil) // a full house score
	eval, err := adv.Evaluate(poker.MustParseCards("2h7d"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Full House", eval.HandClass)
	assert.Equal(t, TierPremium, eval.Tier)
}
