package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-advisor/poker"
)

func TestParseScenario(t *testing.T) {
	t.Parallel()

	defaults := Situation{Position: "BTN", StackBB: 100, PotBB: 10, Players: 6}

	t.Run("full line", func(t *testing.T) {
		sc, err := ParseScenario("AsKs AhTd2c CO 4", defaults)
		require.NoError(t, err)
		assert.Equal(t, poker.MustParseCards("AsKs"), sc.Hole)
		assert.Equal(t, poker.MustParseCards("AhTd2c"), sc.Board)
		assert.Equal(t, "CO", sc.Situation.Position)
		assert.Equal(t, 4, sc.Situation.Players)
	})

	t.Run("hole only inherits defaults", func(t *testing.T) {
		sc, err := ParseScenario("QhQd", defaults)
		require.NoError(t, err)
		assert.Empty(t, sc.Board)
		assert.Equal(t, "BTN", sc.Situation.Position)
		assert.Equal(t, 6, sc.Situation.Players)
	})

	t.Run("dash board means preflop", func(t *testing.T) {
		sc, err := ParseScenario("QhQd - SB", defaults)
		require.NoError(t, err)
		assert.Empty(t, sc.Board)
		assert.Equal(t, "SB", sc.Situation.Position)
	})

	t.Run("errors", func(t *testing.T) {
		for _, line := range []string{
			"",
			"AsKsQh",            // three hole cards
			"Zx2h",              // invalid card
			"AsKs AhTdZz",       // invalid board card
			"AsKs AhTd2c CO x",  // bad player count
			"AsKs AhTd2c CO 1",  // too few players
			"AsKs AhTd2c CO 4 extra",
		} {
			_, err := ParseScenario(line, defaults)
			assert.Error(t, err, "line %q", line)
		}
	})
}
