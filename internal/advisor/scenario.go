package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/holdem-advisor/poker"
)

// Scenario is a single hand situation parsed from a one-line description.
type Scenario struct {
	Hole      []poker.Card
	Board     []poker.Card
	Situation Situation
}

/// ParseScenario parses a whitespace separated scenario line:
//
//	HOLE [BOARD] [POSITION] [PLAYERS]
//
// HOLE and BOARD are concatenated card strings ("AsKs", "AhTd2c"); a board
// of "-" means preflop. Omitted fields fall back to the given defaults.
func ParseScenario(line string, defaults Situation) (Scenario, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Scenario{}, fmt.Errorf("empty scenario")
	}
	if len(fields) > 4 {
		return Scenario{}, fmt.Errorf("too many fields: %d (want HOLE [BOARD] [POSITION] [PLAYERS])", len(fields))
	}

	hole, err := poker.ParseCards(fields[0])
	if err != nil {
		return Scenario{}, fmt.Errorf("hole cards: %w", err)
	}
	if len(hole) != 2 {
		return Scenario{}, fmt.Errorf("hole cards: expected exactly 2, got %d", len(hole))
	}

	sc := Scenario{Hole: hole, Situation: defaults}

	if len(fields) > 1 && fields[1] != "-" {
		board, err := poker.ParseCards(fields[1])
		if err != nil {
			return Scenario{}, fmt.Errorf("board cards: %w", err)
		}
		sc.Board = board
	}

	if len(fields) > 2 {
		sc.Situation.Position = fields[2]
	}

	if len(fields) > 3 {
		players, err := strconv.Atoi(fields[3])
		if err != nil || players < 2 {
			return Scenario{}, fmt.Errorf("players: invalid count %q", fields[3])
		}
		sc.Situation.Players = players
	}

	return sc, nil
}
