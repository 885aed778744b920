package advisor

import "fmt"

// Street represents the betting round implied by the board size
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the lowercase street name
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// Title returns the street name capitalized for display
func (s Street) Title() string {
	switch s {
	case Preflop:
		return "Preflop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	default:
		return "Unknown"
	}
}

// InvalidBoardError is returned for board sizes that do not correspond
// to a street.
type InvalidBoardError struct {
	Count int
}

func (e *InvalidBoardError) Error() string {
	return fmt.Sprintf("board must contain 0, 3, 4 or 5 cards (preflop/flop/turn/river), got %d", e.Count)
}

// DetectStreet maps a board card count to its street.
func DetectStreet(boardCards int) (Street, error) {
	switch boardCards {
	case 0:
		return Preflop, nil
	case 3:
		return Flop, nil
	case 4:
		return Turn, nil
	case 5:
		return River, nil
	default:
		return 0, &InvalidBoardError{Count: boardCards}
	}
}
