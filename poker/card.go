package poker

import (
	"fmt"
	"strings"
)

// Card is a packed playing card: value = suit*13 + rank.
// Rank: 0=Two .. 12=Ace. Suit: 0=Clubs, 1=Diamonds, 2=Hearts, 3=Spades.
type Card uint8

// Rank constants (0-12)
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit constants (0-3)
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// NewCard creates a card from rank (0-12) and suit (0-3)
func NewCard(rank, suit uint8) Card {
	return Card(suit*13 + rank)
}

// Rank returns the card's rank (0=Two .. 12=Ace)
func (c Card) Rank() uint8 {
	return uint8(c) % 13
}

// Suit returns the card's suit (0=Clubs .. 3=Spades)
func (c Card) Suit() uint8 {
	return uint8(c) / 13
}

// String returns the canonical two-character notation, e.g. "As" or "2c"
func (c Card) String() string {
	if c.Suit() > 3 || c.Rank() > 12 {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// InvalidCardError is returned when a token cannot be mapped to a card.
type InvalidCardError struct {
	Token string
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("invalid card %q", e.Token)
}

// wordSubstitutions maps localized rank/suit words to their canonical
// single-character forms. Longer words come first so that e.g. "karo" is
// consumed before its inner "a" could be mistaken for an ace.
var wordSubstitutions = []struct{ word, repl string }{
	{"könig", "k"},
	{"koenig", "k"},
	{"kreuz", "c"},
	{"dame", "q"},
	{"bube", "j"},
	{"zehn", "t"},
	{"herz", "h"},
	{"karo", "d"},
	{"ass", "a"},
	{"pik", "s"},
}

// ParseCard parses a single free-form card token such as "As", "10h" or
// "assherz" into a Card. Tokens are case-folded and localized rank/suit
// words are substituted before validation. Parsing is pure; canonical
// tokens round-trip unchanged through Card.String().
func ParseCard(token string) (Card, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	for _, sub := range wordSubstitutions {
		s = strings.ReplaceAll(s, sub.word, sub.repl)
	}

	// "10h" style tokens
	if len(s) == 3 && strings.HasPrefix(s, "10") {
		s = "t" + s[2:]
	}

	if len(s) != 2 {
		return 0, &InvalidCardError{Token: token}
	}

	rank, ok := parseRankChar(s[0])
	if !ok {
		return 0, &InvalidCardError{Token: token}
	}
	suit, ok := parseSuitChar(s[1])
	if !ok {
		return 0, &InvalidCardError{Token: token}
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a strict concatenated card string like "AsKsQh".
// Each card is exactly two characters; no localized forms are accepted.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	var cards []Card
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// FormatCards renders cards space separated in canonical notation.
func FormatCards(cards []Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseRankChar(c byte) (uint8, bool) {
	switch c {
	case 'a', 'A':
		return Ace, true
	case 'k', 'K':
		return King, true
	case 'q', 'Q':
		return Queen, true
	case 'j', 'J':
		return Jack, true
	case 't', 'T':
		return Ten, true
	case '9':
		return Nine, true
	case '8':
		return Eight, true
	case '7':
		return Seven, true
	case '6':
		return Six, true
	case '5':
		return Five, true
	case '4':
		return Four, true
	case '3':
		return Three, true
	case '2':
		return Two, true
	default:
		return 0, false
	}
}

func parseSuitChar(c byte) (uint8, bool) {
	switch c {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 'c', 'C':
		return Clubs, true
	default:
		return 0, false
	}
}
