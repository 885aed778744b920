package poker

import (
	"errors"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{
			name:     "ace of spades",
			input:    "As",
			wantCard: NewCard(Ace, Spades),
		},
		{
			name:     "two of hearts",
			input:    "2h",
			wantCard: NewCard(Two, Hearts),
		},
		{
			name:     "king of diamonds lowercase",
			input:    "kd",
			wantCard: NewCard(King, Diamonds),
		},
		{
			name:     "ten with T notation",
			input:    "Tc",
			wantCard: NewCard(Ten, Clubs),
		},
		{
			name:     "ten with 10 notation",
			input:    "10h",
			wantCard: NewCard(Ten, Hearts),
		},
		{
			name:     "uppercase suit",
			input:    "9S",
			wantCard: NewCard(Nine, Spades),
		},
		{
			name:     "surrounding whitespace",
			input:    " Qd ",
			wantCard: NewCard(Queen, Diamonds),
		},
		{
			name:     "german ace of hearts",
			input:    "assherz",
			wantCard: NewCard(Ace, Hearts),
		},
		{
			name:     "german king of clubs",
			input:    "königkreuz",
			wantCard: NewCard(King, Clubs),
		},
		{
			name:     "german ten of spades",
			input:    "zehnpik",
			wantCard: NewCard(Ten, Spades),
		},
		{
			name:     "german jack of diamonds",
			input:    "bubekaro",
			wantCard: NewCard(Jack, Diamonds),
		},
		{
			name:    "invalid rank",
			input:   "Zx",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "Ax",
			wantErr: true,
		},
		{
			name:    "empty token",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bare rank",
			input:   "A",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "AsKs",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCard(%q) expected error, got %v", tt.input, got)
				}
				var invalidCard *InvalidCardError
				if !errors.As(err, &invalidCard) {
					t.Errorf("ParseCard(%q) error is %T, want *InvalidCardError", tt.input, err)
				} else if invalidCard.Token != tt.input {
					t.Errorf("error token = %q, want %q", invalidCard.Token, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.wantCard {
				t.Errorf("ParseCard(%q) = %s, want %s", tt.input, got, tt.wantCard)
			}
		})
	}
}

// Canonical tokens must round-trip unchanged through parse and format.
func TestParseCardIdempotent(t *testing.T) {
	t.Parallel()
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			token := NewCard(rank, suit).String()
			card, err := ParseCard(token)
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", token, err)
			}
			if card.String() != token {
				t.Errorf("round trip %q -> %q", token, card.String())
			}
		}
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("AsKsQh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	if cards[0] != NewCard(Ace, Spades) || cards[2] != NewCard(Queen, Hearts) {
		t.Errorf("unexpected cards: %v", cards)
	}

	if _, err := ParseCards("AsK"); err == nil {
		t.Error("expected error for odd-length string")
	}
	if _, err := ParseCards("AsZx"); err == nil {
		t.Error("expected error for invalid card")
	}
}

func TestFormatCards(t *testing.T) {
	t.Parallel()
	if got := FormatCards(MustParseCards("AhTd2c")); got != "Ah Td 2c" {
		t.Errorf("FormatCards = %q", got)
	}
	if got := FormatCards(nil); got != "-" {
		t.Errorf("FormatCards(nil) = %q, want -", got)
	}
}
