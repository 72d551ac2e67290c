package deck

import (
	"fmt"
)

// Suit represents a suit in a Preferans deck
type Suit int

const (
	Spades Suit = iota
	Diamonds
	Hearts
	Clubs
)

var suitNames = []string{"Spades", "Diamonds", "Hearts", "Clubs"}

func (s Suit) String() string {
	if s < Spades || s > Clubs {
		return "Unknown"
	}
	return suitNames[s]
}

// MarshalText encodes a Suit by name
func (s Suit) MarshalText() ([]byte, error) {
	if s < Spades || s > Clubs {
		return nil, fmt.Errorf("unknown suit %d", int(s))
	}
	return []byte(suitNames[s]), nil
}

// UnmarshalText decodes a Suit from its name
func (s *Suit) UnmarshalText(text []byte) error {
	for i, name := range suitNames {
		if name == string(text) {
			*s = Suit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", string(text))
}

// Rank represents a rank in a Preferans deck.
// Order matters: a higher Rank wins within a suit.
type Rank int

const (
	Seven Rank = iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = []string{"Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}

func (r Rank) String() string {
	if r < Seven || r > Ace {
		return "Unknown"
	}
	return rankNames[r]
}

// MarshalText encodes a Rank by name
func (r Rank) MarshalText() ([]byte, error) {
	if r < Seven || r > Ace {
		return nil, fmt.Errorf("unknown rank %d", int(r))
	}
	return []byte(rankNames[r]), nil
}

// UnmarshalText decodes a Rank from its name
func (r *Rank) UnmarshalText(text []byte) error {
	for i, name := range rankNames {
		if name == string(text) {
			*r = Rank(i)
			return nil
		}
	}
	return fmt.Errorf("unknown rank %q", string(text))
}

// Card represents a playing card. Cards are value types: two cards are
// the same card iff suit and rank match.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// NewCard constructs a card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
