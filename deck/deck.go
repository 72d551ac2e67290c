package deck

import (
	"math/rand"
)

// Size is the number of cards in a Preferans deck
const Size = 32

// Deck represents a deck of cards
type Deck []Card

// New creates a full 32-card deck: every suit crossed with every rank
func New() Deck {
	cards := make(Deck, 0, Size)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Seven; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards. The random source is supplied by
// the caller so that deals can be reproduced in tests and replays.
func (d Deck) Shuffle(r *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal deals n cards from the top of the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}
