package game

import (
	"math/rand"

	"prefsty/deck"
)

const (
	handSize  = 10
	widowSize = 2
)

// CardsInPlay is every card of the hand: three player hands plus the
// two-card widow. Together they always partition the 32-card deck; the
// exchange and play transitions move cards, they never create or drop
// them.
type CardsInPlay struct {
	Hands  [3][]deck.Card `json:"hands"`
	Hidden []deck.Card    `json:"hidden"`
}

// DealCards shuffles a fresh deck with the given source and deals
// 10 cards to each seat plus the widow.
func DealCards(r *rand.Rand) CardsInPlay {
	d := deck.New()
	d.Shuffle(r)

	var cards CardsInPlay
	for i := range cards.Hands {
		cards.Hands[i] = d.Deal(handSize)
	}
	cards.Hidden = d.Deal(widowSize)
	return cards
}
