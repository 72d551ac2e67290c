package game

import "prefsty/deck"

// turnInc rotates a seat index forward
func turnInc(i int) int {
	return (i + 1) % 3
}

// turnDec rotates a seat index backward
func turnDec(i int) int {
	return (i + 2) % 3
}

// third returns the remaining seat given two distinct seats
func third(a, b int) int {
	return 3 - a - b
}

func containsCard(cards []deck.Card, target deck.Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}

func containsAllCards(container []deck.Card, searched []deck.Card) bool {
	for _, c := range searched {
		if !containsCard(container, c) {
			return false
		}
	}
	return true
}

func cardsUnique(cards []deck.Card) bool {
	seen := map[deck.Card]struct{}{}
	for _, c := range cards {
		if _, ok := seen[c]; ok {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}

// removeCards returns a new slice with the given cards taken out.
// Callers must have checked membership beforehand.
func removeCards(container []deck.Card, toRemove []deck.Card) []deck.Card {
	out := make([]deck.Card, 0, len(container))
	removed := map[deck.Card]struct{}{}
	for _, c := range toRemove {
		removed[c] = struct{}{}
	}
	for _, c := range container {
		if _, ok := removed[c]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

func hasSuit(cards []deck.Card, suit deck.Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}
