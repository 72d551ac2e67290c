package game

import (
	"math/rand"
	"testing"

	"prefsty/deck"
	utils "prefsty/internal"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func newTestGame(first int) State {
	return NewGame(first, 60, 1, testRand())
}

// applyAll runs a scripted action sequence, failing the test on the
// first rejection
func applyAll(t *testing.T, s State, actions ...Action) State {
	t.Helper()

	r := testRand()
	for _, a := range actions {
		next, err := s.Apply(a, r)
		if err != nil {
			t.Fatalf("player %d's %s was rejected: %s", a.Player, a.Kind, err)
		}
		s = next
	}
	return s
}

// respondingFixture drives a fresh game to negotiation: seat 0 bids,
// keeps the widow untouched and fixes Hearts.
func respondingFixture(t *testing.T) State {
	t.Helper()

	return applyAll(t, newTestGame(0),
		NewAction(0, ActionBid),
		NewAction(1, ActionPassBid),
		NewAction(2, ActionPassBid),
		NewChooseCardsAction(0, nil, nil),
		NewContractAction(0, ActionChooseContract, ContractHearts),
	)
}

// playingFixture builds a trick-play state directly, with crafted
// hands and roles
func playingFixture(contract Contract, kind ContractKind, level ContreLevel, declarer int, responses [3]PlayerResponseState, wins [3]int, hands [3][]deck.Card) State {
	data := ContractData{Value: contract, Kind: kind}
	return State{
		Phase: PhasePlaying,
		First: 0,
		Turn:  firstToPlay(data, 0, declarer),
		Cards: CardsInPlay{Hands: hands},
		Score: [3]PlayerScore{NewScore(60), NewScore(60), NewScore(60)},
		Refas: NewRefas(1),

		Playing: &PlayingState{
			Contract:  data,
			Level:     level,
			Declarer:  declarer,
			Responses: responses,
			TrickWins: wins,
		},
	}
}

func card(suit deck.Suit, rank deck.Rank) deck.Card {
	return deck.NewCard(suit, rank)
}

func assertPhase(t *testing.T, s State, want Phase) {
	t.Helper()
	utils.AssertEqual(t, s.Phase, want)
}
