package game

import (
	"math/rand"

	"prefsty/deck"
)

const (
	tricksPerHand = 10

	// declarerTarget is the trick count a declarer needs; a pair of
	// responders deciding the hand early needs deciderTarget between
	// them.
	declarerTarget = 6
	deciderTarget  = 5

	// betlNominalTricks stands in for the responders' trick counts
	// when a Betl collapses on the declarer's first trick; soups are
	// computed from it.
	betlNominalTricks = 5
)

// RoundState is the trick in progress: who has played what, and the
// suit that was led.
type RoundState struct {
	Played [3]*deck.Card `json:"played"`
	Suit   *deck.Suit    `json:"suit,omitempty"`
}

func (r *RoundState) complete() bool {
	return r.Played[0] != nil && r.Played[1] != nil && r.Played[2] != nil
}

// winnerInSuit finds the seat holding the highest card of the suit in
// this trick, if any card of it was played
func (r *RoundState) winnerInSuit(suit deck.Suit) (int, bool) {
	winner, found := 0, false
	var best deck.Rank
	for seat, c := range r.Played {
		if c == nil || c.Suit != suit {
			continue
		}
		if !found || c.Rank > best {
			winner, best, found = seat, c.Rank, true
		}
	}
	return winner, found
}

// winner resolves a complete trick: highest trump if one was played,
// highest card of the led suit otherwise
func (r *RoundState) winner(trump *deck.Suit) int {
	if trump != nil {
		if seat, ok := r.winnerInSuit(*trump); ok {
			return seat
		}
	}
	seat, _ := r.winnerInSuit(*r.Suit)
	return seat
}

// PlayingState is trick play under a settled contract
type PlayingState struct {
	Contract  ContractData           `json:"contract"`
	Level     ContreLevel            `json:"level"`
	Declarer  int                    `json:"declarer"`
	Responses [3]PlayerResponseState `json:"responses"`
	TrickWins [3]int                 `json:"trickWins"`
	Round     RoundState             `json:"round"`
}

func (st *PlayingState) trump() *deck.Suit {
	if suit, ok := st.Contract.Value.Trump(); ok {
		return &suit
	}
	return nil
}

func (st *PlayingState) tricksPlayed() int {
	return st.TrickWins[0] + st.TrickWins[1] + st.TrickWins[2]
}

// firstToPlay picks the seat leading the first trick: the dealer for
// suit contracts, the declarer for Betl and Sans
func firstToPlay(contract ContractData, first, declarer int) int {
	if contract.Value == ContractBetl || contract.Value == ContractSans {
		return declarer
	}
	return first
}

func (s State) toPlaying(contract ContractData, level ContreLevel, declarer int, responses [3]PlayerResponseState) State {
	return State{
		Phase: PhasePlaying,
		First: s.First,
		Turn:  firstToPlay(contract, s.First, declarer),
		Cards: s.Cards,
		Score: s.Score,
		Refas: s.Refas,

		Playing: &PlayingState{
			Contract:  contract,
			Level:     level,
			Declarer:  declarer,
			Responses: responses,
		},
	}
}

func (s State) applyPlaying(a Action, r *rand.Rand) (State, error) {
	if a.Kind != ActionPlayCard {
		return s, ErrInvalidAction
	}
	if a.Card == nil {
		return s, ErrBadAction
	}

	st := *s.Playing
	s.Playing = &st

	if err := s.validatePlayCard(a.Player, *a.Card); err != nil {
		return s, err
	}

	s.Cards.Hands[s.Turn] = removeCards(s.Cards.Hands[s.Turn], []deck.Card{*a.Card})

	card := *a.Card
	st.Round.Played[s.Turn] = &card
	if st.Round.Suit == nil {
		suit := card.Suit
		st.Round.Suit = &suit
	}

	if !st.Round.complete() {
		s.Turn = turnInc(s.Turn)
		return s, nil
	}

	winner := st.Round.winner(st.trump())
	st.TrickWins[winner]++
	st.Round = RoundState{}
	s.Turn = winner

	if s.handOver() {
		return s.settleHand(r), nil
	}
	return s, nil
}

// validatePlayCard enforces the follow rules: a card of the led suit
// if the player has one, otherwise a trump if the player has one,
// otherwise anything.
func (s *State) validatePlayCard(player int, card deck.Card) error {
	st := s.Playing
	hand := s.Cards.Hands[player]

	if !containsCard(hand, card) {
		return ErrBadAction
	}

	if st.Round.Suit == nil || card.Suit == *st.Round.Suit {
		return nil
	}
	if hasSuit(hand, *st.Round.Suit) {
		return ErrBadAction
	}
	if trump := st.trump(); trump != nil && hasSuit(hand, *trump) {
		if card.Suit != *trump {
			return ErrBadAction
		}
	}
	return nil
}

// handOver detects the end of the hand. A Betl collapses the moment
// the declarer wins a trick; any contract ends after ten tricks or
// once the responder pair holds five, when nothing can change the
// outcome.
func (s *State) handOver() bool {
	st := s.Playing

	if st.Contract.Value == ContractBetl && st.TrickWins[st.Declarer] > 0 {
		return true
	}
	if st.tricksPlayed() == tricksPerHand {
		return true
	}

	goer1 := turnInc(st.Declarer)
	goer2 := turnInc(goer1)
	return st.TrickWins[goer1]+st.TrickWins[goer2] >= deciderTarget
}

// settleHand runs the scoring pass once and deals the next hand
func (s State) settleHand(r *rand.Rand) State {
	st := s.Playing
	wins := st.TrickWins

	if st.Contract.Value == ContractBetl && wins[st.Declarer] > 0 {
		// busted Betl: responders get nominal counts for the soups
		wins[turnInc(st.Declarer)] = betlNominalTricks
		wins[turnInc(turnInc(st.Declarer))] = betlNominalTricks
	}

	value := st.Contract.Score(st.Level)

	s.Score[st.Declarer].applyResult(value, declarerWon(st.Contract.Value, wins[st.Declarer]))

	goer1 := turnInc(st.Declarer)
	s.settleGoer(goer1, wins, value)
	s.settleGoer(turnInc(goer1), wins, value)

	return newHand(turnInc(s.First), s.Score, s.Refas, r)
}

func declarerWon(contract Contract, tricks int) bool {
	if contract == ContractBetl {
		return tricks == 0
	}
	return tricks >= declarerTarget
}

// settleGoer scores one responder by role. Rejected and Called seats
// score nothing; the rest either collect soups for the tricks they are
// answerable for, or pay the contract for falling short of their
// threshold.
func (s *State) settleGoer(goer int, wins [3]int, value int) {
	st := s.Playing
	resp := st.Responses[goer]

	if resp == ResponseRejected || resp == ResponseCalled || resp == ResponseNone {
		return
	}

	other := third(goer, st.Declarer)
	pair := wins[goer] + wins[other]
	pool := soupPool(st.Declarer, other)

	switch resp {
	case ResponseAccepted:
		if wins[goer] >= 2 || pair >= 4 {
			s.Score[goer].applySoups(pool, wins[goer], value)
		} else {
			s.Score[goer].applyResult(value, false)
		}
	case ResponseCaller:
		if pair >= 4 {
			s.Score[goer].applySoups(pool, wins[goer], value)
			s.Score[goer].applySoups(pool, wins[other], value)
		} else {
			s.Score[goer].applyResult(value, false)
		}
	case ResponseContrer:
		if pair >= deciderTarget {
			s.Score[goer].applySoups(pool, wins[goer], value)
			s.Score[goer].applySoups(pool, wins[other], value)
		} else {
			s.Score[goer].applyResult(value, false)
		}
	}
}

// soupPool picks which of the two soup pools a responder writes into,
// by comparing the declarer's seat with the other responder's
func soupPool(declarer, other int) int {
	if declarer > other {
		return 1
	}
	return 0
}
