package game

import (
	"fmt"
	"math/rand"

	"prefsty/deck"
)

// Phase identifies the active phase of a hand
type Phase int

const (
	PhaseBidding Phase = iota + 1
	PhaseNoBidClaim
	PhaseNoBidChoice
	PhaseChoosingCards
	PhaseChoosingContract
	PhaseResponding
	PhaseHelpOrContre
	PhaseContreDeclared
	PhasePlaying
)

var phaseNames = []string{
	"Bidding",
	"NoBidClaim",
	"NoBidChoice",
	"ChoosingCards",
	"ChoosingContract",
	"RespondingToContract",
	"HelpOrContreToContract",
	"ContreDeclared",
	"Playing",
}

func (p Phase) valid() bool {
	return p >= PhaseBidding && p <= PhasePlaying
}

func (p Phase) String() string {
	if !p.valid() {
		return "Unknown"
	}
	return phaseNames[p-PhaseBidding]
}

// MarshalText encodes a Phase by name
func (p Phase) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("unknown phase %d", int(p))
	}
	return []byte(phaseNames[p-PhaseBidding]), nil
}

// UnmarshalText decodes a Phase from its name
func (p *Phase) UnmarshalText(text []byte) error {
	for i, name := range phaseNames {
		if name == string(text) {
			*p = Phase(i) + PhaseBidding
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", string(text))
}

// State is the whole game at a point in time: the per-hand context
// (dealer, turn, cards) plus the session tallies (score, refas), and
// exactly one phase payload matching Phase. Apply never mutates a
// State in place across phases; it returns the successor value, and on
// rejection the input is untouched.
type State struct {
	Phase Phase `json:"phase"`

	// First is the hand's dealer/starting seat; Turn the seat expected
	// to act next.
	First int `json:"first"`
	Turn  int `json:"turn"`

	Cards CardsInPlay    `json:"cards"`
	Score [3]PlayerScore `json:"score"`
	Refas Refas          `json:"refas"`

	Bidding          *BiddingState          `json:"bidding,omitempty"`
	NoBidClaim       *NoBidClaimState       `json:"noBidClaim,omitempty"`
	NoBidChoice      *NoBidChoiceState      `json:"noBidChoice,omitempty"`
	ChoosingCards    *ChoosingCardsState    `json:"choosingCards,omitempty"`
	ChoosingContract *ChoosingContractState `json:"choosingContract,omitempty"`
	Responding       *RespondingState       `json:"responding,omitempty"`
	HelpOrContre     *HelpOrContreState     `json:"helpOrContre,omitempty"`
	ContreDeclared   *ContreDeclaredState   `json:"contreDeclared,omitempty"`
	Playing          *PlayingState          `json:"playing,omitempty"`
}

// NewGame starts a session: a fresh bidding hand dealt with r, every
// player on startingBulls, and numRefas creatable replay tokens.
func NewGame(first int, startingBulls int, numRefas int, r *rand.Rand) State {
	score := [3]PlayerScore{
		NewScore(startingBulls),
		NewScore(startingBulls),
		NewScore(startingBulls),
	}
	return newHand(first, score, NewRefas(numRefas), r)
}

// newHand deals the next bidding hand, carrying score and refas over
func newHand(first int, score [3]PlayerScore, refas Refas, r *rand.Rand) State {
	return State{
		Phase: PhaseBidding,
		First: first,
		Turn:  first,
		Cards: DealCards(r),
		Score: score,
		Refas: refas,

		Bidding: &BiddingState{},
	}
}

// Apply is the single entry point of the rules engine. It validates
// the action against the current phase and either returns the next
// state or an error with the input state unchanged. The rand source is
// only touched when a transition deals a new hand.
//
// Callers must treat the input state as consumed on success.
func (s State) Apply(a Action, r *rand.Rand) (State, error) {
	if a.Player != s.Turn {
		return s, ErrInvalidTurn
	}

	switch s.Phase {
	case PhaseBidding:
		return s.applyBidding(a, r)
	case PhaseNoBidClaim:
		return s.applyNoBidClaim(a)
	case PhaseNoBidChoice:
		return s.applyNoBidChoice(a)
	case PhaseChoosingCards:
		return s.applyChoosingCards(a)
	case PhaseChoosingContract:
		return s.applyChoosingContract(a)
	case PhaseResponding:
		return s.applyResponding(a, r)
	case PhaseHelpOrContre:
		return s.applyHelpOrContre(a)
	case PhaseContreDeclared:
		return s.applyContreDeclared(a)
	case PhasePlaying:
		return s.applyPlaying(a, r)
	}

	return s, ErrInvalidAction
}

// Hand returns the given seat's cards
func (s *State) Hand(seat int) []deck.Card {
	return s.Cards.Hands[seat]
}
