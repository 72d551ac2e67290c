package protocol

import (
	"prefsty/deck"
	"prefsty/game"
)

// GameView is the state as one seat is allowed to see it: the shared
// phase facts plus that seat's own hand. Other hands never leave the
// server, and the widow is only visible to the declarer while they are
// choosing cards.
type GameView struct {
	Phase game.Phase          `json:"phase"`
	First int                 `json:"first"`
	Turn  int                 `json:"turn"`
	Hand  []deck.Card         `json:"hand"`
	Widow []deck.Card         `json:"widow,omitempty"`
	Score [3]game.PlayerScore `json:"score"`
	Refas game.Refas          `json:"refas"`

	Bidding          *game.BiddingState          `json:"bidding,omitempty"`
	NoBidClaim       *game.NoBidClaimState       `json:"noBidClaim,omitempty"`
	NoBidChoice      *game.NoBidChoiceState      `json:"noBidChoice,omitempty"`
	ChoosingCards    *game.ChoosingCardsState    `json:"choosingCards,omitempty"`
	ChoosingContract *game.ChoosingContractState `json:"choosingContract,omitempty"`
	Responding       *game.RespondingState       `json:"responding,omitempty"`
	HelpOrContre     *game.HelpOrContreState     `json:"helpOrContre,omitempty"`
	ContreDeclared   *game.ContreDeclaredState   `json:"contreDeclared,omitempty"`
	Playing          *game.PlayingState          `json:"playing,omitempty"`
}

// NewGameView builds the redacted view of s for the given seat
func NewGameView(s game.State, seat int) GameView {
	view := GameView{
		Phase: s.Phase,
		First: s.First,
		Turn:  s.Turn,
		Hand:  s.Hand(seat),
		Score: s.Score,
		Refas: s.Refas,

		Bidding:          s.Bidding,
		NoBidClaim:       s.NoBidClaim,
		NoBidChoice:      s.NoBidChoice,
		ChoosingCards:    s.ChoosingCards,
		ChoosingContract: s.ChoosingContract,
		Responding:       s.Responding,
		HelpOrContre:     s.HelpOrContre,
		ContreDeclared:   s.ContreDeclared,
		Playing:          s.Playing,
	}

	if s.Phase == game.PhaseChoosingCards && seat == s.Turn {
		view.Widow = s.Cards.Hidden
	}

	return view
}
