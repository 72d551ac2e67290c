package game

import (
	"fmt"
	"math/rand"
)

// BidStateKind is where a player stands in the auction. It is set at
// most once per sub-phase and never reverts.
type BidStateKind int

const (
	BidStateNone BidStateKind = iota
	BidStateBid
	BidStatePassed
	BidStateNoPlayClaim
)

var bidStateKindNames = []string{"NoBid", "Bid", "Passed", "NoPlayClaim"}

func (k BidStateKind) String() string {
	if k < BidStateNone || k > BidStateNoPlayClaim {
		return "Unknown"
	}
	return bidStateKindNames[k]
}

// MarshalText encodes a BidStateKind by name
func (k BidStateKind) MarshalText() ([]byte, error) {
	if k < BidStateNone || k > BidStateNoPlayClaim {
		return nil, fmt.Errorf("unknown bid state %d", int(k))
	}
	return []byte(bidStateKindNames[k]), nil
}

// UnmarshalText decodes a BidStateKind from its name
func (k *BidStateKind) UnmarshalText(text []byte) error {
	for i, name := range bidStateKindNames {
		if name == string(text) {
			*k = BidStateKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown bid state %q", string(text))
}

// PlayerBidState records a player's auction standing; Bid carries the
// contract they last bid.
type PlayerBidState struct {
	Kind BidStateKind `json:"kind"`
	Bid  Contract     `json:"bid,omitempty"`
}

// Bid is the standing bid of the auction
type Bid struct {
	Value  Contract `json:"value"`
	Bidder int      `json:"bidder"`
}

// BiddingState is the escalating auction for the right to declare a
// contract. CanStealBid is set after a full circle completes: the next
// bid repeats the standing value instead of raising it.
type BiddingState struct {
	Bid         *Bid              `json:"bid,omitempty"`
	CanStealBid bool              `json:"canStealBid"`
	Players     [3]PlayerBidState `json:"players"`
}

func (s State) applyBidding(a Action, r *rand.Rand) (State, error) {
	st := *s.Bidding
	s.Bidding = &st

	switch a.Kind {
	case ActionBid:
		return s.registerBid(r), nil
	case ActionPassBid:
		st.Players[s.Turn] = PlayerBidState{Kind: BidStatePassed}
		return s.afterBidAction(r), nil
	case ActionClaimNoBid:
		if st.Players[s.Turn].Kind != BidStateNone {
			return s, ErrBadAction
		}
		return s.claimNoBid(), nil
	}

	return s, ErrInvalidAction
}

func (s State) registerBid(r *rand.Rand) State {
	st := s.Bidding

	value := ContractSpades
	if st.Bid != nil {
		if st.CanStealBid {
			value = st.Bid.Value
		} else {
			value = st.Bid.Value.Next()
		}
	}

	st.CanStealBid = false
	st.Players[s.Turn] = PlayerBidState{Kind: BidStateBid, Bid: value}
	st.Bid = &Bid{Value: value, Bidder: s.Turn}

	return s.afterBidAction(r)
}

// afterBidAction decides where the auction goes once a bid or pass has
// been recorded: keep bidding while anyone is undecided, hand the deal
// to the winner at two passes, or redeal at three.
func (s State) afterBidAction(r *rand.Rand) State {
	st := s.Bidding

	if anyUndecided(st.Players) {
		return s.advanceBidding()
	}

	switch countPassed(st.Players) {
	case 0, 1:
		return s.advanceBidding()
	case 2:
		return s.toChoosingCards()
	default:
		// everyone passed: fresh hand, next dealer
		return newHand(turnInc(s.First), s.Score, s.Refas, r)
	}
}

func (s State) advanceBidding() State {
	s.Turn = nextActiveTurn(s.Turn, s.Bidding.Players)

	if s.Turn == s.First {
		// The circle has closed since the last bid. The next bidder
		// repeats the standing value instead of raising.
		//
		// 2 -> 3 -> 4 -> Pass -> steal 4 -> 5
		s.Bidding.CanStealBid = true
	}

	return s
}

func (s State) toChoosingCards() State {
	bid := s.Bidding.Bid

	return State{
		Phase: PhaseChoosingCards,
		First: s.First,
		Turn:  bid.Bidder,
		Cards: s.Cards,
		Score: s.Score,
		Refas: s.Refas,

		ChoosingCards: &ChoosingCardsState{ContractBid: bid.Value},
	}
}

// claimNoBid opens the no-bid side branch. Recorded bids turn into
// passes so the claim loop only visits undecided seats; if nobody is
// left to ask, the claimer chooses alone.
func (s State) claimNoBid() State {
	st := s.Bidding
	st.Players[s.Turn] = PlayerBidState{Kind: BidStateNoPlayClaim}

	players := bidsAsPasses(st.Players)

	if next, ok := nextUndecided(s.Turn, players); ok {
		return State{
			Phase: PhaseNoBidClaim,
			First: s.First,
			Turn:  next,
			Cards: s.Cards,
			Score: s.Score,
			Refas: s.Refas,

			NoBidClaim: &NoBidClaimState{Players: players},
		}
	}

	return State{
		Phase: PhaseNoBidChoice,
		First: s.First,
		Turn:  s.Turn,
		Cards: s.Cards,
		Score: s.Score,
		Refas: s.Refas,

		NoBidChoice: &NoBidChoiceState{Players: players, Claims: 1},
	}
}

func anyUndecided(players [3]PlayerBidState) bool {
	for _, p := range players {
		if p.Kind == BidStateNone {
			return true
		}
	}
	return false
}

func countPassed(players [3]PlayerBidState) int {
	n := 0
	for _, p := range players {
		if p.Kind == BidStatePassed {
			n++
		}
	}
	return n
}

// nextActiveTurn finds the next seat still in the auction. At least
// one player always remains active; anything else is a bug upstream.
func nextActiveTurn(turn int, players [3]PlayerBidState) int {
	for i := 0; i < 3; i++ {
		turn = turnInc(turn)
		if players[turn].Kind != BidStatePassed {
			return turn
		}
	}
	panic("no active player remains in the auction")
}

// nextUndecided finds the next seat that has not settled on a bid
// state yet, if any
func nextUndecided(turn int, players [3]PlayerBidState) (int, bool) {
	for i := 0; i < 3; i++ {
		turn = turnInc(turn)
		if players[turn].Kind == BidStateNone {
			return turn, true
		}
	}
	return 0, false
}

func bidsAsPasses(players [3]PlayerBidState) [3]PlayerBidState {
	for i, p := range players {
		if p.Kind == BidStateBid {
			players[i] = PlayerBidState{Kind: BidStatePassed}
		}
	}
	return players
}
