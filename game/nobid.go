package game

// NoBidClaimState is the side branch of the auction: someone claims
// that nobody should play, and every undecided seat in turn either
// joins the claim or passes.
type NoBidClaimState struct {
	Players [3]PlayerBidState `json:"players"`
}

func (s State) applyNoBidClaim(a Action) (State, error) {
	st := *s.NoBidClaim
	s.NoBidClaim = &st

	switch a.Kind {
	case ActionClaimNoBid:
		if st.Players[s.Turn].Kind != BidStateNone {
			return s, ErrBadAction
		}
		st.Players[s.Turn] = PlayerBidState{Kind: BidStateNoPlayClaim}
		return s.afterClaimAction(), nil
	case ActionPassBid:
		st.Players[s.Turn] = PlayerBidState{Kind: BidStatePassed}
		return s.afterClaimAction(), nil
	}

	return s, ErrInvalidAction
}

// afterClaimAction keeps the loop going while seats are undecided;
// once the circle closes, the claimants hold their mini-auction.
func (s State) afterClaimAction() State {
	st := s.NoBidClaim

	if next, ok := nextUndecided(s.Turn, st.Players); ok {
		s.Turn = next
		return s
	}

	return State{
		Phase: PhaseNoBidChoice,
		First: s.First,
		Turn:  firstClaimant(s.First, st.Players),
		Cards: s.Cards,
		Score: s.Score,
		Refas: s.Refas,

		NoBidChoice: &NoBidChoiceState{
			Players: st.Players,
			Claims:  countClaims(st.Players),
		},
	}
}

// firstClaimant finds the first no-play claimant scanning from the
// dealer's seat
func firstClaimant(first int, players [3]PlayerBidState) int {
	seat := first
	for i := 0; i < 3; i++ {
		if players[seat].Kind == BidStateNoPlayClaim {
			return seat
		}
		seat = turnInc(seat)
	}
	panic("no claimant remains in the no-bid branch")
}

func countClaims(players [3]PlayerBidState) int {
	n := 0
	for _, p := range players {
		if p.Kind == BidStateNoPlayClaim {
			n++
		}
	}
	return n
}

// NoBidChoiceState resolves the claimants' mini-auction: each claimant
// in turn either raises the chosen no-bid contract or passes once a
// contract stands. Claims counts the choices still owed.
type NoBidChoiceState struct {
	Players [3]PlayerBidState `json:"players"`
	Bid     *Bid              `json:"bid,omitempty"`
	Claims  int               `json:"claims"`
}

func (s State) applyNoBidChoice(a Action) (State, error) {
	st := *s.NoBidChoice
	s.NoBidChoice = &st

	switch a.Kind {
	case ActionChooseNoBidContract:
		if !a.Contract.valid() {
			return s, ErrBadAction
		}
		if st.Bid != nil && a.Contract <= st.Bid.Value {
			return s, ErrBadAction
		}
		st.Bid = &Bid{Value: a.Contract, Bidder: s.Turn}
		return s.afterChoiceAction(), nil
	case ActionPassBid:
		if st.Bid == nil {
			return s, ErrBadAction
		}
		return s.afterChoiceAction(), nil
	}

	return s, ErrInvalidAction
}

func (s State) afterChoiceAction() State {
	st := s.NoBidChoice
	st.Claims--

	if st.Claims > 0 {
		s.Turn = nextClaimant(s.Turn, st.Players)
		return s
	}

	bid := st.Bid
	return s.toResponding(ContractData{Value: bid.Value, Kind: KindNoBid}, bid.Bidder)
}

func nextClaimant(turn int, players [3]PlayerBidState) int {
	for i := 0; i < 3; i++ {
		turn = turnInc(turn)
		if players[turn].Kind == BidStateNoPlayClaim {
			return turn
		}
	}
	panic("no claimant remains in the no-bid branch")
}
