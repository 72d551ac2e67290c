package game

import (
	"testing"

	utils "prefsty/internal"
)

func TestBiddingOpeningBid(t *testing.T) {
	s := applyAll(t, newTestGame(0), NewAction(0, ActionBid))

	assertPhase(t, s, PhaseBidding)
	utils.AssertEqual(t, s.Turn, 1)
	utils.AssertEqual(t, s.Bidding.Bid.Value, ContractSpades)
	utils.AssertEqual(t, s.Bidding.Bid.Bidder, 0)
	utils.AssertEqual(t, s.Bidding.Players[0].Kind, BidStateBid)
}

func TestBiddingOutOfTurn(t *testing.T) {
	s := newTestGame(0)

	_, err := s.Apply(NewAction(1, ActionBid), testRand())
	if err != ErrInvalidTurn {
		t.Fatalf("got %v, want %v", err, ErrInvalidTurn)
	}
}

func TestBiddingRejectsForeignActions(t *testing.T) {
	s := newTestGame(0)

	_, err := s.Apply(NewAction(0, ActionPlayCard), testRand())
	if err != ErrInvalidAction {
		t.Fatalf("got %v, want %v", err, ErrInvalidAction)
	}
}

func TestBiddingEscalation(t *testing.T) {
	s := applyAll(t, newTestGame(0),
		NewAction(0, ActionBid),
		NewAction(1, ActionBid),
	)

	t.Log("each bid raises the standing contract by one level")
	utils.AssertEqual(t, s.Bidding.Bid.Value, ContractDiamonds)
	utils.AssertEqual(t, s.Bidding.Bid.Bidder, 1)

	s = applyAll(t, s, NewAction(2, ActionBid))
	utils.AssertEqual(t, s.Bidding.Bid.Value, ContractHearts)

	t.Log("once the circle closes, the first seat may steal at value")
	utils.AssertEqual(t, s.Turn, 0)
	utils.AssertTrue(t, s.Bidding.CanStealBid)
}

func TestBiddingStealKeepsValue(t *testing.T) {
	s := applyAll(t, newTestGame(0),
		NewAction(0, ActionBid),
		NewAction(1, ActionBid),
		NewAction(2, ActionBid),
		NewAction(0, ActionPassBid),
		NewAction(1, ActionBid),
	)

	t.Log("the steal repeats Hearts instead of raising it")
	utils.AssertEqual(t, s.Bidding.Bid.Value, ContractHearts)
	utils.AssertEqual(t, s.Bidding.Bid.Bidder, 1)

	s = applyAll(t, s, NewAction(2, ActionPassBid))

	t.Log("two passes end the auction in the bidder's favour")
	assertPhase(t, s, PhaseChoosingCards)
	utils.AssertEqual(t, s.Turn, 1)
	utils.AssertEqual(t, s.ChoosingCards.ContractBid, ContractHearts)
}

func TestBiddingTwoPassesEndAuction(t *testing.T) {
	t.Run("bid then two passes", func(t *testing.T) {
		s := applyAll(t, newTestGame(0),
			NewAction(0, ActionBid),
			NewAction(1, ActionPassBid),
			NewAction(2, ActionPassBid),
		)

		assertPhase(t, s, PhaseChoosingCards)
		utils.AssertEqual(t, s.Turn, 0)
		utils.AssertEqual(t, s.ChoosingCards.ContractBid, ContractSpades)
	})

	t.Run("two passes then a bid", func(t *testing.T) {
		s := applyAll(t, newTestGame(0),
			NewAction(0, ActionPassBid),
			NewAction(1, ActionPassBid),
			NewAction(2, ActionBid),
		)

		assertPhase(t, s, PhaseChoosingCards)
		utils.AssertEqual(t, s.Turn, 2)
		utils.AssertEqual(t, s.ChoosingCards.ContractBid, ContractSpades)
	})
}

func TestBiddingAllPassRedeals(t *testing.T) {
	s := applyAll(t, newTestGame(0),
		NewAction(0, ActionPassBid),
		NewAction(1, ActionPassBid),
		NewAction(2, ActionPassBid),
	)

	t.Log("three passes deal a fresh hand with the next starter")
	assertPhase(t, s, PhaseBidding)
	utils.AssertEqual(t, s.First, 1)
	utils.AssertEqual(t, s.Turn, 1)
	if s.Bidding.Bid != nil {
		t.Error("fresh auction should carry no standing bid")
	}
	for _, hand := range s.Cards.Hands {
		utils.AssertEqual(t, len(hand), 10)
	}
}

func TestBiddingSkipsPassedSeats(t *testing.T) {
	s := applyAll(t, newTestGame(0),
		NewAction(0, ActionBid),
		NewAction(1, ActionPassBid),
		NewAction(2, ActionBid),
		NewAction(0, ActionBid),
	)

	t.Log("seat 1 has passed, so the turn moves straight from 0 to 2")
	utils.AssertEqual(t, s.Turn, 2)
	utils.AssertEqual(t, s.Bidding.Bid.Value, ContractDiamonds)
	utils.AssertEqual(t, s.Bidding.Bid.Bidder, 0)
}

func TestBiddingRejectedActionLeavesStateUntouched(t *testing.T) {
	s := applyAll(t, newTestGame(0), NewAction(0, ActionBid))

	got, err := s.Apply(NewContractAction(1, ActionChooseContract, ContractSans), testRand())
	utils.AssertErrored(t, err)
	utils.AssertDeepEqual(t, got, s)
}

func TestClaimNoBid(t *testing.T) {
	t.Run("claim with undecided seats opens the claim loop", func(t *testing.T) {
		s := applyAll(t, newTestGame(0), NewAction(0, ActionClaimNoBid))

		assertPhase(t, s, PhaseNoBidClaim)
		utils.AssertEqual(t, s.Turn, 1)
		utils.AssertEqual(t, s.NoBidClaim.Players[0].Kind, BidStateNoPlayClaim)
	})

	t.Run("claim by the last undecided seat goes straight to the choice", func(t *testing.T) {
		s := applyAll(t, newTestGame(0),
			NewAction(0, ActionBid),
			NewAction(1, ActionPassBid),
			NewAction(2, ActionClaimNoBid),
		)

		assertPhase(t, s, PhaseNoBidChoice)
		utils.AssertEqual(t, s.Turn, 2)
		utils.AssertEqual(t, s.NoBidChoice.Claims, 1)

		t.Log("recorded bids count as passes inside the no-bid branch")
		utils.AssertEqual(t, s.NoBidChoice.Players[0].Kind, BidStatePassed)
	})

	t.Run("a seat that already bid cannot claim", func(t *testing.T) {
		s := applyAll(t, newTestGame(0),
			NewAction(0, ActionBid),
			NewAction(1, ActionBid),
			NewAction(2, ActionBid),
		)

		_, err := s.Apply(NewAction(0, ActionClaimNoBid), testRand())
		if err != ErrBadAction {
			t.Fatalf("got %v, want %v", err, ErrBadAction)
		}
	})
}
