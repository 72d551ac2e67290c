package game

// ChoosingCardsState: the auction winner inspects the widow and
// exchanges cards before fixing the final contract.
type ChoosingCardsState struct {
	ContractBid Contract `json:"contractBid"`
}

// An exchange must keep the declarer's hand at ten cards: every card
// taken from the widow is matched by a discard. The empty exchange is
// legal.
func validExchangeCounts(choice *CardChoice) bool {
	return len(choice.Take) == len(choice.Discard) &&
		len(choice.Take) <= widowSize
}

func (s State) applyChoosingCards(a Action) (State, error) {
	if a.Kind != ActionChooseCards {
		return s, ErrInvalidAction
	}
	if a.Choice == nil {
		return s, ErrBadAction
	}
	if err := s.validateChooseCards(a.Choice); err != nil {
		return s, err
	}

	hand := s.Cards.Hands[s.Turn]
	hidden := s.Cards.Hidden

	// swap: discards leave the hand for the widow, takes the reverse.
	// Card conservation holds by construction.
	newHand := append(removeCards(hand, a.Choice.Discard), a.Choice.Take...)
	newHidden := append(removeCards(hidden, a.Choice.Take), a.Choice.Discard...)

	s.Cards.Hands[s.Turn] = newHand
	s.Cards.Hidden = newHidden

	return State{
		Phase: PhaseChoosingContract,
		First: s.First,
		Turn:  s.Turn,
		Cards: s.Cards,
		Score: s.Score,
		Refas: s.Refas,

		ChoosingContract: &ChoosingContractState{
			ContractBid: s.ChoosingCards.ContractBid,
		},
	}, nil
}

func (s State) validateChooseCards(choice *CardChoice) error {
	if !validExchangeCounts(choice) {
		return ErrBadAction
	}
	if !cardsUnique(choice.Take) || !cardsUnique(choice.Discard) {
		return ErrBadAction
	}
	if !containsAllCards(s.Cards.Hidden, choice.Take) {
		return ErrBadAction
	}
	if !containsAllCards(s.Cards.Hands[s.Turn], choice.Discard) {
		return ErrBadAction
	}
	return nil
}

// ChoosingContractState: the declarer fixes the final contract, which
// must strictly exceed the bid that won the auction.
type ChoosingContractState struct {
	ContractBid Contract `json:"contractBid"`
}

func (s State) applyChoosingContract(a Action) (State, error) {
	if a.Kind != ActionChooseContract {
		return s, ErrInvalidAction
	}
	if !a.Contract.valid() || a.Contract <= s.ChoosingContract.ContractBid {
		return s, ErrBadAction
	}

	return s.toResponding(ContractData{Value: a.Contract, Kind: KindBid}, s.Turn), nil
}

// toResponding opens negotiation on a fixed contract, starting with
// the seat after the declarer
func (s State) toResponding(contract ContractData, declarer int) State {
	return State{
		Phase: PhaseResponding,
		First: s.First,
		Turn:  turnInc(declarer),
		Cards: s.Cards,
		Score: s.Score,
		Refas: s.Refas,

		Responding: &RespondingState{
			Contract: contract,
			Declarer: declarer,
		},
	}
}
