package game

import (
	"fmt"
	"math/rand"
)

// PlayerResponseState is a non-declarer's negotiation outcome. It
// starts at NoResponse, becomes Accepted or Rejected, and may end up
// Caller, Called or Contrer during the help/contre round.
type PlayerResponseState int

const (
	ResponseNone PlayerResponseState = iota
	ResponseAccepted
	ResponseRejected
	ResponseCaller
	ResponseCalled
	ResponseContrer
)

var responseNames = []string{"NoResponse", "Accepted", "Rejected", "Caller", "Called", "Contrer"}

func (r PlayerResponseState) String() string {
	if r < ResponseNone || r > ResponseContrer {
		return "Unknown"
	}
	return responseNames[r]
}

// MarshalText encodes a PlayerResponseState by name
func (r PlayerResponseState) MarshalText() ([]byte, error) {
	if r < ResponseNone || r > ResponseContrer {
		return nil, fmt.Errorf("unknown response state %d", int(r))
	}
	return []byte(responseNames[r]), nil
}

// UnmarshalText decodes a PlayerResponseState from its name
func (r *PlayerResponseState) UnmarshalText(text []byte) error {
	for i, name := range responseNames {
		if name == string(text) {
			*r = PlayerResponseState(i)
			return nil
		}
	}
	return fmt.Errorf("unknown response state %q", string(text))
}

// RespondingState: the two non-declarers accept or reject the contract
type RespondingState struct {
	Contract  ContractData           `json:"contract"`
	Declarer  int                    `json:"declarer"`
	Responses [3]PlayerResponseState `json:"responses"`
}

func (s State) applyResponding(a Action, r *rand.Rand) (State, error) {
	st := *s.Responding
	s.Responding = &st

	switch a.Kind {
	case ActionAcceptContract:
		if a.Player == st.Declarer {
			return s, ErrBadAction
		}
		st.Responses[s.Turn] = ResponseAccepted
		return s.afterResponse(r), nil
	case ActionRejectContract:
		if a.Player == st.Declarer {
			return s, ErrBadAction
		}
		st.Responses[s.Turn] = ResponseRejected
		return s.afterResponse(r), nil
	}

	return s, ErrInvalidAction
}

func (s State) afterResponse(r *rand.Rand) State {
	st := s.Responding

	if countResponses(st.Responses) < 2 {
		s.Turn = turnInc(s.Turn)
		if s.Turn == st.Declarer {
			s.Turn = turnInc(s.Turn)
		}
		return s
	}

	if countRejects(st.Responses) < 2 {
		return s.toHelpOrContre()
	}

	// both rejected: the declarer wins the hand outright at base stake
	s.Score[st.Declarer].applyResult(st.Contract.Score(NoContre), true)
	return newHand(turnInc(s.First), s.Score, s.Refas, r)
}

func countResponses(responses [3]PlayerResponseState) int {
	n := 0
	for _, r := range responses {
		if r != ResponseNone {
			n++
		}
	}
	return n
}

func countRejects(responses [3]PlayerResponseState) int {
	n := 0
	for _, r := range responses {
		if r == ResponseRejected {
			n++
		}
	}
	return n
}

func (s State) toHelpOrContre() State {
	st := s.Responding

	return State{
		Phase: PhaseHelpOrContre,
		First: s.First,
		Turn:  turnInc(s.Turn),
		Cards: s.Cards,
		Score: s.Score,
		Refas: s.Refas,

		HelpOrContre: &HelpOrContreState{
			Contract:  st.Contract,
			Declarer:  st.Declarer,
			Responses: st.Responses,
		},
	}
}

// HelpOrContreState: after the responses, each seat in turn may call
// their rejecting partner back in, raise the stakes with a contre, or
// pass. The round ends when the turn would come back to the declarer.
type HelpOrContreState struct {
	Contract  ContractData           `json:"contract"`
	Declarer  int                    `json:"declarer"`
	Responses [3]PlayerResponseState `json:"responses"`
}

func (s State) applyHelpOrContre(a Action) (State, error) {
	st := *s.HelpOrContre
	s.HelpOrContre = &st

	switch a.Kind {
	case ActionCallForHelp:
		if a.Player == st.Declarer {
			return s, ErrBadAction
		}
		partner := third(a.Player, st.Declarer)
		if st.Responses[partner] != ResponseRejected {
			return s, ErrBadAction
		}
		st.Responses[s.Turn] = ResponseCaller
		st.Responses[partner] = ResponseCalled
		return s.toPlaying(st.Contract, NoContre, st.Declarer, st.Responses), nil

	case ActionDeclareContre:
		if a.Player == st.Declarer {
			return s, ErrBadAction
		}
		partner := third(a.Player, st.Declarer)
		st.Responses[s.Turn] = ResponseContrer
		st.Responses[partner] = ResponseCalled
		return State{
			Phase: PhaseContreDeclared,
			First: s.First,
			Turn:  st.Declarer,
			Cards: s.Cards,
			Score: s.Score,
			Refas: s.Refas,

			ContreDeclared: &ContreDeclaredState{
				Contract:  st.Contract,
				Declarer:  st.Declarer,
				Level:     Contre,
				Responses: st.Responses,
			},
		}, nil

	case ActionPassHelpContre:
		next := turnInc(s.Turn)
		if next == st.Declarer {
			return s.toPlaying(st.Contract, NoContre, st.Declarer, st.Responses), nil
		}
		s.Turn = next
		return s, nil
	}

	return s, ErrInvalidAction
}

// ContreDeclaredState: the declarer and the contrer take turns raising
// the stake ladder. Reaching the top forces play.
type ContreDeclaredState struct {
	Contract  ContractData           `json:"contract"`
	Declarer  int                    `json:"declarer"`
	Level     ContreLevel            `json:"level"`
	Responses [3]PlayerResponseState `json:"responses"`
}

func (st *ContreDeclaredState) contrer() int {
	for i, r := range st.Responses {
		if r == ResponseContrer {
			return i
		}
	}
	panic("no contrer recorded in contre escalation")
}

func (s State) applyContreDeclared(a Action) (State, error) {
	st := *s.ContreDeclared
	s.ContreDeclared = &st

	switch a.Kind {
	case ActionDeclareContre:
		// turn enforcement already guarantees the player is not
		// answering their own declaration
		st.Level = st.Level.Next()
		if st.Level == FuckYouContre {
			return s.toPlaying(st.Contract, st.Level, st.Declarer, st.Responses), nil
		}
		if s.Turn == st.Declarer {
			s.Turn = st.contrer()
		} else {
			s.Turn = st.Declarer
		}
		return s, nil

	case ActionPassHelpContre:
		return s.toPlaying(st.Contract, st.Level, st.Declarer, st.Responses), nil
	}

	return s, ErrInvalidAction
}
