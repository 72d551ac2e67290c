package game

import (
	"fmt"

	"prefsty/deck"
)

// ActionKind enumerates everything a player can try to do
type ActionKind int

const (
	ActionBid ActionKind = iota + 1
	ActionPassBid
	ActionClaimNoBid
	ActionChooseNoBidContract
	ActionChooseCards
	ActionChooseContract
	ActionAcceptContract
	ActionRejectContract
	ActionCallForHelp
	ActionDeclareContre
	ActionPassHelpContre
	ActionPlayCard
)

var actionKindNames = []string{
	"Bid",
	"PassBid",
	"ClaimNoBid",
	"ChooseNoBidContract",
	"ChooseCards",
	"ChooseContract",
	"AcceptContract",
	"RejectContract",
	"CallForHelp",
	"DeclareContre",
	"PassHelpContre",
	"PlayCard",
}

func (k ActionKind) valid() bool {
	return k >= ActionBid && k <= ActionPlayCard
}

func (k ActionKind) String() string {
	if !k.valid() {
		return "Unknown"
	}
	return actionKindNames[k-ActionBid]
}

// MarshalText encodes an ActionKind by name
func (k ActionKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("unknown action kind %d", int(k))
	}
	return []byte(actionKindNames[k-ActionBid]), nil
}

// UnmarshalText decodes an ActionKind from its name
func (k *ActionKind) UnmarshalText(text []byte) error {
	for i, name := range actionKindNames {
		if name == string(text) {
			*k = ActionKind(i) + ActionBid
			return nil
		}
	}
	return fmt.Errorf("unknown action kind %q", string(text))
}

// CardChoice is the declarer's widow exchange: cards taken from the
// widow and cards discarded from hand in their place.
type CardChoice struct {
	Take    []deck.Card `json:"take"`
	Discard []deck.Card `json:"discard"`
}

// Action is a proposed move by one player. Contract, Choice and Card
// are payloads; only the one matching the Kind is consulted.
type Action struct {
	Player   int         `json:"player"`
	Kind     ActionKind  `json:"kind"`
	Contract Contract    `json:"contract,omitempty"`
	Choice   *CardChoice `json:"choice,omitempty"`
	Card     *deck.Card  `json:"card,omitempty"`
}

// NewAction constructs a payload-free action
func NewAction(player int, kind ActionKind) Action {
	return Action{Player: player, Kind: kind}
}

// NewContractAction constructs an action carrying a contract
func NewContractAction(player int, kind ActionKind, contract Contract) Action {
	return Action{Player: player, Kind: kind, Contract: contract}
}

// NewPlayCardAction constructs a PlayCard action
func NewPlayCardAction(player int, card deck.Card) Action {
	return Action{Player: player, Kind: ActionPlayCard, Card: &card}
}

// NewChooseCardsAction constructs the widow exchange action
func NewChooseCardsAction(player int, take, discard []deck.Card) Action {
	return Action{
		Player: player,
		Kind:   ActionChooseCards,
		Choice: &CardChoice{Take: take, Discard: discard},
	}
}
