package game

import (
	"fmt"

	"prefsty/deck"
)

// Contract is a game contract. Contracts are totally ordered and carry
// their Preferans numeric value (2..7); every raise rule compares them.
type Contract int

const (
	ContractSpades Contract = iota + 2
	ContractDiamonds
	ContractHearts
	ContractClubs
	ContractBetl
	ContractSans
)

var contractNames = []string{"Spades", "Diamonds", "Hearts", "Clubs", "Betl", "Sans"}

func (c Contract) valid() bool {
	return c >= ContractSpades && c <= ContractSans
}

func (c Contract) String() string {
	if !c.valid() {
		return "Unknown"
	}
	return contractNames[c-ContractSpades]
}

// Next steps the contract one level up, saturating at Sans
func (c Contract) Next() Contract {
	if c >= ContractSans {
		return ContractSans
	}
	return c + 1
}

// Trump returns the trump suit for suit contracts. Betl and Sans are
// played without trumps.
func (c Contract) Trump() (deck.Suit, bool) {
	switch c {
	case ContractSpades:
		return deck.Spades, true
	case ContractDiamonds:
		return deck.Diamonds, true
	case ContractHearts:
		return deck.Hearts, true
	case ContractClubs:
		return deck.Clubs, true
	}
	return 0, false
}

// MarshalText encodes a Contract by name
func (c Contract) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("unknown contract %d", int(c))
	}
	return []byte(contractNames[c-ContractSpades]), nil
}

// UnmarshalText decodes a Contract from its name
func (c *Contract) UnmarshalText(text []byte) error {
	for i, name := range contractNames {
		if name == string(text) {
			*c = Contract(i) + ContractSpades
			return nil
		}
	}
	return fmt.Errorf("unknown contract %q", string(text))
}

// ContractKind records which auction produced the contract. A no-bid
// contract is worth two more than the same bid contract.
type ContractKind int

const (
	KindBid ContractKind = iota
	KindNoBid
)

var contractKindNames = []string{"Bid", "NoBid"}

func (k ContractKind) String() string {
	if k < KindBid || k > KindNoBid {
		return "Unknown"
	}
	return contractKindNames[k]
}

// MarshalText encodes a ContractKind by name
func (k ContractKind) MarshalText() ([]byte, error) {
	if k < KindBid || k > KindNoBid {
		return nil, fmt.Errorf("unknown contract kind %d", int(k))
	}
	return []byte(contractKindNames[k]), nil
}

// UnmarshalText decodes a ContractKind from its name
func (k *ContractKind) UnmarshalText(text []byte) error {
	for i, name := range contractKindNames {
		if name == string(text) {
			*k = ContractKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown contract kind %q", string(text))
}

// ContractData is the final contract under negotiation or play
type ContractData struct {
	Value Contract     `json:"value"`
	Kind  ContractKind `json:"kind"`
}

// Score computes what the contract is worth at the given contre level:
// the numeric value (+2 for a no-bid contract), doubled, then doubled
// again per contre step.
func (c ContractData) Score(level ContreLevel) int {
	base := int(c.Value)
	if c.Kind == KindNoBid {
		base += 2
	}
	return base * 2 * level.Multiplier()
}

// ContreLevel is the stake escalation ladder. It only ever climbs.
type ContreLevel int

const (
	NoContre ContreLevel = iota
	Contre
	Recontre
	Subcontre
	FuckYouContre
)

var contreLevelNames = []string{"NoContre", "Contre", "Recontre", "Subcontre", "FuckYouContre"}

func (l ContreLevel) String() string {
	if l < NoContre || l > FuckYouContre {
		return "Unknown"
	}
	return contreLevelNames[l]
}

// Next climbs one step, capped at FuckYouContre
func (l ContreLevel) Next() ContreLevel {
	if l >= FuckYouContre {
		return FuckYouContre
	}
	return l + 1
}

// Multiplier returns the stake multiplier for the level
func (l ContreLevel) Multiplier() int {
	if l < NoContre || l > FuckYouContre {
		return 1
	}
	return 1 << l
}

// MarshalText encodes a ContreLevel by name
func (l ContreLevel) MarshalText() ([]byte, error) {
	if l < NoContre || l > FuckYouContre {
		return nil, fmt.Errorf("unknown contre level %d", int(l))
	}
	return []byte(contreLevelNames[l]), nil
}

// UnmarshalText decodes a ContreLevel from its name
func (l *ContreLevel) UnmarshalText(text []byte) error {
	for i, name := range contreLevelNames {
		if name == string(text) {
			*l = ContreLevel(i)
			return nil
		}
	}
	return fmt.Errorf("unknown contre level %q", string(text))
}
