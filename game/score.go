package game

// PlayerScore is one player's running tally across hands. Bulls are the
// primary score and are signed: a failed contract can push them below
// zero. The two soup pools are independent bonus counters.
type PlayerScore struct {
	Bulls int    `json:"bulls"`
	Soups [2]int `json:"soups"`
}

// NewScore constructs a score with the session's starting bulls
func NewScore(startingBulls int) PlayerScore {
	return PlayerScore{Bulls: startingBulls}
}

// applyResult settles a contract worth value: bulls go up on success,
// down on failure.
func (p *PlayerScore) applyResult(value int, won bool) {
	if won {
		p.Bulls += value
	} else {
		p.Bulls -= value
	}
}

// applySoups credits the given soup pool in proportion to tricks taken
func (p *PlayerScore) applySoups(pool int, tricks int, value int) {
	p.Soups[pool] += tricks * value
}
