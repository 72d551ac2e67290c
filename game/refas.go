package game

// Refa is a replay token. Every player must use it exactly once; when
// all three have, it retires.
type Refa struct {
	Used [3]bool `json:"used"`
}

func (r Refa) retired() bool {
	return r.Used[0] && r.Used[1] && r.Used[2]
}

// Refas is the session's replay-token bookkeeping: how many tokens may
// still be created, and the open tokens in creation order. Tokens
// retire in FIFO order.
type Refas struct {
	Remaining int    `json:"remaining"`
	Queue     []Refa `json:"queue"`
}

// NewRefas constructs the pool with n creatable tokens
func NewRefas(n int) Refas {
	return Refas{Remaining: n}
}

// Create opens a new token, if the pool allows another one
func (r *Refas) Create() error {
	if r.Remaining <= 0 {
		return ErrNoRefasLeft
	}
	r.Remaining--
	r.Queue = append(r.Queue, Refa{})
	return nil
}

// Use marks the oldest token the player has not yet consumed. Fully
// consumed tokens at the head of the queue retire immediately.
func (r *Refas) Use(player int) error {
	for i := range r.Queue {
		if r.Queue[i].Used[player] {
			continue
		}
		r.Queue[i].Used[player] = true
		r.retire()
		return nil
	}
	return ErrRefaAlreadyUsed
}

// Open reports how many tokens are still in flight
func (r *Refas) Open() int {
	return len(r.Queue)
}

func (r *Refas) retire() {
	for len(r.Queue) > 0 && r.Queue[0].retired() {
		r.Queue = r.Queue[1:]
	}
}
