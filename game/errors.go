package game

import "errors"

// The three rejection classes. ErrInvalidTurn is always checked first.
// ErrInvalidAction means the action kind makes no sense in the current
// phase; ErrBadAction means the kind is applicable but breaks a rule of
// the phase. All of them are recoverable: the caller keeps the old
// state and the client request is simply refused.
var (
	ErrInvalidTurn   = errors.New("not this player's turn")
	ErrInvalidAction = errors.New("action does not apply to the current phase")
	ErrBadAction     = errors.New("action violates the rules of the current phase")
)

var (
	ErrNoRefasLeft     = errors.New("no refas left to create")
	ErrRefaAlreadyUsed = errors.New("player has used every open refa")
)
