package qec

import "errors"

// Invalid-argument errors surface before any simulation work begins.
var (
	ErrInvalidState  = errors.New("logical state must be one of zero, one, plus")
	ErrInvalidTarget = errors.New("error target must be a qubit index between 0 and 2")
	ErrInvalidShots  = errors.New("shot count must be positive")
	ErrInvalidQubits = errors.New("qubit count out of range")
	ErrInvalidGate   = errors.New("gate references an invalid qubit")
)
