package qec

import (
	"fmt"
	"strings"
)

/*
LogicalState selects the single-qubit state the code protects. It is a
closed set: zero and one are the computational basis states, plus is the
equal superposition (|0⟩+|1⟩)/√2.
*/
type LogicalState int

const (
	StateZero LogicalState = iota
	StateOne
	StatePlus
)

func (s LogicalState) String() string {
	switch s {
	case StateZero:
		return "zero"
	case StateOne:
		return "one"
	case StatePlus:
		return "plus"
	}
	return fmt.Sprintf("invalid(%d)", int(s))
}

// Valid reports whether the selector is a member of the closed set.
func (s LogicalState) Valid() bool {
	return s >= StateZero && s <= StatePlus
}

// ParseLogicalState maps a selector name to its LogicalState. Unrecognized
// names fail fast rather than defaulting.
func ParseLogicalState(name string) (LogicalState, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "zero", "0":
		return StateZero, nil
	case "one", "1":
		return StateOne, nil
	case "plus", "+":
		return StatePlus, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrInvalidState)
}

// prepare appends the minimal preparation gates for the selector to qubit 0.
func (s LogicalState) prepare(c *Circuit) {
	switch s {
	case StateZero:
		// Ground state, nothing to do.
	case StateOne:
		c.X(0)
	case StatePlus:
		c.H(0)
	}
}

// AllLogicalStates lists the selectors in demonstration order.
func AllLogicalStates() []LogicalState {
	return []LogicalState{StateZero, StateOne, StatePlus}
}
