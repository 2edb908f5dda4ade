package qec

import "fmt"

// CodeQubits is the block size of the repetition code: one logical qubit
// spread across three physical qubits.
const CodeQubits = 3

/*
Encode fans the logical qubit out onto the two redundancy qubits with
controlled-NOTs 0→1 and 0→2. For basis-state inputs this yields the
classical triple repetition |000⟩/|111⟩; for |+⟩ it yields the GHZ-like
superposition (|000⟩+|111⟩)/√2.
*/
func Encode(c *Circuit) *Circuit {
	return c.CX(0, 1).CX(0, 2)
}

/*
Decode reverses the fan-out (0→2, then 0→1) and applies the Toffoli
majority-vote correction CCX(1,2 → 0). After decoding, qubit 0 carries the
original logical value whenever at most one physical qubit was flipped,
and qubits 1 and 2 hold the error syndrome.
*/
func Decode(c *Circuit) *Circuit {
	return c.CX(0, 2).CX(0, 1).CCX(1, 2, 0)
}

/*
NewDemoCircuit builds the full demonstration pipeline: prepare the selected
logical state on qubit 0, encode it across the block, flip exactly one
physical qubit, and decode. All arguments are validated before any circuit
construction happens.
*/
func NewDemoCircuit(state LogicalState, errorOn int) (*Circuit, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("state %d: %w", int(state), ErrInvalidState)
	}
	if errorOn < 0 || errorOn >= CodeQubits {
		return nil, fmt.Errorf("error target %d: %w", errorOn, ErrInvalidTarget)
	}

	c, err := NewCircuit(CodeQubits)
	if err != nil {
		return nil, err
	}

	state.prepare(c)
	Encode(c)
	c.X(errorOn)
	Decode(c)

	return c, c.Err()
}

/*
NewReferenceCircuit builds the same pipeline with no error injected. Its
measurement distribution is the yardstick the corrected runs must match.
*/
func NewReferenceCircuit(state LogicalState) (*Circuit, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("state %d: %w", int(state), ErrInvalidState)
	}

	c, err := NewCircuit(CodeQubits)
	if err != nil {
		return nil, err
	}

	state.prepare(c)
	Encode(c)
	Decode(c)

	return c, c.Err()
}
