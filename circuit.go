package qec

import "fmt"

/*
Circuit is an ordered list of gates over a fixed-width qubit register. The
builder methods validate qubit indices as gates are appended and record the
first violation; Err surfaces it, and a backend refuses to run a circuit
that carries one. This keeps gate sequences chainable without silently
accepting out-of-range wiring.
*/
type Circuit struct {
	qubits int
	gates  []Gate
	err    error
}

// NewCircuit creates an empty circuit over the given number of qubits.
func NewCircuit(qubits int) (*Circuit, error) {
	if qubits < 1 {
		return nil, fmt.Errorf("circuit width %d: %w", qubits, ErrInvalidQubits)
	}
	return &Circuit{qubits: qubits}, nil
}

// Qubits returns the register width the circuit addresses.
func (c *Circuit) Qubits() int {
	return c.qubits
}

// Gates returns the gate sequence in application order.
func (c *Circuit) Gates() []Gate {
	return c.gates
}

// Err returns the first gate-validation failure, if any.
func (c *Circuit) Err() error {
	return c.err
}

// X appends a bit-flip gate on target.
func (c *Circuit) X(target int) *Circuit {
	return c.append(Gate{Kind: GateX, Target: target, Control: -1, Control2: -1})
}

// H appends a Hadamard gate on target.
func (c *Circuit) H(target int) *Circuit {
	return c.append(Gate{Kind: GateH, Target: target, Control: -1, Control2: -1})
}

// CX appends a controlled-NOT from control onto target.
func (c *Circuit) CX(control, target int) *Circuit {
	return c.append(Gate{Kind: GateCX, Target: target, Control: control, Control2: -1})
}

// CCX appends a Toffoli gate with two controls onto target.
func (c *Circuit) CCX(control1, control2, target int) *Circuit {
	return c.append(Gate{Kind: GateCCX, Target: target, Control: control1, Control2: control2})
}

func (c *Circuit) append(g Gate) *Circuit {
	if c.err != nil {
		return c
	}
	if err := c.check(g); err != nil {
		c.err = err
		return c
	}
	c.gates = append(c.gates, g)
	return c
}

func (c *Circuit) check(g Gate) error {
	wires := []int{g.Target}
	if g.arity() >= 2 {
		wires = append(wires, g.Control)
	}
	if g.arity() == 3 {
		wires = append(wires, g.Control2)
	}
	seen := make(map[int]bool, len(wires))
	for _, w := range wires {
		if w < 0 || w >= c.qubits {
			return fmt.Errorf("%s gate on qubit %d of %d: %w", g.Kind, w, c.qubits, ErrInvalidGate)
		}
		if seen[w] {
			return fmt.Errorf("%s gate reuses qubit %d: %w", g.Kind, w, ErrInvalidGate)
		}
		seen[w] = true
	}
	return nil
}

// Apply evolves a ground-state register through the full gate sequence.
func (c *Circuit) Apply(wf *WaveFunction) error {
	if c.err != nil {
		return c.err
	}
	if wf.Qubits() != c.qubits {
		return fmt.Errorf("register width %d does not match circuit width %d: %w",
			wf.Qubits(), c.qubits, ErrInvalidQubits)
	}
	for _, g := range c.gates {
		g.apply(wf)
	}
	return nil
}
