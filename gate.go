package qec

// GateKind identifies a quantum gate placed on a circuit.
type GateKind int

const (
	GateX GateKind = iota
	GateH
	GateCX
	GateCCX
)

func (k GateKind) String() string {
	switch k {
	case GateX:
		return "x"
	case GateH:
		return "h"
	case GateCX:
		return "cx"
	case GateCCX:
		return "ccx"
	}
	return "unknown"
}

// Gate is one gate placement. Control and Control2 are -1 when unused.
type Gate struct {
	Kind     GateKind
	Target   int
	Control  int
	Control2 int
}

// arity returns how many distinct qubits the gate touches.
func (g Gate) arity() int {
	switch g.Kind {
	case GateCX:
		return 2
	case GateCCX:
		return 3
	}
	return 1
}

// apply evolves the wave function by this gate.
func (g Gate) apply(wf *WaveFunction) {
	switch g.Kind {
	case GateX:
		wf.ApplyX(g.Target)
	case GateH:
		wf.ApplyHadamard(g.Target)
	case GateCX:
		wf.ApplyCX(g.Control, g.Target)
	case GateCCX:
		wf.ApplyCCX(g.Control, g.Control2, g.Target)
	}
}
