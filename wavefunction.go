// wavefunction.go
package qec

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"
)

/*
WaveFunction is a dense state vector over a small register of qubits. The
amplitude at index i belongs to the computational basis state whose bit k
equals qubit k, with qubit 0 as the least significant bit. A freshly created
register sits in the all-zeros ground state.
*/
type WaveFunction struct {
	qubits     int
	amplitudes []complex128
}

// NewWaveFunction creates a register of the given width in the ground state.
func NewWaveFunction(qubits int) (*WaveFunction, error) {
	if qubits < 1 || qubits > 24 {
		return nil, fmt.Errorf("register width %d: %w", qubits, ErrInvalidQubits)
	}
	amplitudes := make([]complex128, 1<<qubits)
	amplitudes[0] = 1
	return &WaveFunction{
		qubits:     qubits,
		amplitudes: amplitudes,
	}, nil
}

// Qubits returns the register width.
func (wf *WaveFunction) Qubits() int {
	return wf.qubits
}

// ApplyX applies a bit-flip (Pauli-X) gate to the target qubit.
func (wf *WaveFunction) ApplyX(target int) {
	mask := 1 << target
	for i := range wf.amplitudes {
		if i&mask == 0 {
			j := i | mask
			wf.amplitudes[i], wf.amplitudes[j] = wf.amplitudes[j], wf.amplitudes[i]
		}
	}
}

// ApplyHadamard applies a Hadamard gate to the target qubit.
func (wf *WaveFunction) ApplyHadamard(target int) {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	mask := 1 << target
	norm := complex(math.Sqrt2, 0)
	for i := range wf.amplitudes {
		if i&mask == 0 {
			j := i | mask
			a, b := wf.amplitudes[i], wf.amplitudes[j]
			wf.amplitudes[i] = (a + b) / norm
			wf.amplitudes[j] = (a - b) / norm
		}
	}
}

// ApplyCX applies a controlled-NOT, flipping target wherever control is set.
func (wf *WaveFunction) ApplyCX(control, target int) {
	cm := 1 << control
	tm := 1 << target
	for i := range wf.amplitudes {
		if i&cm != 0 && i&tm == 0 {
			j := i | tm
			wf.amplitudes[i], wf.amplitudes[j] = wf.amplitudes[j], wf.amplitudes[i]
		}
	}
}

// ApplyCCX applies a Toffoli gate: target flips wherever both controls are set.
func (wf *WaveFunction) ApplyCCX(control1, control2, target int) {
	c1 := 1 << control1
	c2 := 1 << control2
	tm := 1 << target
	for i := range wf.amplitudes {
		if i&c1 != 0 && i&c2 != 0 && i&tm == 0 {
			j := i | tm
			wf.amplitudes[i], wf.amplitudes[j] = wf.amplitudes[j], wf.amplitudes[i]
		}
	}
}

/*
Probabilities returns the exact measurement distribution over all basis
states. The slice index is the basis state, the value its probability.
*/
func (wf *WaveFunction) Probabilities() []float64 {
	probs := make([]float64, len(wf.amplitudes))
	for i, a := range wf.amplitudes {
		m := cmplx.Abs(a)
		probs[i] = m * m
	}
	return probs
}

/*
Sample draws one measurement outcome without disturbing the register, so
repeated calls model independent shots of the same circuit. The outcome is
chosen by cumulative-probability selection.
*/
func (wf *WaveFunction) Sample(r *rand.Rand) int {
	probs := wf.Probabilities()

	// Guard against drift away from unit norm.
	var total float64
	for _, p := range probs {
		total += p
	}
	f := r.Float64() * total

	var cumulative float64
	for i, p := range probs {
		cumulative += p
		if f <= cumulative {
			return i
		}
	}
	return len(probs) - 1
}

/*
Collapse measures the whole register, projecting it onto a single basis
state. Every Sample after a collapse returns the same outcome.
*/
func (wf *WaveFunction) Collapse(r *rand.Rand) int {
	outcome := wf.Sample(r)
	for i := range wf.amplitudes {
		wf.amplitudes[i] = 0
	}
	wf.amplitudes[outcome] = 1
	return outcome
}
