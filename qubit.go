package qec

import "fmt"

// outcomeKey renders a basis-state index as a fixed-length bit string with
// the highest qubit first, so qubit 0 is the rightmost character.
func outcomeKey(index, qubits int) string {
	b := make([]byte, qubits)
	for q := 0; q < qubits; q++ {
		if index&(1<<q) != 0 {
			b[qubits-1-q] = '1'
		} else {
			b[qubits-1-q] = '0'
		}
	}
	return string(b)
}

// QubitBit extracts the classical value of one qubit from an outcome key.
func QubitBit(key string, qubit int) (int, error) {
	if qubit < 0 || qubit >= len(key) {
		return 0, fmt.Errorf("qubit %d in key %q: %w", qubit, key, ErrInvalidTarget)
	}
	if key[len(key)-1-qubit] == '1' {
		return 1, nil
	}
	return 0, nil
}

// MajorityVote reduces an outcome key to a single logical bit: 1 when the
// ones outnumber the zeros across the block.
func MajorityVote(key string) int {
	ones := 0
	for i := 0; i < len(key); i++ {
		if key[i] == '1' {
			ones++
		}
	}
	if ones*2 > len(key) {
		return 1
	}
	return 0
}
