package qec

import (
	"sort"
	"time"
)

/*
Counts maps fixed-length outcome bit strings to the number of shots that
produced them. Keys follow the highest-qubit-first convention of
outcomeKey, and values always sum to the configured shot count.
*/
type Counts map[string]int

// Total returns the number of shots behind the table.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Keys returns the outcome strings in ascending order.
func (c Counts) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Marginal folds the table down to the distribution of a single qubit.
func (c Counts) Marginal(qubit int) (map[string]int, error) {
	marginal := map[string]int{"0": 0, "1": 0}
	for key, n := range c {
		bit, err := QubitBit(key, qubit)
		if err != nil {
			return nil, err
		}
		if bit == 1 {
			marginal["1"] += n
		} else {
			marginal["0"] += n
		}
	}
	return marginal, nil
}

// Majority folds the table down by majority vote across each key.
func (c Counts) Majority() map[string]int {
	majority := map[string]int{"0": 0, "1": 0}
	for key, n := range c {
		if MajorityVote(key) == 1 {
			majority["1"] += n
		} else {
			majority["0"] += n
		}
	}
	return majority
}

func (c Counts) merge(other Counts) {
	for k, n := range other {
		c[k] += n
	}
}

/*
Result captures one demonstration run: which logical state was protected,
which physical qubit was flipped, and what came back out of the sampler.
*/
type Result struct {
	ID      string        `json:"id"`
	State   string        `json:"state"`
	ErrorOn int           `json:"error_on"`
	Shots   int           `json:"shots"`
	Counts  Counts        `json:"counts"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// LogicalMarginal returns the post-correction distribution of qubit 0,
// the value the code is supposed to protect.
func (r *Result) LogicalMarginal() (map[string]int, error) {
	return r.Counts.Marginal(0)
}

// RecoveryRate returns the fraction of shots whose decoded logical bit
// matched the expected value.
func (r *Result) RecoveryRate(expected int) (float64, error) {
	marginal, err := r.LogicalMarginal()
	if err != nil {
		return 0, err
	}
	total := marginal["0"] + marginal["1"]
	if total == 0 {
		return 0, nil
	}
	if expected == 1 {
		return float64(marginal["1"]) / float64(total), nil
	}
	return float64(marginal["0"]) / float64(total), nil
}
