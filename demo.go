package qec

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

/*
Demo runs the bit-flip demonstration end to end: prepare a logical state,
encode it across three physical qubits, flip one of them, decode, and
sample the outcome distribution. One Demo value runs any number of
selectors against the same configuration and backend.
*/
type Demo struct {
	config  *Config
	backend Backend
}

// NewDemo validates the configuration up front and wires the default
// state-vector backend when none is supplied.
func NewDemo(config *Config, backend Backend) (*Demo, error) {
	if config == nil {
		config = NewConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if backend == nil {
		backend = NewStateVector(config.Seed, config.Workers)
	}
	return &Demo{
		config:  config,
		backend: backend,
	}, nil
}

// Run executes the pipeline for one logical-state selector.
func (d *Demo) Run(ctx context.Context, state LogicalState) (*Result, error) {
	errnie.Info(
		"bitflip run - state %v, error on qubit %v, shots %v",
		state,
		d.config.ErrorOn,
		d.config.Shots,
	)

	circuit, err := NewDemoCircuit(state, d.config.ErrorOn)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	counts, err := d.backend.Run(ctx, circuit, d.config.Shots)
	if err != nil {
		return nil, err
	}

	return &Result{
		ID:      uuid.NewString(),
		State:   state.String(),
		ErrorOn: d.config.ErrorOn,
		Shots:   d.config.Shots,
		Counts:  counts,
		Elapsed: time.Since(start),
	}, nil
}

// RunReference executes the pipeline with no error injected, producing the
// distribution a corrected run is expected to reproduce.
func (d *Demo) RunReference(ctx context.Context, state LogicalState) (*Result, error) {
	circuit, err := NewReferenceCircuit(state)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	counts, err := d.backend.Run(ctx, circuit, d.config.Shots)
	if err != nil {
		return nil, err
	}

	return &Result{
		ID:      uuid.NewString(),
		State:   state.String(),
		ErrorOn: -1,
		Shots:   d.config.Shots,
		Counts:  counts,
		Elapsed: time.Since(start),
	}, nil
}

// RunAll sweeps the three logical states with the configured error target,
// mirroring the classic three-panel demonstration.
func (d *Demo) RunAll(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, 0, len(AllLogicalStates()))
	for _, state := range AllLogicalStates() {
		result, err := d.Run(ctx, state)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
