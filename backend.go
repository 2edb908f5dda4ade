package qec

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
)

/*
Backend is the minimal capability the demonstration needs from a simulator:
evolve a circuit from the ground state and sample its measurement outcomes.
Keeping this narrow leaves the encode/decode logic independent of which
simulation engine is linked.
*/
type Backend interface {
	Run(ctx context.Context, c *Circuit, shots int) (Counts, error)
}

/*
StateVector is the built-in backend. It applies the circuit once to a dense
wave function and then draws independent shots from the resulting
distribution. Shots may be batched across goroutines; each batch owns its
own PCG stream derived from Seed, so a fixed seed and worker count
reproduce the exact same table.
*/
type StateVector struct {
	Seed    uint64
	Workers int
}

// NewStateVector creates a backend with a fixed seed. A zero seed means a
// fresh random stream per run.
func NewStateVector(seed uint64, workers int) *StateVector {
	return &StateVector{
		Seed:    seed,
		Workers: workers,
	}
}

func (sv *StateVector) Run(ctx context.Context, c *Circuit, shots int) (Counts, error) {
	if c == nil {
		return nil, fmt.Errorf("no circuit: %w", ErrInvalidGate)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	if shots <= 0 {
		return nil, fmt.Errorf("%d shots: %w", shots, ErrInvalidShots)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wf, err := NewWaveFunction(c.Qubits())
	if err != nil {
		return nil, err
	}
	if err := c.Apply(wf); err != nil {
		return nil, err
	}

	seed := sv.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	workers := sv.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > shots {
		workers = shots
	}

	counts := make(Counts)
	if workers == 1 {
		sampleBatch(wf, rand.New(rand.NewPCG(seed, 1)), shots, counts)
		return counts, nil
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for w := 0; w < workers; w++ {
		batch := shots / workers
		if w < shots%workers {
			batch++
		}

		wg.Add(1)
		go func(stream uint64, batch int) {
			defer wg.Done()
			local := make(Counts)
			sampleBatch(wf, rand.New(rand.NewPCG(seed, stream)), batch, local)
			mu.Lock()
			counts.merge(local)
			mu.Unlock()
		}(uint64(w)+1, batch)
	}
	wg.Wait()

	return counts, nil
}

// sampleBatch draws shots into the given table. Sampling never mutates the
// wave function, so concurrent batches share it safely.
func sampleBatch(wf *WaveFunction, r *rand.Rand, shots int, into Counts) {
	qubits := wf.Qubits()
	for i := 0; i < shots; i++ {
		into[outcomeKey(wf.Sample(r), qubits)]++
	}
}
