package qec

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStateVectorBackend(t *testing.T) {
	Convey("Given a seeded state-vector backend", t, func(c C) {
		ctx := context.Background()
		backend := NewStateVector(7, 1)

		Convey("Counts always sum to the shot count", func(c C) {
			circuit, err := NewDemoCircuit(StatePlus, 1)
			c.So(err, ShouldBeNil)

			counts, err := backend.Run(ctx, circuit, 1000)
			c.So(err, ShouldBeNil)
			c.So(counts.Total(), ShouldEqual, 1000)
		})

		Convey("The same seed and worker count reproduce the same table", func(c C) {
			circuit, err := NewDemoCircuit(StatePlus, 0)
			c.So(err, ShouldBeNil)

			first, err := backend.Run(ctx, circuit, 500)
			c.So(err, ShouldBeNil)
			second, err := backend.Run(ctx, circuit, 500)
			c.So(err, ShouldBeNil)
			c.So(second, ShouldResemble, first)
		})

		Convey("Batched sampling still accounts for every shot", func(c C) {
			batched := NewStateVector(7, 4)
			circuit, err := NewDemoCircuit(StatePlus, 2)
			c.So(err, ShouldBeNil)

			counts, err := batched.Run(ctx, circuit, 1001)
			c.So(err, ShouldBeNil)
			c.So(counts.Total(), ShouldEqual, 1001)
		})

		Convey("More workers than shots is tolerated", func(c C) {
			batched := NewStateVector(7, 16)
			circuit, err := NewDemoCircuit(StateZero, 1)
			c.So(err, ShouldBeNil)

			counts, err := batched.Run(ctx, circuit, 3)
			c.So(err, ShouldBeNil)
			c.So(counts.Total(), ShouldEqual, 3)
		})

		Convey("A non-positive shot count is rejected", func(c C) {
			circuit, err := NewDemoCircuit(StateZero, 1)
			c.So(err, ShouldBeNil)

			_, err = backend.Run(ctx, circuit, 0)
			c.So(err, ShouldWrap, ErrInvalidShots)

			_, err = backend.Run(ctx, circuit, -5)
			c.So(err, ShouldWrap, ErrInvalidShots)
		})

		Convey("A missing circuit is rejected", func(c C) {
			_, err := backend.Run(ctx, nil, 10)
			c.So(err, ShouldNotBeNil)
		})

		Convey("A broken circuit is rejected before sampling", func(c C) {
			circuit, err := NewCircuit(3)
			c.So(err, ShouldBeNil)
			circuit.X(5)

			_, err = backend.Run(ctx, circuit, 10)
			c.So(err, ShouldWrap, ErrInvalidGate)
		})

		Convey("A cancelled context aborts the run", func(c C) {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			circuit, err := NewDemoCircuit(StateZero, 1)
			c.So(err, ShouldBeNil)

			_, err = backend.Run(cancelled, circuit, 10)
			c.So(err, ShouldEqual, context.Canceled)
		})
	})

	Convey("Given the end-to-end recovery scenarios", t, func(c C) {
		ctx := context.Background()
		backend := NewStateVector(11, 1)

		Convey("Protecting |0⟩ against a flip on qubit 1 recovers every shot", func(c C) {
			circuit, err := NewDemoCircuit(StateZero, 1)
			c.So(err, ShouldBeNil)

			counts, err := backend.Run(ctx, circuit, 1000)
			c.So(err, ShouldBeNil)

			marginal, err := counts.Marginal(0)
			c.So(err, ShouldBeNil)
			c.So(marginal["0"], ShouldEqual, 1000)
			c.So(marginal["1"], ShouldEqual, 0)

			// The syndrome names the corrupted qubit.
			c.So(counts["010"], ShouldEqual, 1000)
		})

		Convey("Protecting |1⟩ against a flip on qubit 2 recovers every shot", func(c C) {
			circuit, err := NewDemoCircuit(StateOne, 2)
			c.So(err, ShouldBeNil)

			counts, err := backend.Run(ctx, circuit, 1000)
			c.So(err, ShouldBeNil)

			marginal, err := counts.Marginal(0)
			c.So(err, ShouldBeNil)
			c.So(marginal["1"], ShouldEqual, 1000)
			c.So(marginal["0"], ShouldEqual, 0)
		})

		Convey("Protecting |+⟩ against a flip on qubit 0 keeps the even split", func(c C) {
			circuit, err := NewDemoCircuit(StatePlus, 0)
			c.So(err, ShouldBeNil)

			counts, err := backend.Run(ctx, circuit, 2000)
			c.So(err, ShouldBeNil)
			c.So(counts.Total(), ShouldEqual, 2000)

			marginal, err := counts.Marginal(0)
			c.So(err, ShouldBeNil)
			c.So(marginal["0"], ShouldBeBetween, 900, 1100)
			c.So(marginal["1"], ShouldBeBetween, 900, 1100)
		})
	})
}
