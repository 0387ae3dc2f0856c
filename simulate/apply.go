package simulate

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ThomasLoke/pennylane-lightning/gates"
	"github.com/ThomasLoke/pennylane-lightning/qindex"
	"github.com/ThomasLoke/pennylane-lightning/statevec"
)

// Apply runs every operation against the view, in order.
//
// Per operation: resolve the gate through the registry, validate the wire
// list, enumerate the affected and spectator bit patterns, then invoke
// the gate's kernel once per spectator block. Validation precedes any
// mutation for that operation, so on error the buffer holds exactly the
// state after the last successful operation.
//
// Errors (matched via errors.Is, wrapped with the operation position):
//   - gates.ErrUnknownGate, gates.ErrInvalidArity from gate construction;
//   - ErrInvalidWireCount, ErrWireOutOfRange from wire validation.
//
// Complexity per k-qubit operation: O(2^n) amplitude updates serially
// (O(4^k) work per block on the dense path), or the same work divided
// across WithParallel workers.
func Apply(view statevec.View, ops []Operation, opts ...Option) error {
	o := gatherOptions(opts...)

	for i := range ops {
		if err := applyResolved(view, ops[i], &o); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}

	return nil
}

// ApplyOperation applies exactly one operation to the view — the narrow
// entry point for hosts that interleave other logic (e.g. measurement)
// between gate applications. Error surface matches Apply, without the
// positional wrapping.
func ApplyOperation(view statevec.View, op Operation, opts ...Option) error {
	o := gatherOptions(opts...)

	return applyResolved(view, op, &o)
}

// applyResolved performs one full operation: construct, validate, index,
// sweep blocks.
func applyResolved(view statevec.View, op Operation, o *Options) error {
	g, err := o.registry.Construct(op.Label, op.Params)
	if err != nil {
		return err
	}
	if err = validateWires(op, g.Qubits(), view.Qubits()); err != nil {
		return err
	}

	qubits := view.Qubits()
	affected := qindex.BitPatterns(op.Wires, qubits)
	spectators := qindex.BitPatterns(qindex.Complement(op.Wires, qubits), qubits)
	state := view.Amplitudes()

	if o.workers > 1 && len(spectators) >= o.workers {
		sweepParallel(g, state, affected, spectators, o.workers)
		return nil
	}

	sweep(g, state, affected, spectators)

	return nil
}

// validateWires enforces the wire contract before any index generation:
// exact arity, in-range indices, no duplicates.
func validateWires(op Operation, arity, qubits int) error {
	if len(op.Wires) != arity {
		return fmt.Errorf("%s: requires %d wires but got %d: %w", op.Label, arity, len(op.Wires), ErrInvalidWireCount)
	}

	seen := make(map[int]bool, len(op.Wires))
	for _, w := range op.Wires {
		if w < 0 || w >= qubits {
			return fmt.Errorf("%s: wire %d outside [0, %d): %w", op.Label, w, qubits, ErrWireOutOfRange)
		}
		if seen[w] {
			return fmt.Errorf("%s: wire %d listed twice: %w", op.Label, w, ErrWireOutOfRange)
		}
		seen[w] = true
	}

	return nil
}

// sweep applies the gate kernel to every block on the calling goroutine.
// The index group and scratch buffers are reused across blocks.
func sweep(g gates.Gate, state []complex128, affected, spectators []uint64) {
	dim := len(affected)
	group := make([]uint64, dim)
	scratch := make([]complex128, dim)

	for _, s := range spectators {
		for j, a := range affected {
			group[j] = s + a
		}
		g.ApplyKernel(state, group, scratch)
	}
}

// sweepParallel fans the block loop out over up to workers goroutines.
// Blocks are pairwise disjoint and each reads only positions it also
// writes, so per-chunk buffers are the only state a worker owns and the
// final join is the only synchronization.
func sweepParallel(g gates.Gate, state []complex128, affected, spectators []uint64, workers int) {
	dim := len(affected)
	chunk := (len(spectators) + workers - 1) / workers

	var eg errgroup.Group
	for start := 0; start < len(spectators); start += chunk {
		part := spectators[start:min(start+chunk, len(spectators))]

		eg.Go(func() error {
			group := make([]uint64, dim)
			scratch := make([]complex128, dim)
			for _, s := range part {
				for j, a := range affected {
					group[j] = s + a
				}
				g.ApplyKernel(state, group, scratch)
			}

			return nil
		})
	}

	// Workers cannot fail; Wait is the join point.
	_ = eg.Wait()
}
