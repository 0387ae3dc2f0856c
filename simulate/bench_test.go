package simulate_test

import (
	"testing"

	"github.com/ThomasLoke/pennylane-lightning/gates"
	"github.com/ThomasLoke/pennylane-lightning/simulate"
	"github.com/ThomasLoke/pennylane-lightning/statevec"
)

// hadamardLayer builds one Hadamard per wire — the worst case for the
// dense pair-update path since every amplitude is rewritten per gate.
func hadamardLayer(qubits int) []simulate.Operation {
	ops := make([]simulate.Operation, qubits)
	for q := 0; q < qubits; q++ {
		ops[q] = simulate.Operation{Label: gates.LabelHadamard, Wires: []int{q}}
	}

	return ops
}

// benchmarkApply sweeps a Hadamard layer over a qubits-qubit register.
func benchmarkApply(b *testing.B, qubits int, opts ...simulate.Option) {
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	view, err := statevec.Wrap(amps, qubits)
	if err != nil {
		b.Fatalf("wrap: %v", err)
	}
	ops := hadamardLayer(qubits)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if err = simulate.Apply(view, ops, opts...); err != nil {
			b.Fatalf("apply: %v", err)
		}
	}
}

// BenchmarkApply_Serial12 measures a 12-qubit Hadamard layer, serial blocks.
func BenchmarkApply_Serial12(b *testing.B) {
	benchmarkApply(b, 12)
}

// BenchmarkApply_Parallel12x4 measures the same layer fanned over 4 workers.
func BenchmarkApply_Parallel12x4(b *testing.B) {
	benchmarkApply(b, 12, simulate.WithParallel(4))
}

// BenchmarkApply_Serial16 measures a 16-qubit layer, serial blocks.
func BenchmarkApply_Serial16(b *testing.B) {
	benchmarkApply(b, 16)
}

// BenchmarkApply_Parallel16x8 measures the 16-qubit layer over 8 workers.
func BenchmarkApply_Parallel16x8(b *testing.B) {
	benchmarkApply(b, 16, simulate.WithParallel(8))
}

// BenchmarkApplyOperation_Toffoli measures a single 3-qubit gate on a
// 16-qubit register — 2^13 blocks through the swap fast path.
func BenchmarkApplyOperation_Toffoli(b *testing.B) {
	const qubits = 16
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	view, err := statevec.Wrap(amps, qubits)
	if err != nil {
		b.Fatalf("wrap: %v", err)
	}
	op := simulate.Operation{Label: gates.LabelToffoli, Wires: []int{0, 7, 15}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = simulate.ApplyOperation(view, op); err != nil {
			b.Fatalf("apply: %v", err)
		}
	}
}
