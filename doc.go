// Package lightning is an in-memory engine for applying quantum logic
// gates to a dense multi-qubit state vector, in place and in order.
//
// 🚀 What is pennylane-lightning?
//
//	A pure-Go gate-application primitive for circuit-execution frameworks:
//		• Gate catalogue: Pauli/Hadamard/S/T, rotations, controlled gates,
//		  Toffoli & CSWAP — each with its exact 2^k×2^k unitary
//		• Index generation: big-endian bit patterns mapping wires to the
//		  state-vector positions each gate invocation touches
//		• Kernels: generic gather→multiply→scatter plus closed-form
//		  specializations that stay numerically identical to the dense path
//		• Dispatch: an immutable label→factory registry, no ambient globals
//		• Sequencing: strictly ordered operation application, with optional
//		  parallel fan-out across independent state-vector blocks
//
// ✨ Why choose it?
//
//   - Caller-owned memory – the engine borrows your amplitude buffer,
//     never allocates or frees it
//   - Exact conventions – qubit 0 is the most significant index bit;
//     orderings are documented and test-pinned
//   - Explicit failures – sentinel errors for unknown labels, bad arity
//     and bad wires; a failed operation never half-applies
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	statevec/ — borrowed, non-owning view over the amplitude buffer
//	qindex/   — complement & bit-pattern enumeration (pure functions)
//	gates/    — gate variants, matrices, kernels and the registry
//	simulate/ — the Operation type and the sequence applier
//
// Quick example — preparing a Bell pair on |00⟩:
//
//	amps := []complex128{1, 0, 0, 0}
//	view, _ := statevec.Wrap(amps, 2)
//	_ = simulate.Apply(view, []simulate.Operation{
//	  {Label: "Hadamard", Wires: []int{0}},
//	  {Label: "CNOT", Wires: []int{0, 1}},
//	})
//	// amps is now [1/√2, 0, 0, 1/√2]
//
// See examples/ for runnable scenarios and each subpackage's doc.go for
// the full contracts.
package lightning
