package simulate_test

import (
	"fmt"

	"github.com/ThomasLoke/pennylane-lightning/simulate"
	"github.com/ThomasLoke/pennylane-lightning/statevec"
)

// ExampleApply prepares a Bell pair on two qubits: Hadamard on qubit 0
// followed by CNOT with qubit 0 as control.
func ExampleApply() {
	amps := []complex128{1, 0, 0, 0} // |00⟩
	view, _ := statevec.Wrap(amps, 2)

	_ = simulate.Apply(view, []simulate.Operation{
		{Label: "Hadamard", Wires: []int{0}},
		{Label: "CNOT", Wires: []int{0, 1}},
	})

	for i, amp := range amps {
		fmt.Printf("|%02b⟩ %.4f\n", i, real(amp))
	}
	// Output:
	// |00⟩ 0.7071
	// |01⟩ 0.0000
	// |10⟩ 0.0000
	// |11⟩ 0.7071
}

// ExampleApplyOperation interleaves host logic between two single-gate
// calls — the narrow entry point for callers that inspect the state
// mid-circuit.
func ExampleApplyOperation() {
	amps := []complex128{1, 0} // |0⟩
	view, _ := statevec.Wrap(amps, 1)

	_ = simulate.ApplyOperation(view, simulate.Operation{Label: "PauliX", Wires: []int{0}})
	fmt.Printf("after X:  %.1f\n", real(amps[1]))

	_ = simulate.ApplyOperation(view, simulate.Operation{Label: "PauliZ", Wires: []int{0}})
	fmt.Printf("after Z: %.1f\n", real(amps[1]))
	// Output:
	// after X:  1.0
	// after Z: -1.0
}
