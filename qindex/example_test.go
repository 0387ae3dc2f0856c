package qindex_test

import (
	"fmt"

	"github.com/ThomasLoke/pennylane-lightning/qindex"
)

// ExampleBitPatterns shows the documented enumeration order on a 5-qubit
// register: listing the wires as [0,1] or [1,0] yields the same offset
// set in a different, matrix-aligned order.
func ExampleBitPatterns() {
	fmt.Println(qindex.BitPatterns([]int{0, 1}, 5))
	fmt.Println(qindex.BitPatterns([]int{1, 0}, 5))
	// Output:
	// [0 8 16 24]
	// [0 16 8 24]
}

// ExampleComplement lists the spectator qubits of a 2-wire gate on a
// 5-qubit register.
func ExampleComplement() {
	fmt.Println(qindex.Complement([]int{0, 3}, 5))
	// Output:
	// [1 2 4]
}
