package qindex

// Complement returns the ascending list of qubit indices in [0, qubits)
// that do not appear in target. For a gate acting on target wires, the
// result is the spectator set whose bit patterns enumerate the gate's
// independent blocks.
//
// Inputs are trusted: callers validate wires (range, duplicates) before
// index generation, so Complement performs no validation of its own.
//
// Complexity: Time O(qubits + len(target)), Space O(qubits).
func Complement(target []int, qubits int) []int {
	excluded := make([]bool, qubits)
	for _, q := range target {
		excluded[q] = true
	}

	rest := make([]int, 0, qubits-len(target))
	for q := 0; q < qubits; q++ {
		if !excluded[q] {
			rest = append(rest, q)
		}
	}

	return rest
}

// BitPatterns returns the 2^len(qubitIndices) basis-state offsets obtained
// by setting each listed qubit to every 0/1 combination while holding all
// other qubits at 0, under the big-endian weight 2^(qubits-1-i) for
// qubit i.
//
// Ordering contract: the listed qubits are folded in from last to first,
// so qubitIndices[len-1] varies fastest and qubitIndices[0] slowest —
// equivalent to nested loops with the first listed qubit outermost. This
// makes offset j correspond to matrix row/column j for a gate whose first
// wire is the most significant bit of its local index. See the package
// doc for worked examples.
//
// Complexity: Time O(2^len(qubitIndices)), Space O(2^len(qubitIndices)).
func BitPatterns(qubitIndices []int, qubits int) []uint64 {
	patterns := make([]uint64, 1, 1<<len(qubitIndices))
	patterns[0] = 0

	// Fold qubits in reverse: doubling the prefix keeps earlier-listed
	// qubits in the slower-varying (more significant) loop positions.
	for i := len(qubitIndices) - 1; i >= 0; i-- {
		weight := uint64(1) << (qubits - qubitIndices[i] - 1)
		current := len(patterns)
		for j := 0; j < current; j++ {
			patterns = append(patterns, patterns[j]+weight)
		}
	}

	return patterns
}
