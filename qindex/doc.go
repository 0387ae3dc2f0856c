// Package qindex computes the state-vector index arithmetic behind gate
// application: which global amplitude positions a k-qubit gate touches,
// and which spectator bit patterns select its independent blocks.
//
// Both functions are pure and deterministic; they share the module's
// big-endian bit convention (qubit i has weight 2^(qubits-1-i), so qubit 0
// is the most significant bit of the amplitude index).
//
// The enumeration order of BitPatterns is a contract, not an accident:
// position j of the returned slice must line up with row/column j of the
// gate's matrix. For instance, on 5 qubits:
//
//	BitPatterns([0,1], 5) → 00000,01000,10000,11000 → [0, 8, 16, 24]
//	BitPatterns([1,0], 5) → 00000,10000,01000,11000 → [0, 16, 8, 24]
//
// i.e. the listed qubits are evaluated from last to first: the final qubit
// in the slice varies fastest, the first varies slowest. Reordering the
// input changes the sequence even though the set of values is identical.
//
// Performance: Complement is O(qubits); BitPatterns is O(2^len(qubits)),
// the size of its output.
package qindex
