package qindex_test

import (
	"testing"

	"github.com/ThomasLoke/pennylane-lightning/qindex"
	"github.com/stretchr/testify/assert"
)

// TestComplement_Basic verifies ascending set difference over [0, qubits).
func TestComplement_Basic(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4}, qindex.Complement([]int{0, 3}, 5))
	assert.Equal(t, []int{0, 1, 2}, qindex.Complement(nil, 3))
	assert.Equal(t, []int{}, qindex.Complement([]int{0, 1}, 2), "full target leaves no spectators")
}

// TestComplement_OrderInsensitive checks that target order does not affect
// the (always ascending) result.
func TestComplement_OrderInsensitive(t *testing.T) {
	assert.Equal(t, qindex.Complement([]int{3, 0}, 5), qindex.Complement([]int{0, 3}, 5))
}

// TestBitPatterns_Ordering pins the documented enumeration order: the last
// listed qubit varies fastest, and reordering the input permutes the output.
func TestBitPatterns_Ordering(t *testing.T) {
	assert.Equal(t, []uint64{0, 8, 16, 24}, qindex.BitPatterns([]int{0, 1}, 5))
	assert.Equal(t, []uint64{0, 16, 8, 24}, qindex.BitPatterns([]int{1, 0}, 5))
}

// TestBitPatterns_SingleQubit checks the big-endian weight of each qubit.
func TestBitPatterns_SingleQubit(t *testing.T) {
	assert.Equal(t, []uint64{0, 16}, qindex.BitPatterns([]int{0}, 5), "qubit 0 is the most significant bit")
	assert.Equal(t, []uint64{0, 1}, qindex.BitPatterns([]int{4}, 5), "last qubit is the least significant bit")
}

// TestBitPatterns_Empty verifies the degenerate no-qubit enumeration.
func TestBitPatterns_Empty(t *testing.T) {
	assert.Equal(t, []uint64{0}, qindex.BitPatterns(nil, 4))
}

// TestBitPatterns_FullRegister confirms that enumerating every qubit in
// order yields exactly 0..2^n-1 ascending.
func TestBitPatterns_FullRegister(t *testing.T) {
	got := qindex.BitPatterns([]int{0, 1, 2}, 3)
	assert.Equal(t, []uint64{0, 1, 2, 3, 4, 5, 6, 7}, got)
}

// TestBitPatterns_Disjointness verifies the partition property behind
// per-operation block independence: spectator offsets plus affected
// offsets tile the whole index space exactly once.
func TestBitPatterns_Disjointness(t *testing.T) {
	const qubits = 5
	wires := []int{1, 3}

	affected := qindex.BitPatterns(wires, qubits)
	spectators := qindex.BitPatterns(qindex.Complement(wires, qubits), qubits)

	seen := make(map[uint64]int)
	for _, s := range spectators {
		for _, a := range affected {
			seen[s+a]++
		}
	}

	assert.Len(t, seen, 1<<qubits, "groups must cover every basis state")
	for idx, count := range seen {
		assert.Equal(t, 1, count, "index %d must appear exactly once", idx)
	}
}
