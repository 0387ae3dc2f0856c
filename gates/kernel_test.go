package gates_test

import (
	"math/rand"
	"testing"

	"github.com/ThomasLoke/pennylane-lightning/gates"
	"github.com/ThomasLoke/pennylane-lightning/qindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomState builds a reproducible pseudo-random amplitude vector for
// qubits qubits. Normalization is irrelevant to kernel equivalence.
func randomState(qubits int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	amps := make([]complex128, 1<<qubits)
	for i := range amps {
		amps[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return amps
}

// assertSameState compares two amplitude vectors within tolerance.
func assertSameState(t *testing.T, label string, want, got []complex128) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-12, "%s: re amp[%d]", label, i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-12, "%s: im amp[%d]", label, i)
	}
}

// TestApplyKernel_MatchesDense verifies the load-bearing invariant of the
// catalogue: every specialized kernel leaves the state exactly as the
// generic gather/multiply/scatter path with the gate's own matrix does,
// across all blocks of a random state and including reordered wires.
func TestApplyKernel_MatchesDense(t *testing.T) {
	reg := gates.NewRegistry()

	wireSets := map[int][][]int{
		1: {{0}, {2}},
		2: {{0, 1}, {3, 1}}, // includes non-adjacent, descending wires
		3: {{0, 1, 2}, {4, 0, 2}},
	}

	for _, tc := range catalogue {
		g, err := reg.Construct(tc.label, tc.params)
		require.NoError(t, err)

		for _, wires := range wireSets[tc.qubits] {
			const qubits = 5
			specialized := randomState(qubits, 42)
			dense := append([]complex128(nil), specialized...)

			affected := qindex.BitPatterns(wires, qubits)
			spectators := qindex.BitPatterns(qindex.Complement(wires, qubits), qubits)

			dim := 1 << tc.qubits
			group := make([]uint64, dim)
			scratch := make([]complex128, dim)
			for _, s := range spectators {
				for j, a := range affected {
					group[j] = s + a
				}
				g.ApplyKernel(specialized, group, scratch)
				gates.DenseKernel(g.Matrix(), dense, group, scratch)
			}

			assertSameState(t, tc.label, dense, specialized)
		}
	}
}

// TestDenseKernel_TouchesOnlyGroup verifies the side-effect contract: a
// kernel invocation mutates the named positions and nothing else.
func TestDenseKernel_TouchesOnlyGroup(t *testing.T) {
	reg := gates.NewRegistry()
	g, err := reg.Construct(gates.LabelHadamard, nil)
	require.NoError(t, err)

	const qubits = 4
	state := randomState(qubits, 7)
	before := append([]complex128(nil), state...)

	// Single block: qubit 1 amplitudes of the all-spectators-zero slice.
	group := []uint64{0, 4}
	gates.DenseKernel(g.Matrix(), state, group, make([]complex128, 2))

	touched := map[uint64]bool{0: true, 4: true}
	for i := range state {
		if touched[uint64(i)] {
			continue
		}
		assert.Equal(t, before[i], state[i], "amp[%d] must be untouched", i)
	}
}
