package gates

import (
	"math"
	"math/cmplx"
)

// Shared constants of the fixed catalogue.
var (
	sqrt2Inv = complex(1/math.Sqrt2, 0)

	// tShift is e^{iπ/4}, the |1⟩ phase of the T gate.
	tShift = cmplx.Exp(complex(0, math.Pi/4))
)

// Constant matrices, one per nonparametric kind. Row-major; first wire is
// the most significant local bit.
var (
	matPauliX = []complex128{
		0, 1,
		1, 0}

	matPauliY = []complex128{
		0, -1i,
		1i, 0}

	matPauliZ = []complex128{
		1, 0,
		0, -1}

	matHadamard = []complex128{
		sqrt2Inv, sqrt2Inv,
		sqrt2Inv, -sqrt2Inv}

	matS = []complex128{
		1, 0,
		0, 1i}

	matT = []complex128{
		1, 0,
		0, tShift}

	matCNOT = []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0}

	matSWAP = []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1}

	matCZ = []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1}

	matToffoli = []complex128{
		1, 0, 0, 0, 0, 0, 0, 0,
		0, 1, 0, 0, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 0, 0, 0, 0,
		0, 0, 0, 0, 1, 0, 0, 0,
		0, 0, 0, 0, 0, 1, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 1,
		0, 0, 0, 0, 0, 0, 1, 0}

	matCSWAP = []complex128{
		1, 0, 0, 0, 0, 0, 0, 0,
		0, 1, 0, 0, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 0, 0, 0, 0,
		0, 0, 0, 0, 1, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 1, 0,
		0, 0, 0, 0, 0, 1, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 1}
)

// ---------------------------------------------------------------------------
// Single-qubit fixed gates
// ---------------------------------------------------------------------------

type pauliX struct{}

func newPauliX(params []float64) (Gate, error) {
	if err := requireParams(LabelPauliX, params, 0); err != nil {
		return nil, err
	}

	return pauliX{}, nil
}

func (pauliX) Label() string        { return LabelPauliX }
func (pauliX) Qubits() int          { return 1 }
func (pauliX) Matrix() []complex128 { return matPauliX }

// ApplyKernel swaps the |0⟩ and |1⟩ amplitudes of the block.
func (pauliX) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[0]], state[indices[1]] = state[indices[1]], state[indices[0]]
}

type pauliY struct{}

func newPauliY(params []float64) (Gate, error) {
	if err := requireParams(LabelPauliY, params, 0); err != nil {
		return nil, err
	}

	return pauliY{}, nil
}

func (pauliY) Label() string        { return LabelPauliY }
func (pauliY) Qubits() int          { return 1 }
func (pauliY) Matrix() []complex128 { return matPauliY }

// ApplyKernel cross-swaps the pair with ∓i phases.
func (pauliY) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	v0 := state[indices[0]]
	state[indices[0]] = -1i * state[indices[1]]
	state[indices[1]] = 1i * v0
}

type pauliZ struct{}

func newPauliZ(params []float64) (Gate, error) {
	if err := requireParams(LabelPauliZ, params, 0); err != nil {
		return nil, err
	}

	return pauliZ{}, nil
}

func (pauliZ) Label() string        { return LabelPauliZ }
func (pauliZ) Qubits() int          { return 1 }
func (pauliZ) Matrix() []complex128 { return matPauliZ }

// ApplyKernel negates the |1⟩ amplitude.
func (pauliZ) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[1]] *= -1
}

type hadamard struct{}

func newHadamard(params []float64) (Gate, error) {
	if err := requireParams(LabelHadamard, params, 0); err != nil {
		return nil, err
	}

	return hadamard{}, nil
}

func (hadamard) Label() string        { return LabelHadamard }
func (hadamard) Qubits() int          { return 1 }
func (hadamard) Matrix() []complex128 { return matHadamard }

// ApplyKernel performs the (v0±v1)/√2 butterfly.
func (hadamard) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	v0, v1 := state[indices[0]], state[indices[1]]
	state[indices[0]] = sqrt2Inv * (v0 + v1)
	state[indices[1]] = sqrt2Inv * (v0 - v1)
}

type sGate struct{}

func newS(params []float64) (Gate, error) {
	if err := requireParams(LabelS, params, 0); err != nil {
		return nil, err
	}

	return sGate{}, nil
}

func (sGate) Label() string        { return LabelS }
func (sGate) Qubits() int          { return 1 }
func (sGate) Matrix() []complex128 { return matS }

// ApplyKernel multiplies the |1⟩ amplitude by i.
func (sGate) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[1]] *= 1i
}

type tGate struct{}

func newT(params []float64) (Gate, error) {
	if err := requireParams(LabelT, params, 0); err != nil {
		return nil, err
	}

	return tGate{}, nil
}

func (tGate) Label() string        { return LabelT }
func (tGate) Qubits() int          { return 1 }
func (tGate) Matrix() []complex128 { return matT }

// ApplyKernel multiplies the |1⟩ amplitude by e^{iπ/4}.
func (tGate) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[1]] *= tShift
}

// ---------------------------------------------------------------------------
// Multi-qubit fixed gates
// ---------------------------------------------------------------------------

type cnot struct{}

func newCNOT(params []float64) (Gate, error) {
	if err := requireParams(LabelCNOT, params, 0); err != nil {
		return nil, err
	}

	return cnot{}, nil
}

func (cnot) Label() string        { return LabelCNOT }
func (cnot) Qubits() int          { return 2 }
func (cnot) Matrix() []complex128 { return matCNOT }

// ApplyKernel swaps the |10⟩ and |11⟩ amplitudes (control listed first).
func (cnot) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[2]], state[indices[3]] = state[indices[3]], state[indices[2]]
}

type swapGate struct{}

func newSWAP(params []float64) (Gate, error) {
	if err := requireParams(LabelSWAP, params, 0); err != nil {
		return nil, err
	}

	return swapGate{}, nil
}

func (swapGate) Label() string        { return LabelSWAP }
func (swapGate) Qubits() int          { return 2 }
func (swapGate) Matrix() []complex128 { return matSWAP }

// ApplyKernel swaps the |01⟩ and |10⟩ amplitudes.
func (swapGate) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[1]], state[indices[2]] = state[indices[2]], state[indices[1]]
}

type cz struct{}

func newCZ(params []float64) (Gate, error) {
	if err := requireParams(LabelCZ, params, 0); err != nil {
		return nil, err
	}

	return cz{}, nil
}

func (cz) Label() string        { return LabelCZ }
func (cz) Qubits() int          { return 2 }
func (cz) Matrix() []complex128 { return matCZ }

// ApplyKernel negates the |11⟩ amplitude.
func (cz) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[3]] *= -1
}

type toffoli struct{}

func newToffoli(params []float64) (Gate, error) {
	if err := requireParams(LabelToffoli, params, 0); err != nil {
		return nil, err
	}

	return toffoli{}, nil
}

func (toffoli) Label() string        { return LabelToffoli }
func (toffoli) Qubits() int          { return 3 }
func (toffoli) Matrix() []complex128 { return matToffoli }

// ApplyKernel swaps |110⟩ and |111⟩ (both controls set).
func (toffoli) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[6]], state[indices[7]] = state[indices[7]], state[indices[6]]
}

type cswap struct{}

func newCSWAP(params []float64) (Gate, error) {
	if err := requireParams(LabelCSWAP, params, 0); err != nil {
		return nil, err
	}

	return cswap{}, nil
}

func (cswap) Label() string        { return LabelCSWAP }
func (cswap) Qubits() int          { return 3 }
func (cswap) Matrix() []complex128 { return matCSWAP }

// ApplyKernel swaps |101⟩ and |110⟩ (control set, targets exchanged).
func (cswap) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[5]], state[indices[6]] = state[indices[6]], state[indices[5]]
}
