package gates

import (
	"errors"
	"fmt"
)

// Sentinel errors for gate construction and dispatch.
var (
	// ErrUnknownGate is returned by Registry.Construct for labels absent
	// from the catalogue.
	ErrUnknownGate = errors.New("gates: unknown gate label")

	// ErrInvalidArity is returned by factories when the supplied parameter
	// count does not match the gate kind's required count.
	ErrInvalidArity = errors.New("gates: parameter count mismatch")
)

// Labels of every supported gate kind. These are the dispatch keys the
// registry recognizes; they are stable API.
const (
	LabelPauliX     = "PauliX"
	LabelPauliY     = "PauliY"
	LabelPauliZ     = "PauliZ"
	LabelHadamard   = "Hadamard"
	LabelS          = "S"
	LabelT          = "T"
	LabelRX         = "RX"
	LabelRY         = "RY"
	LabelRZ         = "RZ"
	LabelPhaseShift = "PhaseShift"
	LabelRot        = "Rot"
	LabelCNOT       = "CNOT"
	LabelSWAP       = "SWAP"
	LabelCZ         = "CZ"
	LabelCRX        = "CRX"
	LabelCRY        = "CRY"
	LabelCRZ        = "CRZ"
	LabelCRot       = "CRot"
	LabelToffoli    = "Toffoli"
	LabelCSWAP      = "CSWAP"
)

// Gate is one instantiated gate variant. Implementations are immutable
// after construction and safe for concurrent use.
type Gate interface {
	// Label returns the kind's dispatch label.
	Label() string

	// Qubits returns the wire arity k.
	Qubits() int

	// Matrix returns the dense 2^k × 2^k unitary, row-major, with the
	// gate's first wire as the most significant local bit. The slice is
	// shared across instances of the same kind — treat it as read-only.
	Matrix() []complex128

	// ApplyKernel mutates exactly the 2^k state positions named by
	// indices, leaving state as if Matrix() had been applied densely.
	// scratch must have length 2^k; specializations may ignore it.
	ApplyKernel(state []complex128, indices []uint64, scratch []complex128)
}

// DenseKernel is the generic gather → matrix-multiply → scatter path:
// scratch[j] = state[indices[j]], then
// state[indices[i]] = Σ_j matrix[i*dim+j] · scratch[j].
//
// It reads and writes only the positions named by indices. Specialized
// kernels must be observationally equivalent to this function invoked
// with the gate's matrix.
//
// Complexity: Time O(4^k), Space O(1) beyond the caller's scratch.
func DenseKernel(matrix, state []complex128, indices []uint64, scratch []complex128) {
	dim := len(indices)

	// Gather
	for j, idx := range indices {
		scratch[j] = state[idx]
	}

	// Multiply + scatter
	for i, idx := range indices {
		row := matrix[i*dim : (i+1)*dim]
		var sum complex128
		for j := 0; j < dim; j++ {
			sum += row[j] * scratch[j]
		}
		state[idx] = sum
	}
}

// requireParams enforces a kind's exact parameter arity before any matrix
// construction, mirroring the error text callers grep for.
func requireParams(label string, params []float64, want int) error {
	if len(params) != want {
		return fmt.Errorf("%s: requires %d parameters but got %d: %w", label, want, len(params), ErrInvalidArity)
	}

	return nil
}
