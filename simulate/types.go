package simulate

import "errors"

// Sentinel errors for operation validation.
var (
	// ErrInvalidWireCount is returned when an operation supplies a number
	// of wires different from the gate kind's qubit arity.
	ErrInvalidWireCount = errors.New("simulate: wire count does not match gate arity")

	// ErrWireOutOfRange is returned when a wire index falls outside
	// [0, qubits) or appears twice in one operation's wire list. Both are
	// rejected before index generation — out-of-range offsets would
	// corrupt unrelated amplitudes.
	ErrWireOutOfRange = errors.New("simulate: wire index out of range or duplicated")
)

// Operation is one gate application request: a registry label, the
// ordered wires the gate acts on, and its real parameters. Wire order is
// significant (controls are listed first for controlled gates); the
// applier consumes the value once and never retains it.
type Operation struct {
	// Label identifies the gate kind, e.g. "Hadamard" or "CRX".
	Label string

	// Wires are the target qubit indices, each in [0, qubits), no
	// duplicates. len(Wires) must equal the gate kind's arity.
	Wires []int

	// Params are the gate's real parameters; length must match the
	// kind's parameter count (empty for fixed gates).
	Params []float64
}
