package statevec

import (
	"errors"
	"fmt"
)

// Sentinel errors for view construction.
var (
	// ErrBadQubitCount is returned when the qubit count is < 1.
	ErrBadQubitCount = errors.New("statevec: qubit count must be at least 1")

	// ErrSizeMismatch is returned when len(amps) != 2^qubits.
	ErrSizeMismatch = errors.New("statevec: amplitude length is not 2^qubits")
)

// View is a non-owning window over a caller-owned amplitude buffer.
// The zero value is unusable; construct through Wrap.
type View struct {
	amps   []complex128
	qubits int
}

// Wrap pairs a caller-owned amplitude slice with its qubit count.
//
// Validation:
//   - qubits >= 1, otherwise ErrBadQubitCount;
//   - len(amps) == 1<<qubits, otherwise ErrSizeMismatch (wrapped with the
//     observed and required lengths for diagnostics).
//
// The slice is aliased, never copied: mutations through the view are
// visible to the caller and vice versa.
//
// Complexity: Time O(1), Space O(1).
func Wrap(amps []complex128, qubits int) (View, error) {
	if qubits < 1 {
		return View{}, fmt.Errorf("qubits=%d: %w", qubits, ErrBadQubitCount)
	}
	if want := 1 << qubits; len(amps) != want {
		return View{}, fmt.Errorf("got %d amplitudes, want %d: %w", len(amps), want, ErrSizeMismatch)
	}

	return View{amps: amps, qubits: qubits}, nil
}

// Qubits reports the number of qubits the view spans.
func (v View) Qubits() int { return v.qubits }

// Len reports the number of amplitudes, always 1<<Qubits().
func (v View) Len() int { return len(v.amps) }

// At returns the amplitude of basis state i. Bounds are the slice's own;
// indices produced by qindex for this view's qubit count are always valid.
func (v View) At(i int) complex128 { return v.amps[i] }

// Amplitudes exposes the underlying buffer for in-place mutation by gate
// kernels. The returned slice ALIASES caller memory — it is not a copy.
func (v View) Amplitudes() []complex128 { return v.amps }
