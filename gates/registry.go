package gates

import (
	"fmt"
	"sort"
)

// Factory validates a parameter list and constructs one gate variant.
// Factories return ErrInvalidArity (wrapped with label/want/got) on a
// parameter-count mismatch, before any matrix arithmetic happens.
type Factory func(params []float64) (Gate, error)

// Registry maps gate labels to their factories. It is populated once by
// NewRegistry and read-only thereafter: no runtime registration surface
// exists, so a Registry is safe for unsynchronized concurrent lookups.
//
// Lifecycle: construct once during process/library initialization and
// thread it explicitly into whatever applies operations (see
// simulate.WithRegistry) — the package deliberately exposes no ambient
// global table.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry builds the full catalogue of supported gate kinds.
//
// Complexity: Time O(kinds), Space O(kinds).
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{
		LabelPauliX:     newPauliX,
		LabelPauliY:     newPauliY,
		LabelPauliZ:     newPauliZ,
		LabelHadamard:   newHadamard,
		LabelS:          newS,
		LabelT:          newT,
		LabelRX:         newRX,
		LabelRY:         newRY,
		LabelRZ:         newRZ,
		LabelPhaseShift: newPhaseShift,
		LabelRot:        newRot,
		LabelCNOT:       newCNOT,
		LabelSWAP:       newSWAP,
		LabelCZ:         newCZ,
		LabelCRX:        newCRX,
		LabelCRY:        newCRY,
		LabelCRZ:        newCRZ,
		LabelCRot:       newCRot,
		LabelToffoli:    newToffoli,
		LabelCSWAP:      newCSWAP,
	}}
}

// Construct resolves label to its factory and builds the gate.
//
// Errors:
//   - ErrUnknownGate (wrapped with the offending label) when the label is
//     not in the catalogue;
//   - ErrInvalidArity propagated from the factory on parameter mismatch.
//
// Complexity: Time O(1) lookup plus O(1) matrix construction.
func (r *Registry) Construct(label string, params []float64) (Gate, error) {
	factory, ok := r.factories[label]
	if !ok {
		return nil, fmt.Errorf("%s is not a supported gate type: %w", label, ErrUnknownGate)
	}

	return factory(params)
}

// Labels returns every catalogue label in ascending order. Deterministic
// output keeps diagnostics and tests stable.
func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.factories))
	for label := range r.factories {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}
