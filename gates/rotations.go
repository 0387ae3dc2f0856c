package gates

import (
	"math"
	"math/cmplx"
)

// Parametric matrices are computed once at construction from the supplied
// angle(s) via half-angle identities and are immutable thereafter. Sign
// conventions match PennyLane: RX has cos(θ/2) on the diagonal and
// -i·sin(θ/2) off-diagonal; RZ carries diagonal phases e^{∓iθ/2}; Rot is
// the Z(φ)·Y(θ)·Z(ω) composition.

// rotEntries composes azimuthal/polar/final-phase angles into the four
// entries of the general single-qubit rotation.
func rotEntries(phi, theta, omega float64) (r1, r2, r3, r4 complex128) {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)

	r1 = c * cmplx.Exp(complex(0, -(phi+omega)/2))
	r2 = -s * cmplx.Exp(complex(0, (phi-omega)/2))
	r3 = s * cmplx.Exp(complex(0, (omega-phi)/2))
	r4 = c * cmplx.Exp(complex(0, (phi+omega)/2))

	return r1, r2, r3, r4
}

// controlled embeds a 2×2 block into the lower-right corner of the 4×4
// identity: the rotation fires only when the control (first wire, most
// significant local bit) reads 1.
func controlled(r1, r2, r3, r4 complex128) []complex128 {
	return []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, r1, r2,
		0, 0, r3, r4}
}

// ---------------------------------------------------------------------------
// Single-qubit rotations
// ---------------------------------------------------------------------------

type rx struct {
	m []complex128
}

func newRX(params []float64) (Gate, error) {
	if err := requireParams(LabelRX, params, 1); err != nil {
		return nil, err
	}

	c := complex(math.Cos(params[0]/2), 0)
	js := complex(0, -math.Sin(params[0]/2))

	return rx{m: []complex128{
		c, js,
		js, c}}, nil
}

func (rx) Label() string          { return LabelRX }
func (rx) Qubits() int            { return 1 }
func (g rx) Matrix() []complex128 { return g.m }

func (g rx) ApplyKernel(state []complex128, indices []uint64, scratch []complex128) {
	DenseKernel(g.m, state, indices, scratch)
}

type ry struct {
	m []complex128
}

func newRY(params []float64) (Gate, error) {
	if err := requireParams(LabelRY, params, 1); err != nil {
		return nil, err
	}

	c := complex(math.Cos(params[0]/2), 0)
	s := complex(math.Sin(params[0]/2), 0)

	return ry{m: []complex128{
		c, -s,
		s, c}}, nil
}

func (ry) Label() string          { return LabelRY }
func (ry) Qubits() int            { return 1 }
func (g ry) Matrix() []complex128 { return g.m }

func (g ry) ApplyKernel(state []complex128, indices []uint64, scratch []complex128) {
	DenseKernel(g.m, state, indices, scratch)
}

type rz struct {
	first, second complex128
	m             []complex128
}

func newRZ(params []float64) (Gate, error) {
	if err := requireParams(LabelRZ, params, 1); err != nil {
		return nil, err
	}

	first := cmplx.Exp(complex(0, -params[0]/2))
	second := cmplx.Exp(complex(0, params[0]/2))

	return rz{first: first, second: second, m: []complex128{
		first, 0,
		0, second}}, nil
}

func (rz) Label() string          { return LabelRZ }
func (rz) Qubits() int            { return 1 }
func (g rz) Matrix() []complex128 { return g.m }

// ApplyKernel scales the pair by the diagonal phases, skipping the dense
// multiply entirely.
func (g rz) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[0]] *= g.first
	state[indices[1]] *= g.second
}

type phaseShift struct {
	shift complex128
	m     []complex128
}

func newPhaseShift(params []float64) (Gate, error) {
	if err := requireParams(LabelPhaseShift, params, 1); err != nil {
		return nil, err
	}

	shift := cmplx.Exp(complex(0, params[0]))

	return phaseShift{shift: shift, m: []complex128{
		1, 0,
		0, shift}}, nil
}

func (phaseShift) Label() string          { return LabelPhaseShift }
func (phaseShift) Qubits() int            { return 1 }
func (g phaseShift) Matrix() []complex128 { return g.m }

// ApplyKernel multiplies the |1⟩ amplitude by e^{iφ}.
func (g phaseShift) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[1]] *= g.shift
}

type rot struct {
	m []complex128
}

func newRot(params []float64) (Gate, error) {
	if err := requireParams(LabelRot, params, 3); err != nil {
		return nil, err
	}

	r1, r2, r3, r4 := rotEntries(params[0], params[1], params[2])

	return rot{m: []complex128{
		r1, r2,
		r3, r4}}, nil
}

func (rot) Label() string          { return LabelRot }
func (rot) Qubits() int            { return 1 }
func (g rot) Matrix() []complex128 { return g.m }

func (g rot) ApplyKernel(state []complex128, indices []uint64, scratch []complex128) {
	DenseKernel(g.m, state, indices, scratch)
}

// ---------------------------------------------------------------------------
// Controlled rotations (control wire first, identity when control=0)
// ---------------------------------------------------------------------------

type crx struct {
	c, js complex128
	m     []complex128
}

func newCRX(params []float64) (Gate, error) {
	if err := requireParams(LabelCRX, params, 1); err != nil {
		return nil, err
	}

	c := complex(math.Cos(params[0]/2), 0)
	js := complex(0, -math.Sin(params[0]/2))

	return crx{c: c, js: js, m: controlled(c, js, js, c)}, nil
}

func (crx) Label() string          { return LabelCRX }
func (crx) Qubits() int            { return 2 }
func (g crx) Matrix() []complex128 { return g.m }

// ApplyKernel rotates the control=1 half of the block and leaves the
// control=0 half untouched.
func (g crx) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	v0, v1 := state[indices[2]], state[indices[3]]
	state[indices[2]] = g.c*v0 + g.js*v1
	state[indices[3]] = g.js*v0 + g.c*v1
}

type cry struct {
	c, s complex128
	m    []complex128
}

func newCRY(params []float64) (Gate, error) {
	if err := requireParams(LabelCRY, params, 1); err != nil {
		return nil, err
	}

	c := complex(math.Cos(params[0]/2), 0)
	s := complex(math.Sin(params[0]/2), 0)

	return cry{c: c, s: s, m: controlled(c, -s, s, c)}, nil
}

func (cry) Label() string          { return LabelCRY }
func (cry) Qubits() int            { return 2 }
func (g cry) Matrix() []complex128 { return g.m }

func (g cry) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	v0, v1 := state[indices[2]], state[indices[3]]
	state[indices[2]] = g.c*v0 - g.s*v1
	state[indices[3]] = g.s*v0 + g.c*v1
}

type crz struct {
	first, second complex128
	m             []complex128
}

func newCRZ(params []float64) (Gate, error) {
	if err := requireParams(LabelCRZ, params, 1); err != nil {
		return nil, err
	}

	first := cmplx.Exp(complex(0, -params[0]/2))
	second := cmplx.Exp(complex(0, params[0]/2))

	return crz{first: first, second: second, m: controlled(first, 0, 0, second)}, nil
}

func (crz) Label() string          { return LabelCRZ }
func (crz) Qubits() int            { return 2 }
func (g crz) Matrix() []complex128 { return g.m }

func (g crz) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	state[indices[2]] *= g.first
	state[indices[3]] *= g.second
}

type crot struct {
	r1, r2, r3, r4 complex128
	m              []complex128
}

func newCRot(params []float64) (Gate, error) {
	if err := requireParams(LabelCRot, params, 3); err != nil {
		return nil, err
	}

	r1, r2, r3, r4 := rotEntries(params[0], params[1], params[2])

	return crot{r1: r1, r2: r2, r3: r3, r4: r4, m: controlled(r1, r2, r3, r4)}, nil
}

func (crot) Label() string          { return LabelCRot }
func (crot) Qubits() int            { return 2 }
func (g crot) Matrix() []complex128 { return g.m }

func (g crot) ApplyKernel(state []complex128, indices []uint64, _ []complex128) {
	v0, v1 := state[indices[2]], state[indices[3]]
	state[indices[2]] = g.r1*v0 + g.r2*v1
	state[indices[3]] = g.r3*v0 + g.r4*v1
}
