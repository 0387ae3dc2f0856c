// Package statevec provides a borrowed, non-owning view over a dense
// complex amplitude buffer describing a multi-qubit quantum state.
//
// The buffer is created, owned and destroyed entirely by the caller;
// a View merely pairs the slice with its qubit count and validates the
// length invariant len(amps) == 2^qubits once, at wrap time. The engine
// never resizes, reallocates or frees the buffer — every gate application
// mutates it strictly in place.
//
// Bit convention (load-bearing, shared with qindex and gates):
//
//	qubit 0 is the MOST significant bit of the amplitude index, i.e.
//	qubit i carries positional weight 2^(qubits-1-i). On two qubits the
//	amplitudes are therefore ordered |00⟩, |01⟩, |10⟩, |11⟩.
//
// Lifetime: a View is valid only while the caller keeps the underlying
// slice alive and refrains from resizing it. Copying a View copies the
// header, not the amplitudes — both copies alias the same memory.
package statevec
