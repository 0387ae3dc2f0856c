// Package simulate applies ordered sequences of named gate operations to
// a borrowed state vector, in place.
//
// An Operation is the immutable (label, wires, params) triple supplied by
// the circuit-execution layer. Apply resolves each label through a gate
// registry, validates the wires, derives the affected/spectator bit
// patterns through qindex, and runs the gate's kernel once per
// independent block:
//
//	Apply → Registry (label+params → Gate)
//	      → qindex   (wires+qubits → index groups)
//	      → kernel   (Gate + index group → mutated amplitudes)
//
// Operations are strictly sequential: each one's output state is the next
// one's input. A failed operation is detected before it mutates anything,
// so on error the buffer holds exactly the state after the last
// successful operation; later operations are never attempted.
//
// Within one operation the 2^(n-k) blocks touch pairwise-disjoint index
// sets, which WithParallel exploits by fanning the block loop out over a
// bounded errgroup — no locking, one final join. Operations still run one
// at a time, and the caller must serialize Apply calls against the same
// buffer (single-writer discipline; the engine provides no locking of its
// own).
//
// ApplyOperation is the single-gate entry point for hosts that interleave
// their own logic between gate applications.
package simulate
