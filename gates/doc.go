// Package gates defines the catalogue of quantum gate variants, their
// unitary matrices, the kernels that apply them to a state vector, and
// the label→factory registry used for dispatch.
//
// A Gate is one instantiated variant: its wire arity k, its dense
// 2^k × 2^k unitary in row-major order, and a kernel. Matrix basis
// ordering follows the module convention — the FIRST wire of the gate is
// the most significant bit of the local index, matching the order in
// which qindex.BitPatterns enumerates the gate's wires. Controlled gates
// therefore list their control wire(s) first: the lower-right block of
// CRX is the rotation, reached only when every control reads 1.
//
// Kernels come in two flavours:
//
//   - the generic dense path, DenseKernel: gather the 2^k amplitudes
//     named by an index group, multiply by the matrix, scatter back;
//   - closed-form specializations exploiting structural sparsity (a
//     permutation, a diagonal scaling, a 2×2 block), e.g. PauliX is a
//     single swap and CZ a single negation.
//
// Every specialization is mathematically identical to the dense path on
// all inputs; the equivalence is pinned by tests, not assumed.
//
// Construction goes through factories that validate the exact parameter
// count (ErrInvalidArity) before any matrix arithmetic. NewRegistry
// builds the full catalogue once; the registry is immutable afterwards
// and is threaded explicitly into the sequence applier — there is no
// ambient global table.
package gates
