// Package at provides bounds-checked slice indexing with any integer index
// type and Python-style negative indices.
//
// # Quick Start
//
//	v := []int{8, 2, 1, 0}
//	at.At(v, -1)         // 0, the last element
//	*at.RefAt(v, 2)      // 1
//	*at.MutAt(v, -3) = 7 // v is now [8, 7, 1, 0]
//
// # Index Types
//
// Any integer type is accepted: int8 through int64, uint8 through uint64,
// uintptr and named types built on them. Integers wider than 64 bits are
// supported through the Wide interface; BigIndex adapts *big.Int.
//
// Resolution first tries the index as an unsigned word. If that succeeds and
// is in range it is used directly, which for unsigned index types costs a
// single comparison, the same as native indexing. Otherwise a negative index
// is counted back from the end of the sequence.
//
// # Access Modes
//
// The caller picks the access mode explicitly:
//
//   - At copies the element out
//   - RefAt returns a pointer for reading in place
//   - MutAt returns a pointer for writing
//
// Seq bundles the three as methods on a named slice type for callers that
// want a fixed index type.
//
// # Failure
//
// An index that does not address an element panics with an
// *IndexOutOfBoundsError. This reports a programming error; there is no
// variant of the access functions that returns the error. Position and
// PositionWide expose the resolution itself for callers that need to
// validate untrusted input.
//
// # Unchecked Mode
//
// Building with -tags at_unchecked removes every validation from At, RefAt
// and MutAt (and their Wide variants). Indices are mapped with wrapping
// arithmetic and elements are addressed through package unsafe. An
// out-of-range index is then undefined behaviour. The tag applies to the
// whole program; the Checked constant reports which mode was compiled.
// Position and PositionWide always validate.
package at
