package at

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is the sentinel matched by every resolution failure.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// IndexOutOfBoundsError reports an index that does not address an element
// of a sequence.
//
// The same error is used whether the index magnitude could not be converted
// to a native word, a non-negative index reached past the end, or a negative
// index reached before the start.
type IndexOutOfBoundsError struct {
	// Index is the offending index, formatted with %v.
	Index string
	// Len is the length of the sequence.
	Len uint
}

func newOutOfBounds(idx any, length uint) *IndexOutOfBoundsError {
	return &IndexOutOfBoundsError{Index: fmt.Sprintf("%v", idx), Len: length}
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index out of bounds: the len is %d but the index is %s", e.Len, e.Index)
}

// Is reports whether target is ErrIndexOutOfBounds.
func (e *IndexOutOfBoundsError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}
