package at

import (
	"github.com/hupe1980/at/internal/conv"
	"golang.org/x/exp/constraints"
)

// Index is satisfied by every integer type, signed or unsigned, of any
// width, including named types whose underlying type is an integer.
type Index interface {
	constraints.Integer
}

// Position resolves idx against a sequence of the given length.
//
// Non-negative indices count from the start. Negative indices count from the
// end, so -1 addresses the last element. The returned position is always
// strictly less than length; any other outcome is an
// *IndexOutOfBoundsError.
//
// Negative indices are rejected outright when length exceeds math.MaxInt,
// since the distance from the end cannot be computed in a signed word.
func Position[I Index](length uint, idx I) (uint, error) {
	if pos, ok := resolve(length, idx); ok {
		return pos, nil
	}
	return 0, newOutOfBounds(idx, length)
}

func resolve[I Index](length uint, idx I) (uint, bool) {
	if u, ok := conv.ToUint(idx); ok && u < length {
		return u, true
	}
	s, ok := conv.ToInt(idx)
	if !ok {
		return 0, false
	}
	return fromEnd(length, s)
}

// fromEnd resolves a signed index that missed the fast path. Only negative
// values can still be valid.
func fromEnd(length uint, s int) (uint, bool) {
	if s >= 0 {
		return 0, false
	}
	l, ok := conv.UintToInt(length)
	if !ok {
		return 0, false
	}
	// l >= 0 and s < 0, so the sum cannot overflow.
	if p := l + s; p >= 0 {
		return uint(p), true
	}
	return 0, false
}
