//go:build !at_unchecked

package at

// Checked reports whether the access functions validate indices.
// It is false only when the module is built with -tags at_unchecked.
const Checked = true

func locate[I Index](length uint, idx I) uint {
	pos, ok := resolve(length, idx)
	if !ok {
		panicBounds(idx, length)
	}
	return pos
}

func locateWide(length uint, idx Wide) uint {
	pos, ok := resolveWide(length, idx)
	if !ok {
		panicBounds(idx, length)
	}
	return pos
}

// panicBounds stays out of line so the boxing of idx never reaches the
// inlined fast path.
//
//go:noinline
func panicBounds(idx any, length uint) {
	panic(newOutOfBounds(idx, length))
}

func elem[E any](s []E, pos uint) *E {
	return &s[pos]
}
