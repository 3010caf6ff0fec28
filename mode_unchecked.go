//go:build at_unchecked

package at

import "unsafe"

// Checked reports whether the access functions validate indices.
// It is false only when the module is built with -tags at_unchecked.
const Checked = false

// locate maps idx to a position with wrapping arithmetic and no validation.
// An out-of-range index yields an arbitrary position.
func locate[I Index](length uint, idx I) uint {
	if idx >= 0 {
		return uint(idx)
	}
	return length + uint(int(idx))
}

func locateWide(length uint, idx Wide) uint {
	if u, ok := idx.TryUint(); ok {
		return u
	}
	// A failed conversion leaves s at 0 and maps to length, which is out of
	// range like the index itself.
	s, _ := idx.TryInt()
	return length + uint(s)
}

// elem addresses s[pos] without a bounds check. The caller guarantees
// pos < len(s).
func elem[E any](s []E, pos uint) *E {
	var zero E
	return (*E)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(pos)*unsafe.Sizeof(zero)))
}
