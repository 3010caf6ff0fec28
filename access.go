package at

// At returns a copy of the element of s addressed by idx.
// Negative indices count from the end: At(s, -1) is the last element.
//
// At panics with an *IndexOutOfBoundsError if idx does not address an
// element of s. Arrays are indexed through a slice of the array, At(a[:], i).
func At[S ~[]E, E any, I Index](s S, idx I) E {
	return *elem(s, locate(uint(len(s)), idx))
}

// RefAt returns a pointer to the element of s addressed by idx, for reading
// in place. Callers must not write through it; use MutAt for that.
//
// RefAt panics with an *IndexOutOfBoundsError if idx does not address an
// element of s.
func RefAt[S ~[]E, E any, I Index](s S, idx I) *E {
	return elem(s, locate(uint(len(s)), idx))
}

// MutAt returns a pointer to the element of s addressed by idx, for writing.
// The caller is responsible for excluding concurrent readers and writers of
// that element.
//
// MutAt panics with an *IndexOutOfBoundsError if idx does not address an
// element of s.
func MutAt[S ~[]E, E any, I Index](s S, idx I) *E {
	return elem(s, locate(uint(len(s)), idx))
}

// AtWide is At for Wide indices.
func AtWide[S ~[]E, E any](s S, idx Wide) E {
	return *elem(s, locateWide(uint(len(s)), idx))
}

// RefAtWide is RefAt for Wide indices.
func RefAtWide[S ~[]E, E any](s S, idx Wide) *E {
	return elem(s, locateWide(uint(len(s)), idx))
}

// MutAtWide is MutAt for Wide indices.
func MutAtWide[S ~[]E, E any](s S, idx Wide) *E {
	return elem(s, locateWide(uint(len(s)), idx))
}

// Accessor is the capability of indexing a sequence of E with indices of
// type I in each access mode.
type Accessor[E any, I Index] interface {
	// At returns a copy of the element at idx.
	At(idx I) E
	// RefAt returns a pointer for reading the element at idx.
	RefAt(idx I) *E
	// MutAt returns a pointer for writing the element at idx.
	MutAt(idx I) *E
}

// Seq is a slice whose elements are addressed with indices of type I.
//
//	s := at.Seq[float32, int8]{0.5, 1.5, 2.5}
//	last := s.At(-1)
type Seq[E any, I Index] []E

var _ Accessor[int, int] = Seq[int, int](nil)

// At implements Accessor.
func (s Seq[E, I]) At(idx I) E { return At(s, idx) }

// RefAt implements Accessor.
func (s Seq[E, I]) RefAt(idx I) *E { return RefAt(s, idx) }

// MutAt implements Accessor.
func (s Seq[E, I]) MutAt(idx I) *E { return MutAt(s, idx) }

// Len returns the number of elements in s.
func (s Seq[E, I]) Len() int { return len(s) }
