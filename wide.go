package at

import (
	"fmt"
	"math"
	"math/big"
)

// Wide is an index whose type may be wider than 64 bits.
//
// Go has no native integer type wider than the platform word, so values
// that can exceed it (128-bit identifiers, arbitrary precision counters)
// describe their own conversions instead.
type Wide interface {
	fmt.Stringer
	// TryUint returns the value as a uint if it is in [0, math.MaxUint].
	TryUint() (uint, bool)
	// TryInt returns the value as an int if it is in [math.MinInt, math.MaxInt].
	TryInt() (int, bool)
}

// BigIndex adapts a *big.Int to Wide. The zero value is the index 0.
type BigIndex struct {
	v *big.Int
}

var _ Wide = Big(nil)

// bigZero is never written.
var bigZero = new(big.Int)

// Big wraps v as a Wide index. A nil v is treated as zero.
func Big(v *big.Int) BigIndex {
	return BigIndex{v: v}
}

func (b BigIndex) value() *big.Int {
	if b.v == nil {
		return bigZero
	}
	return b.v
}

// TryUint implements Wide.
func (b BigIndex) TryUint() (uint, bool) {
	v := b.value()
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, false
	}
	u := v.Uint64()
	if u > math.MaxUint {
		return 0, false
	}
	return uint(u), true
}

// TryInt implements Wide.
func (b BigIndex) TryInt() (int, bool) {
	v := b.value()
	if !v.IsInt64() {
		return 0, false
	}
	i := v.Int64()
	if i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

func (b BigIndex) String() string {
	return b.value().String()
}

// PositionWide is Position for Wide indices.
//
// An index whose magnitude does not fit a signed word fails even when the
// sequence is non-empty: the overflow happens before any comparison with
// length.
func PositionWide(length uint, idx Wide) (uint, error) {
	if pos, ok := resolveWide(length, idx); ok {
		return pos, nil
	}
	return 0, newOutOfBounds(idx, length)
}

func resolveWide(length uint, idx Wide) (uint, bool) {
	if u, ok := idx.TryUint(); ok && u < length {
		return u, true
	}
	s, ok := idx.TryInt()
	if !ok {
		return 0, false
	}
	return fromEnd(length, s)
}
