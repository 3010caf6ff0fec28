package conv

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ToUint converts v to uint.
// It fails for negative values and for values above math.MaxUint.
func ToUint[I constraints.Integer](v I) (uint, bool) {
	if v < 0 {
		return 0, false
	}
	// v is non-negative here, so the uint64 conversion is exact for every
	// integer type up to 64 bits. Only 32-bit platforms can take this branch.
	if uint64(v) > math.MaxUint {
		return 0, false
	}
	return uint(v), true
}

// ToInt converts v to int.
// It fails for values outside [math.MinInt, math.MaxInt].
func ToInt[I constraints.Integer](v I) (int, bool) {
	if v < 0 {
		if int64(v) < math.MinInt {
			return 0, false
		}
		return int(v), true
	}
	if uint64(v) > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

// UintToInt converts v to int.
// It fails when v exceeds math.MaxInt.
func UintToInt(v uint) (int, bool) {
	if v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}
