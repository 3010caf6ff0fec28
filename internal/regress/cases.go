package regress

import (
	"math/big"
	"testing"

	"github.com/hupe1980/at"
)

// Case names of DefaultCases.
const (
	NativeCase   = "native_index"
	AtCase       = "at_index"
	AtI64Case    = "at_index_i64"
	AtWideCase   = "at_index_wide"
	AtNegCase    = "at_negative"
	RefAtCase    = "ref_at"
	MutAtCase    = "mut_at"
	PositionCase = "position"
)

// Case is a single benchmark.
type Case struct {
	Name  string
	Bench func(b *testing.B)
}

// Package-level state keeps the compiler from constant-folding indices or
// discarding loads.
var (
	benchData  = []uint64{1, 2, 3}
	benchIndex = 2
	benchNeg   = -1
	benchWide  = at.Big(big.NewInt(2))

	sink    uint64
	sinkPtr *uint64
	sinkPos uint
)

// DefaultCases returns the suite comparing every access mode and index kind
// with native indexing.
func DefaultCases() []Case {
	return []Case{
		{Name: NativeCase, Bench: benchNative},
		{Name: AtCase, Bench: benchAt},
		{Name: AtI64Case, Bench: benchAtI64},
		{Name: AtWideCase, Bench: benchAtWide},
		{Name: AtNegCase, Bench: benchAtNegative},
		{Name: RefAtCase, Bench: benchRefAt},
		{Name: MutAtCase, Bench: benchMutAt},
		{Name: PositionCase, Bench: benchPosition},
	}
}

func benchNative(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = benchData[benchIndex]
	}
}

func benchAt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = at.At(benchData, uint(benchIndex))
	}
}

func benchAtI64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = at.At(benchData, int64(benchIndex))
	}
}

func benchAtWide(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = at.AtWide(benchData, benchWide)
	}
}

func benchAtNegative(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = at.At(benchData, benchNeg)
	}
}

func benchRefAt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkPtr = at.RefAt(benchData, benchIndex)
	}
}

func benchMutAt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkPtr = at.MutAt(benchData, benchIndex)
	}
}

func benchPosition(b *testing.B) {
	for i := 0; i < b.N; i++ {
		pos, err := at.Position(uint(len(benchData)), benchNeg)
		if err != nil {
			b.Fatal(err)
		}
		sinkPos = pos
	}
}
