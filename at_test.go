package at

import (
	"errors"
	"math"
	"testing"

	"github.com/hupe1980/at/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slot uint16

type delta int8

func TestPosition(t *testing.T) {
	t.Run("non-negative in range", func(t *testing.T) {
		pos, err := Position(4, 0)
		require.NoError(t, err)
		assert.Equal(t, uint(0), pos)

		pos, err = Position(4, uint8(3))
		require.NoError(t, err)
		assert.Equal(t, uint(3), pos)
	})

	t.Run("negative in range", func(t *testing.T) {
		pos, err := Position(4, -1)
		require.NoError(t, err)
		assert.Equal(t, uint(3), pos)

		pos, err = Position(4, int64(-4))
		require.NoError(t, err)
		assert.Equal(t, uint(0), pos)
	})

	t.Run("past the end", func(t *testing.T) {
		_, err := Position(4, 4)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)

		_, err = Position(4, uint64(math.MaxUint64))
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	})

	t.Run("before the start", func(t *testing.T) {
		_, err := Position(4, int16(-5))
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)

		_, err = Position(4, int64(math.MinInt64))
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	})

	t.Run("empty sequence", func(t *testing.T) {
		_, err := Position(0, 0)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)

		_, err = Position(0, -1)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	})

	t.Run("named types", func(t *testing.T) {
		pos, err := Position(10, slot(9))
		require.NoError(t, err)
		assert.Equal(t, uint(9), pos)

		pos, err = Position(10, delta(-10))
		require.NoError(t, err)
		assert.Equal(t, uint(0), pos)
	})

	t.Run("length beyond max int", func(t *testing.T) {
		length := uint(math.MaxInt) + 1

		pos, err := Position(length, uint(math.MaxInt))
		require.NoError(t, err)
		assert.Equal(t, uint(math.MaxInt), pos)

		// Negative indices are never resolved against such a length.
		_, err = Position(length, -1)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	})

	t.Run("error details", func(t *testing.T) {
		_, err := Position(1, -2)

		var oob *IndexOutOfBoundsError
		require.True(t, errors.As(err, &oob))
		assert.Equal(t, "-2", oob.Index)
		assert.Equal(t, uint(1), oob.Len)
		assert.EqualError(t, err, "index out of bounds: the len is 1 but the index is -2")
	})
}

func TestPositionProperties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < 1000; i++ {
		length := 1 + rng.Intn(64)

		idx := rng.ValidIndex(length)
		pos, err := Position(uint(length), idx)
		require.NoError(t, err)
		assert.Equal(t, uint(idx), pos)

		neg := rng.NegativeIndex(length)
		pos, err = Position(uint(length), neg)
		require.NoError(t, err)
		assert.Equal(t, uint(length+neg), pos)

		bad := rng.OutOfRange(length)
		_, err = Position(uint(length), bad)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds, "index %d, len %d", bad, length)
	}
}

func TestPositionAcrossWidths(t *testing.T) {
	const length = 3

	check := func(t *testing.T, got uint, err error, want uint) {
		t.Helper()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	pos, err := Position(length, int8(-1))
	check(t, pos, err, 2)
	pos, err = Position(length, int16(-2))
	check(t, pos, err, 1)
	pos, err = Position(length, int32(-3))
	check(t, pos, err, 0)
	pos, err = Position(length, int64(2))
	check(t, pos, err, 2)
	pos, err = Position(length, uint16(1))
	check(t, pos, err, 1)
	pos, err = Position(length, uint32(0))
	check(t, pos, err, 0)
	pos, err = Position(length, uintptr(2))
	check(t, pos, err, 2)

	_, err = Position(length, uint8(math.MaxUint8))
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = Position(length, int8(math.MinInt8))
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestPositionIdempotent(t *testing.T) {
	a, errA := Position(5, -2)
	b, errB := Position(5, -2)
	assert.Equal(t, a, b)
	assert.Equal(t, errA, errB)
}
