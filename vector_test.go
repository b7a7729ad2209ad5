package bytevec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bytevec"
	"github.com/hupe1980/bytevec/testutil"
)

func newUint32Vector(t *testing.T, vals ...uint32) *bytevec.Vector {
	t.Helper()
	v, err := bytevec.New(4)
	require.NoError(t, err)
	for _, val := range vals {
		require.NoError(t, v.PushBack(testutil.Uint32s(val)))
	}
	return v
}

func values(v *bytevec.Vector) []uint32 {
	return testutil.DecodeUint32s(v.Bytes())
}

func TestNew(t *testing.T) {
	v, err := bytevec.New(4)
	require.NoError(t, err)
	defer v.Close()

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Equal(t, 4, v.ElemSize())
	assert.Equal(t, bytevec.StatusOK, v.Status())
	assert.Empty(t, v.Bytes())
}

func TestNew_InvalidElemSize(t *testing.T) {
	for _, size := range []int{0, -1, math.MinInt} {
		v, err := bytevec.New(size)
		assert.ErrorIs(t, err, bytevec.ErrInvalidElemSize)
		assert.Nil(t, v)
	}
}

func TestInsertEraseScenario(t *testing.T) {
	v := newUint32Vector(t, 1, 2, 3, 4, 5)
	defer v.Close()
	require.Equal(t, 5, v.Len())

	require.NoError(t, v.InsertRange(2, testutil.Uint32s(9, 8)))
	assert.Equal(t, []uint32{1, 2, 9, 8, 3, 4, 5}, values(v))
	assert.Equal(t, 7, v.Len())

	v.EraseRange(0, 2)
	assert.Equal(t, []uint32{9, 8, 3, 4, 5}, values(v))
	assert.Equal(t, 5, v.Len())
}

func TestPushBack_Growth(t *testing.T) {
	v, err := bytevec.New(4)
	require.NoError(t, err)

	expectedCaps := map[int]int{1: 8, 8: 8, 9: 16, 16: 16, 17: 32, 33: 64}
	prevCap := 0
	for i := 1; i <= 40; i++ {
		require.NoError(t, v.PushBack(testutil.Uint32s(uint32(i))))
		assert.GreaterOrEqual(t, v.Cap(), prevCap)
		assert.LessOrEqual(t, v.Len(), v.Cap())
		if want, ok := expectedCaps[i]; ok {
			assert.Equal(t, want, v.Cap(), "after %d pushes", i)
		}
		prevCap = v.Cap()
	}

	for i, got := range values(v) {
		assert.Equal(t, uint32(i+1), got)
	}
}

func TestPushBack_InitialCapacity(t *testing.T) {
	v, err := bytevec.New(2, bytevec.WithInitialCapacity(3))
	require.NoError(t, err)

	require.NoError(t, v.PushBack([]byte{1, 2}))
	assert.Equal(t, 3, v.Cap())

	for i := 0; i < 3; i++ {
		require.NoError(t, v.PushBack([]byte{3, 4}))
	}
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 4, v.Cap())

	w, err := bytevec.New(2, bytevec.WithInitialCapacity(0))
	require.NoError(t, err)
	require.NoError(t, w.PushBack([]byte{1, 2}))
	assert.Equal(t, 1, w.Cap())
}

func TestPushBack_WrongSize(t *testing.T) {
	v := newUint32Vector(t, 1)

	assert.ErrorIs(t, v.PushBack([]byte{1, 2, 3}), bytevec.ErrElementSize)
	assert.ErrorIs(t, v.PushBack(nil), bytevec.ErrElementSize)
	assert.ErrorIs(t, v.PushBack(make([]byte, 8)), bytevec.ErrElementSize)
	assert.Equal(t, []uint32{1}, values(v))
	assert.Equal(t, bytevec.StatusOK, v.Status())
}

func TestPushPopRoundTrip(t *testing.T) {
	v := newUint32Vector(t, 100, 200)
	origLen := v.Len()

	const n = 50
	prevCap := v.Cap()
	for i := 0; i < n; i++ {
		require.NoError(t, v.PushBack(testutil.Uint32s(uint32(i))))
		assert.GreaterOrEqual(t, v.Cap(), prevCap)
		prevCap = v.Cap()
	}
	for i := 0; i < n; i++ {
		v.PopBack()
		assert.Equal(t, prevCap, v.Cap())
	}

	assert.Equal(t, origLen, v.Len())
	assert.Equal(t, []uint32{100, 200}, values(v))
}

func TestPopBack_Empty(t *testing.T) {
	v := newUint32Vector(t)
	v.PopBack()
	assert.Equal(t, 0, v.Len())

	require.NoError(t, v.PushBack(testutil.Uint32s(1)))
	v.PopBack()
	v.PopBack()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 8, v.Cap())
}

func TestInsertRange(t *testing.T) {
	t.Run("front", func(t *testing.T) {
		v := newUint32Vector(t, 3, 4)
		require.NoError(t, v.InsertRange(0, testutil.Uint32s(1, 2)))
		assert.Equal(t, []uint32{1, 2, 3, 4}, values(v))
	})

	t.Run("end appends", func(t *testing.T) {
		v := newUint32Vector(t, 1, 2)
		require.NoError(t, v.InsertRange(2, testutil.Uint32s(3, 4)))
		assert.Equal(t, []uint32{1, 2, 3, 4}, values(v))

		require.NoError(t, v.Append(testutil.Uint32s(5)))
		assert.Equal(t, []uint32{1, 2, 3, 4, 5}, values(v))
	})

	t.Run("into empty", func(t *testing.T) {
		v := newUint32Vector(t)
		require.NoError(t, v.InsertRange(0, testutil.Uint32s(7, 8, 9)))
		assert.Equal(t, []uint32{7, 8, 9}, values(v))
		assert.Equal(t, 4, v.Cap())
	})

	t.Run("grows to power of two", func(t *testing.T) {
		v := newUint32Vector(t, 1, 2, 3, 4, 5, 6, 7, 8)
		require.Equal(t, 8, v.Cap())

		require.NoError(t, v.InsertRange(4, testutil.Uint32s(10, 11, 12)))
		assert.Equal(t, []uint32{1, 2, 3, 4, 10, 11, 12, 5, 6, 7, 8}, values(v))
		assert.Equal(t, 16, v.Cap())
	})

	t.Run("large tail crosses chunk widths", func(t *testing.T) {
		var want []uint32
		v := newUint32Vector(t)
		for i := 0; i < 300; i++ {
			require.NoError(t, v.PushBack(testutil.Uint32s(uint32(i))))
			want = append(want, uint32(i))
		}

		require.NoError(t, v.InsertRange(1, testutil.Uint32s(1000, 1001, 1002)))
		want = append(want[:1], append([]uint32{1000, 1001, 1002}, want[1:]...)...)
		assert.Equal(t, want, values(v))
	})

	t.Run("no-ops", func(t *testing.T) {
		v := newUint32Vector(t, 1, 2, 3)
		before := append([]byte(nil), v.Bytes()...)
		capBefore := v.Cap()

		require.NoError(t, v.InsertRange(4, testutil.Uint32s(9)))
		require.NoError(t, v.InsertRange(-1, testutil.Uint32s(9)))
		require.NoError(t, v.InsertRange(1, nil))
		require.NoError(t, v.InsertRange(1, []byte{}))

		assert.Equal(t, before, v.Bytes())
		assert.Equal(t, capBefore, v.Cap())
		assert.Equal(t, bytevec.StatusOK, v.Status())
	})

	t.Run("partial element", func(t *testing.T) {
		v := newUint32Vector(t, 1)
		assert.ErrorIs(t, v.InsertRange(0, []byte{1, 2, 3, 4, 5}), bytevec.ErrElementSize)
		assert.Equal(t, []uint32{1}, values(v))
	})
}

func TestInsertRange_SelfAlias(t *testing.T) {
	t.Run("without growth", func(t *testing.T) {
		v := newUint32Vector(t, 1, 2, 3, 4)
		require.Equal(t, 8, v.Cap())

		require.NoError(t, v.InsertRange(1, v.Bytes()))
		assert.Equal(t, []uint32{1, 1, 2, 3, 4, 2, 3, 4}, values(v))
	})

	t.Run("with growth", func(t *testing.T) {
		v := newUint32Vector(t, 1, 2, 3, 4, 5, 6, 7, 8)
		require.Equal(t, 8, v.Cap())

		require.NoError(t, v.InsertRange(4, v.Bytes()[:8]))
		assert.Equal(t, []uint32{1, 2, 3, 4, 1, 2, 5, 6, 7, 8}, values(v))
	})
}

func TestEraseRange(t *testing.T) {
	t.Run("middle", func(t *testing.T) {
		v := newUint32Vector(t, 1, 2, 3, 4, 5, 6)
		v.EraseRange(2, 2)
		assert.Equal(t, []uint32{1, 2, 5, 6}, values(v))
	})

	t.Run("tail", func(t *testing.T) {
		v := newUint32Vector(t, 1, 2, 3, 4, 5, 6)
		v.EraseRange(4, 2)
		assert.Equal(t, []uint32{1, 2, 3, 4}, values(v))
	})

	t.Run("all", func(t *testing.T) {
		v := newUint32Vector(t, 1, 2, 3)
		v.EraseRange(0, 3)
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 8, v.Cap())
	})

	t.Run("large tail crosses chunk widths", func(t *testing.T) {
		var want []uint32
		v := newUint32Vector(t)
		for i := 0; i < 257; i++ {
			require.NoError(t, v.PushBack(testutil.Uint32s(uint32(i))))
			want = append(want, uint32(i))
		}

		v.EraseRange(3, 5)
		want = append(want[:3], want[8:]...)
		assert.Equal(t, want, values(v))
	})
}

func TestEraseRange_NoOp(t *testing.T) {
	tests := []struct {
		name         string
		start, count int
	}{
		{"start at size", 5, 1},
		{"start beyond size", 9, 1},
		{"zero count", 1, 0},
		{"negative count", 1, -1},
		{"negative start", -1, 2},
		{"past end", 3, 3},
		{"overflowing count", 1, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newUint32Vector(t, 1, 2, 3, 4, 5)
			before := append([]byte(nil), v.Bytes()...)
			capBefore := v.Cap()

			v.EraseRange(tt.start, tt.count)

			assert.Equal(t, before, v.Bytes())
			assert.Equal(t, 5, v.Len())
			assert.Equal(t, capBefore, v.Cap())
		})
	}
}

func TestReserve(t *testing.T) {
	v := newUint32Vector(t)

	require.NoError(t, v.Reserve(10))
	assert.Equal(t, 10, v.Cap())
	assert.Equal(t, 0, v.Len())

	require.NoError(t, v.Reserve(5))
	assert.Equal(t, 10, v.Cap())

	for i := 0; i < 10; i++ {
		require.NoError(t, v.PushBack(testutil.Uint32s(uint32(i))))
	}
	assert.Equal(t, 10, v.Cap())

	require.NoError(t, v.Reserve(13))
	assert.Equal(t, 13, v.Cap())
	assert.Equal(t, 10, v.Len())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, values(v))
}

func TestShrinkToFit(t *testing.T) {
	v := newUint32Vector(t, 1, 2, 3)
	require.Equal(t, 8, v.Cap())

	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []uint32{1, 2, 3}, values(v))

	// Idempotent
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []uint32{1, 2, 3}, values(v))

	v.EraseRange(0, 3)
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 0, v.Cap())
	assert.Empty(t, v.Bytes())

	require.NoError(t, v.PushBack(testutil.Uint32s(4)))
	assert.Equal(t, []uint32{4}, values(v))
}

func TestResize(t *testing.T) {
	v := newUint32Vector(t)

	require.NoError(t, v.Resize(5))
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 8, v.Cap())

	require.NoError(t, v.Resize(3))
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 8, v.Cap())

	require.NoError(t, v.Resize(8))
	assert.Equal(t, 8, v.Len())
	assert.Equal(t, 8, v.Cap())

	require.NoError(t, v.Resize(100))
	assert.Equal(t, 100, v.Len())
	assert.Equal(t, 128, v.Cap())

	require.NoError(t, v.Resize(-1))
	assert.Equal(t, 100, v.Len())

	require.NoError(t, v.Resize(0))
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 128, v.Cap())
}

func TestResize_PreservesPrefix(t *testing.T) {
	v := newUint32Vector(t, 1, 2, 3)
	require.NoError(t, v.Resize(20))
	assert.Equal(t, []uint32{1, 2, 3}, values(v)[:3])
	assert.Len(t, v.Bytes(), 80)
}

func TestAtSet(t *testing.T) {
	v := newUint32Vector(t, 10, 20, 30)

	assert.Equal(t, testutil.Uint32s(20), v.At(1))
	assert.Nil(t, v.At(3))
	assert.Nil(t, v.At(-1))
	assert.Len(t, v.At(0), 4)
	assert.Equal(t, 4, cap(v.At(0)))

	assert.True(t, v.Set(1, testutil.Uint32s(99)))
	assert.Equal(t, []uint32{10, 99, 30}, values(v))

	assert.False(t, v.Set(3, testutil.Uint32s(1)))
	assert.False(t, v.Set(-1, testutil.Uint32s(1)))
	assert.False(t, v.Set(0, []byte{1}))
	assert.Equal(t, []uint32{10, 99, 30}, values(v))
}

func TestFree(t *testing.T) {
	v := newUint32Vector(t, 1, 2, 3)

	v.Free()
	assert.Equal(t, bytevec.StatusFreed, v.Status())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Empty(t, v.Bytes())

	assert.ErrorIs(t, v.PushBack(testutil.Uint32s(1)), bytevec.ErrFreed)
	assert.ErrorIs(t, v.Reserve(4), bytevec.ErrFreed)
	assert.ErrorIs(t, v.Resize(4), bytevec.ErrFreed)
	assert.ErrorIs(t, v.ShrinkToFit(), bytevec.ErrFreed)
	assert.ErrorIs(t, v.InsertRange(0, testutil.Uint32s(1)), bytevec.ErrFreed)
	v.EraseRange(0, 1)
	v.PopBack()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, bytevec.StatusFreed, v.Status())

	// A second free is harmless.
	v.Free()
	require.NoError(t, v.Close())

	v.ClearStatus()
	assert.Equal(t, bytevec.StatusFreed, v.Status())
}

func TestReinit(t *testing.T) {
	v := newUint32Vector(t, 1, 2, 3)
	v.Free()

	require.NoError(t, v.Reinit(2))
	assert.Equal(t, bytevec.StatusOK, v.Status())
	assert.Equal(t, 2, v.ElemSize())
	assert.Equal(t, 0, v.Cap())

	require.NoError(t, v.PushBack([]byte{0xAA, 0xBB}))
	assert.Equal(t, []byte{0xAA, 0xBB}, v.Bytes())

	// Reinit on a live vector releases its buffer.
	require.NoError(t, v.Reinit(4))
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())

	assert.ErrorIs(t, v.Reinit(0), bytevec.ErrInvalidElemSize)
	assert.Equal(t, 4, v.ElemSize())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", bytevec.StatusOK.String())
	assert.Equal(t, "allocation_error", bytevec.StatusAllocationError.String())
	assert.Equal(t, "freed", bytevec.StatusFreed.String())
	assert.Equal(t, "unknown", bytevec.Status(42).String())
}

func TestLargeElements(t *testing.T) {
	const elemSize = 100
	v, err := bytevec.New(elemSize)
	require.NoError(t, err)

	a := testutil.Pattern(elemSize, 1)
	b := testutil.Pattern(elemSize, 2)
	c := testutil.Pattern(elemSize, 3)

	require.NoError(t, v.PushBack(a))
	require.NoError(t, v.PushBack(c))
	require.NoError(t, v.InsertRange(1, b))

	assert.Equal(t, a, v.At(0))
	assert.Equal(t, b, v.At(1))
	assert.Equal(t, c, v.At(2))

	v.EraseRange(0, 1)
	assert.Equal(t, b, v.At(0))
	assert.Equal(t, c, v.At(1))
}
