package bytevec

import (
	"math"

	"github.com/hupe1980/bytevec/internal/conv"
	"github.com/hupe1980/bytevec/internal/simd"
)

// PushBack appends one element, which must be exactly ElemSize() bytes.
// Amortized O(1). On growth failure the element is not appended and the
// vector is unchanged.
func (v *Vector) PushBack(elem []byte) error {
	if len(elem) != v.elemSize {
		return ErrElementSize
	}
	if v.size >= v.capacity {
		// Growth releases the old buffer, which elem may point into.
		if simd.Overlaps(elem, v.data) {
			elem = append([]byte(nil), elem...)
		}
		if err := v.growForPush(); err != nil {
			return err
		}
	}

	off := v.size * v.elemSize
	copy(v.data[off:off+v.elemSize], elem)
	v.size++
	return nil
}

// growForPush is the cold half of PushBack.
//
//go:noinline
func (v *Vector) growForPush() error {
	if v.status == StatusFreed {
		return ErrFreed
	}

	need, err := conv.AddInt(v.capacity, 1)
	if err != nil {
		return v.allocFailed(opPushBack, math.MaxInt, 0, err)
	}

	target := v.growTarget(need)
	if target < v.initialCapacity {
		if _, err := v.byteSize(v.initialCapacity); err == nil {
			target = v.initialCapacity
		}
	}
	return v.reallocate(opPushBack, target)
}

// PopBack drops the last element if there is one. The element's bytes are
// not cleared; release anything they reference before calling.
func (v *Vector) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// InsertRange inserts the elements in elems (a whole number of elements) at
// position start, shifting [start, Len()) up. start == Len() appends.
//
// It is a silent no-op when elems is empty or start is outside [0, Len()].
// On growth failure nothing is inserted and the vector is unchanged.
// elems may alias the vector's own buffer.
func (v *Vector) InsertRange(start int, elems []byte) error {
	if v.status == StatusFreed {
		return ErrFreed
	}
	if len(elems)%v.elemSize != 0 {
		return ErrElementSize
	}

	count := len(elems) / v.elemSize
	if count == 0 || start < 0 || start > v.size {
		return nil
	}

	need, err := conv.AddInt(v.size, count)
	if err != nil {
		return v.allocFailed(opInsertRange, math.MaxInt, 0, err)
	}

	// Growth or the gap move would clobber elements taken from our own buffer.
	if simd.Overlaps(elems, v.data) {
		elems = append([]byte(nil), elems...)
	}

	if need > v.capacity {
		if err := v.reallocate(opInsertRange, v.growTarget(need)); err != nil {
			return err
		}
	}

	es := v.elemSize
	if start < v.size {
		moved := simd.MoveBackward(v.data[(start+count)*es:need*es], v.data[start*es:v.size*es])
		v.metrics.RecordMove(moved)
	}
	copy(v.data[start*es:(start+count)*es], elems)
	v.size = need
	return nil
}

// EraseRange removes count elements starting at start, shifting the tail
// down. Any out-of-range request (start >= Len(), count <= 0, or
// start+count > Len()) is silently ignored.
func (v *Vector) EraseRange(start, count int) {
	if start < 0 || count <= 0 || start >= v.size || count > v.size-start {
		return
	}

	es := v.elemSize
	end := start + count
	if end < v.size {
		moved := simd.MoveForward(v.data[start*es:], v.data[end*es:v.size*es])
		v.metrics.RecordMove(moved)
	}
	v.size -= count
}

// Append is InsertRange at Len().
func (v *Vector) Append(elems []byte) error {
	return v.InsertRange(v.size, elems)
}
