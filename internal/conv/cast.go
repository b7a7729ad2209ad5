package conv

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow is wrapped by every conversion failure in this package.
var ErrOverflow = errors.New("integer overflow")

// ByteSize returns count*elemSize as an int.
// Fails if either operand is negative or the product does not fit in an int.
func ByteSize(count, elemSize int) (int, error) {
	if count < 0 || elemSize < 0 {
		return 0, fmt.Errorf("%w: negative byte size %d*%d", ErrOverflow, count, elemSize)
	}
	hi, lo := bits.Mul64(uint64(count), uint64(elemSize))
	if hi != 0 || lo > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrOverflow, count, elemSize)
	}
	return int(lo), nil
}

// AddInt returns a+b for non-negative operands, failing when the sum overflows.
func AddInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("%w: negative operand %d+%d", ErrOverflow, a, b)
	}
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("%w: %d+%d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// IntToInt64 widens an int. It cannot fail on supported platforms.
func IntToInt64(v int) int64 {
	return int64(v)
}
