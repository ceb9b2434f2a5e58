package utils

import (
	"fmt"
	"math"
)

// MaxRecordBytes limits a single record read to 1GB.
const MaxRecordBytes = 1024 * 1024 * 1024

// CheckMultiplyOverflow checks if multiplying two uint64 values would overflow.
func CheckMultiplyOverflow(a, b uint64) error {
	if a == 0 || b == 0 {
		return nil
	}

	if a > math.MaxUint64/b {
		return fmt.Errorf("multiplication overflow: %d * %d exceeds uint64 max", a, b)
	}

	return nil
}

// SafeMultiply multiplies two uint64 values and returns the result if no overflow occurs.
func SafeMultiply(a, b uint64) (uint64, error) {
	if err := CheckMultiplyOverflow(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// SafeOffset computes index*stride+skip as a file offset, rejecting values
// that do not fit in int64.
func SafeOffset(index, stride, skip uint64) (int64, error) {
	base, err := SafeMultiply(index, stride)
	if err != nil {
		return 0, err
	}
	if base > math.MaxInt64-skip {
		return 0, fmt.Errorf("offset overflow: %d * %d + %d exceeds int64 max", index, stride, skip)
	}
	//nolint:gosec // G115: bounded by the check above
	return int64(base + skip), nil
}

// ValidateBufferSize validates that a buffer size is within reasonable limits.
func ValidateBufferSize(size, maxSize uint64, description string) error {
	if size == 0 {
		return fmt.Errorf("%s: size cannot be zero", description)
	}

	if size > maxSize {
		return fmt.Errorf("%s: size %d exceeds maximum %d", description, size, maxSize)
	}

	return nil
}
