package utils

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ReaderAt is a simplified interface for io.ReaderAt.
type ReaderAt interface {
	ReadAt(p []byte, off int64) (n int, err error)
}

// HostOrder returns the byte order of the running machine.
func HostOrder() binary.ByteOrder {
	if IsHostLittleEndian() {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// SwappedOrder returns the byte order opposite to the host's.
func SwappedOrder() binary.ByteOrder {
	if IsHostLittleEndian() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// IsHostLittleEndian reports whether the running machine is little endian.
func IsHostLittleEndian() bool {
	return binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 1
}

// ReadFloat32s reads count IEEE 754 single precision values at offset.
// Fewer available bytes than requested is reported as io.ErrUnexpectedEOF.
func ReadFloat32s(r ReaderAt, offset int64, count int, order binary.ByteOrder) ([]float32, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative element count %d", count)
	}

	//nolint:gosec // G115: count checked non-negative above
	size, err := SafeMultiply(uint64(count), 4)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return []float32{}, nil
	}
	if err := ValidateBufferSize(size, MaxRecordBytes, "record read"); err != nil {
		return nil, err
	}

	buf := GetBuffer(int(size))
	defer ReleaseBuffer(buf)

	n, err := r.ReadAt(buf, offset)
	if n < len(buf) {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("read %d of %d bytes at offset %d: %w", n, len(buf), offset, err)
	}

	values := make([]float32, count)
	for i := range values {
		values[i] = math.Float32frombits(order.Uint32(buf[i*4 : i*4+4]))
	}
	return values, nil
}

// EncodeFloat32s encodes values as IEEE 754 single precision bytes.
func EncodeFloat32s(values []float32, order binary.ByteOrder) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		order.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}
