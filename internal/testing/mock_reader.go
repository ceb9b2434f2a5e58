// Package testing provides test utilities for record reader tests.
package testing

import (
	"errors"
	"io"
)

// MockReaderAt is an in-memory io.ReaderAt that follows os.File semantics
// at the end of data.
type MockReaderAt struct {
	data  []byte
	err   error
	reads int
}

// NewMockReaderAt creates a new mock reader with the given data.
func NewMockReaderAt(data []byte) *MockReaderAt {
	return &MockReaderAt{data: data}
}

// NewFailingReaderAt creates a reader whose every ReadAt fails with err.
func NewFailingReaderAt(err error) *MockReaderAt {
	return &MockReaderAt{err: err}
}

// ReadAt implements io.ReaderAt interface for the mock reader.
func (m *MockReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	m.reads++
	if m.err != nil {
		return 0, m.err
	}

	if off < 0 {
		return 0, errors.New("negative offset")
	}

	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}

	n = copy(p, m.data[off:])
	if n < len(p) {
		err = io.EOF
	}
	return
}

// Reads returns how many times ReadAt was called.
func (m *MockReaderAt) Reads() int {
	return m.reads
}
