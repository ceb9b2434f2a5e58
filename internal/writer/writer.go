// Copyright (c) 2025 SciGo HDF5 Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package writer writes GrADS binary data files.
package writer

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/scigolib/grads/internal/utils"
)

// markerSize is the size of a Fortran sequential record marker.
const markerSize = 4

// FileWriter wraps an os.File for writing record data at computed offsets.
//
// Thread-safety: Not thread-safe. Caller must synchronize access.
type FileWriter struct {
	file *os.File
	// end is the largest offset written so far.
	end int64
}

// CreateMode specifies the file creation behavior.
type CreateMode int

const (
	// ModeTruncate creates a new file, truncating if it exists.
	// Equivalent to os.Create() behavior.
	ModeTruncate CreateMode = iota

	// ModeExclusive creates a new file, fails if it exists.
	// Equivalent to os.O_CREATE | os.O_EXCL.
	ModeExclusive
)

// NewFileWriter creates a data file opened for reading and writing.
func NewFileWriter(filename string, mode CreateMode) (*FileWriter, error) {
	var osFile *os.File
	var err error

	switch mode {
	case ModeTruncate:
		//nolint:gosec // G304: data file path comes from the descriptor
		osFile, err = os.Create(filename)
	case ModeExclusive:
		//nolint:gosec // G304: data file path comes from the descriptor
		osFile, err = os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
	default:
		return nil, fmt.Errorf("invalid create mode: %d", mode)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return &FileWriter{file: osFile}, nil
}

// WriteAt writes data at a specific offset in the file.
// Implements io.WriterAt interface.
func (w *FileWriter) WriteAt(data []byte, offset int64) (int, error) {
	if w.file == nil {
		return 0, fmt.Errorf("writer is closed")
	}

	if len(data) == 0 {
		return 0, nil
	}

	n, err := w.file.WriteAt(data, offset)
	if err != nil {
		return n, fmt.Errorf("write at offset %d failed: %w", offset, err)
	}

	if n != len(data) {
		return n, fmt.Errorf("incomplete write at offset %d: wrote %d of %d bytes", offset, n, len(data))
	}

	w.end = max(w.end, offset+int64(n))
	return n, nil
}

// WriteRecord encodes values with order and writes them so that the first
// value lands at offset. Sequential records are framed by length markers
// just before and after the values.
func (w *FileWriter) WriteRecord(offset int64, values []float32, order binary.ByteOrder, sequential bool) error {
	payload := utils.EncodeFloat32s(values, order)

	if sequential {
		if offset < markerSize {
			return fmt.Errorf("sequential record offset %d leaves no room for its marker", offset)
		}
		marker := make([]byte, markerSize)
		//nolint:gosec // G115: record size is bounded by utils.MaxRecordBytes
		order.PutUint32(marker, uint32(len(payload)))
		if _, err := w.WriteAt(marker, offset-markerSize); err != nil {
			return err
		}
		if _, err := w.WriteAt(marker, offset+int64(len(payload))); err != nil {
			return err
		}
	}

	_, err := w.WriteAt(payload, offset)
	return err
}

// ReadAt reads data at a specific offset.
// Implements io.ReaderAt interface for reading back written records.
func (w *FileWriter) ReadAt(buf []byte, offset int64) (int, error) {
	if w.file == nil {
		return 0, fmt.Errorf("writer is closed")
	}

	return w.file.ReadAt(buf, offset)
}

// EndOfFile returns the end of the furthest write.
func (w *FileWriter) EndOfFile() int64 {
	return w.end
}

// Flush ensures all writes are committed to disk.
func (w *FileWriter) Flush() error {
	if w.file == nil {
		return fmt.Errorf("writer is closed")
	}

	return w.file.Sync()
}

// Close closes the underlying file.
// This does NOT automatically flush - call Flush() first if needed.
// After Close(), the writer cannot be used.
func (w *FileWriter) Close() error {
	if w.file == nil {
		return nil
	}

	err := w.file.Close()
	w.file = nil
	return err
}

// Name returns the path of the underlying file.
func (w *FileWriter) Name() string {
	if w.file == nil {
		return ""
	}
	return w.file.Name()
}

var (
	_ io.ReaderAt = (*FileWriter)(nil)
	_ io.WriterAt = (*FileWriter)(nil)
)
