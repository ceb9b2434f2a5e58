package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scigolib/grads/internal/utils"
)

// sequentialHeader is the Fortran record length marker preceding each
// record of a sequential file. A trailing marker of the same size follows.
const sequentialHeader = 4

// RecordByteSize returns the distance between two consecutive records of a
// data file: nx*ny float32 values plus both markers for sequential files.
func RecordByteSize(desc *Descriptor) int64 {
	size := int64(desc.GridPoints()) * 4
	if desc.Options.Sequential {
		size += 2 * sequentialHeader
	}
	return size
}

// RecordOffset returns the byte offset of the first value of rec inside its
// data file.
func RecordOffset(desc *Descriptor, rec Record) (int64, error) {
	if rec.RecordIndex < 0 || rec.RecordIndex >= len(desc.Records) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrRecordIndexOutOfRange, rec.RecordIndex, len(desc.Records))
	}

	var skip uint64
	if desc.Options.Sequential {
		skip = sequentialHeader
	}

	//nolint:gosec // G115: record index and size are non-negative
	return utils.SafeOffset(uint64(rec.RecordIndex), uint64(RecordByteSize(desc)), skip)
}

// ReadRecord decodes the grid of rec from r. The result is row major with
// ny rows of nx values, rows flipped when the descriptor declares yrev.
func ReadRecord(r io.ReaderAt, desc *Descriptor, rec Record) ([]float32, error) {
	offset, err := RecordOffset(desc, rec)
	if err != nil {
		return nil, err
	}

	values, err := utils.ReadFloat32s(r, offset, desc.GridPoints(), desc.Options.Endian.ByteOrder())
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: record %s #%d: %w", ErrShortRead, rec.Name, rec.RecordIndex, err)
		}
		return nil, fmt.Errorf("record %s #%d: %w", rec.Name, rec.RecordIndex, err)
	}

	if desc.Options.YRev {
		FlipRows(values, desc.NY(), desc.NX())
	}
	return values, nil
}

// ReadRecordFile opens path, reads rec from it and closes it again.
func ReadRecordFile(path string, desc *Descriptor, rec Record) (values []float32, err error) {
	//nolint:gosec // G304: data path comes from the descriptor
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.WrapError("data file open failed", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = utils.WrapError("data file close failed", cerr)
		}
	}()

	values, err = ReadRecord(f, desc, rec)
	if err != nil {
		return nil, utils.WrapError("record read failed", err)
	}
	return values, nil
}

// FlipRows reverses the order of the ny rows of a row major grid in place.
func FlipRows(values []float32, ny, nx int) {
	for top, bottom := 0, ny-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := values[top*nx : (top+1)*nx]
		b := values[bottom*nx : (bottom+1)*nx]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}
