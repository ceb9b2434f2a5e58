package core

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocktesting "github.com/scigolib/grads/internal/testing"
	"github.com/scigolib/grads/internal/utils"
)

func gridDescriptor(nx, ny, nrec int, opts Options) *Descriptor {
	desc := &Descriptor{
		XDef:    DimensionDef{Kind: DimensionLinear, Count: nx},
		YDef:    DimensionDef{Kind: DimensionLinear, Count: ny},
		Options: opts,
	}
	for i := 0; i < nrec; i++ {
		desc.Records = append(desc.Records, Record{Name: "t", RecordIndex: i})
	}
	return desc
}

// encodeRecords lays out grids the way a data file stores them, with
// Fortran record markers when sequential is set.
func encodeRecords(grids [][]float32, order binary.ByteOrder, sequential bool) []byte {
	var out []byte
	marker := make([]byte, 4)
	for _, g := range grids {
		payload := utils.EncodeFloat32s(g, order)
		order.PutUint32(marker, uint32(len(payload)))
		if sequential {
			out = append(out, marker...)
		}
		out = append(out, payload...)
		if sequential {
			out = append(out, marker...)
		}
	}
	return out
}

func seqGrid(n int, base float32) []float32 {
	g := make([]float32, n)
	for i := range g {
		g[i] = base + float32(i)
	}
	return g
}

func TestRecordByteSize(t *testing.T) {
	assert.Equal(t, int64(4*2*4), RecordByteSize(gridDescriptor(4, 2, 1, Options{})))
	assert.Equal(t, int64(4*2*4+8), RecordByteSize(gridDescriptor(4, 2, 1, Options{Sequential: true})))
}

func TestRecordOffsetMonotonic(t *testing.T) {
	for _, sequential := range []bool{false, true} {
		desc := gridDescriptor(4, 2, 5, Options{Sequential: sequential})
		stride := RecordByteSize(desc)

		first, err := RecordOffset(desc, desc.Records[0])
		require.NoError(t, err)
		if sequential {
			assert.Equal(t, int64(4), first)
		} else {
			assert.Zero(t, first)
		}

		for i := 1; i < len(desc.Records); i++ {
			prev, err := RecordOffset(desc, desc.Records[i-1])
			require.NoError(t, err)
			next, err := RecordOffset(desc, desc.Records[i])
			require.NoError(t, err)
			assert.Equal(t, stride, next-prev)
		}
	}
}

func TestRecordOffsetOutOfRange(t *testing.T) {
	desc := gridDescriptor(4, 2, 2, Options{})

	_, err := RecordOffset(desc, Record{RecordIndex: 2})
	assert.ErrorIs(t, err, ErrRecordIndexOutOfRange)

	_, err = RecordOffset(desc, Record{RecordIndex: -1})
	assert.ErrorIs(t, err, ErrRecordIndexOutOfRange)
}

func TestReadRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		endian     Endian
		sequential bool
	}{
		{"little", EndianLittle, false},
		{"big", EndianBig, false},
		{"native", EndianNative, false},
		{"big sequential", EndianBig, true},
		{"little sequential", EndianLittle, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := gridDescriptor(4, 2, 3, Options{Endian: tt.endian, Sequential: tt.sequential})
			grids := [][]float32{seqGrid(8, 0), seqGrid(8, 100), {-1.5, 2.25, 3e10, -4e-10, 0, 1, 2, 3}}
			r := mocktesting.NewMockReaderAt(encodeRecords(grids, tt.endian.ByteOrder(), tt.sequential))

			for i, want := range grids {
				got, err := ReadRecord(r, desc, desc.Records[i])
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestReadRecordYRev(t *testing.T) {
	grid := seqGrid(12, 0)
	data := encodeRecords([][]float32{grid}, binary.LittleEndian, false)

	plain := gridDescriptor(4, 3, 1, Options{})
	flipped := gridDescriptor(4, 3, 1, Options{YRev: true})

	raw, err := ReadRecord(mocktesting.NewMockReaderAt(data), plain, plain.Records[0])
	require.NoError(t, err)
	rev, err := ReadRecord(mocktesting.NewMockReaderAt(data), flipped, flipped.Records[0])
	require.NoError(t, err)

	FlipRows(raw, 3, 4)
	assert.Equal(t, raw, rev)
	assert.Equal(t, []float32{8, 9, 10, 11}, rev[:4])
}

func TestReadRecordShortRead(t *testing.T) {
	desc := gridDescriptor(4, 2, 2, Options{})
	data := encodeRecords([][]float32{seqGrid(8, 0)}, binary.LittleEndian, false)
	data = append(data, 0, 0, 0, 0)

	_, err := ReadRecord(mocktesting.NewMockReaderAt(data), desc, desc.Records[1])
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestReadRecordReaderFailure(t *testing.T) {
	desc := gridDescriptor(4, 2, 1, Options{})
	boom := errors.New("disk on fire")

	_, err := ReadRecord(mocktesting.NewFailingReaderAt(boom), desc, desc.Records[0])
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrShortRead)
}

func TestReadRecordFile(t *testing.T) {
	desc := gridDescriptor(2, 2, 2, Options{Endian: EndianBig})
	grids := [][]float32{{1, 2, 3, 4}, {5, 6, 7, 8}}

	path := filepath.Join(t.TempDir(), "data.grd")
	require.NoError(t, os.WriteFile(path, encodeRecords(grids, binary.BigEndian, false), 0o600))

	got, err := ReadRecordFile(path, desc, desc.Records[1])
	require.NoError(t, err)
	assert.Equal(t, grids[1], got)

	_, err = ReadRecordFile(filepath.Join(t.TempDir(), "missing.grd"), desc, desc.Records[0])
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFlipRows(t *testing.T) {
	values := []float32{1, 2, 3, 4, 5, 6}
	FlipRows(values, 3, 2)
	assert.Equal(t, []float32{5, 6, 3, 4, 1, 2}, values)

	single := []float32{1, 2}
	FlipRows(single, 1, 2)
	assert.Equal(t, []float32{1, 2}, single)
}
