package grads

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const meteogramDescriptor = `DSET ^post.grd_2021080200_024
TITLE GRAPES GFS
OPTIONS big_endian
UNDEF -9.99E+33
XDEF 3 LINEAR 0.0 120.0
YDEF 2 LINEAR -45.0 90.0
ZDEF 3 LEVELS 1000 850
     500
TDEF 2 LINEAR 00z02aug2021 360mn
VARS 3
h   3 99 geopotential height (gpm)
t   2 99 temperature (K)
t2m 0 99 2m temperature (K)
ENDVARS
`

func TestParseAccessors(t *testing.T) {
	path := filepath.Join("/data/gfs", "post.ctl_2021080200_024")
	desc, err := Parse(path, strings.NewReader(meteogramDescriptor), quietLogger())
	require.NoError(t, err)

	assert.Equal(t, path, desc.Path())
	assert.Equal(t, "GRAPES GFS", desc.Title())
	assert.Equal(t, "^post.grd_2021080200_024", desc.DSet())
	assert.False(t, desc.IsTemplate())
	assert.Equal(t, EndianBig, desc.Options().Endian)
	assert.Equal(t, 3, desc.NX())
	assert.Equal(t, 2, desc.NY())
	assert.Equal(t, []float64{0, 120, 240}, desc.XDef().Values)
	assert.Equal(t, []float64{-45, 45}, desc.YDef().Values)
	assert.Equal(t, []float64{1000, 850, 500}, desc.ZDef().Values)
	assert.Equal(t, 6*time.Hour, desc.TDef().Step)
	assert.Len(t, desc.Vars(), 3)

	undef, ok := desc.Undef()
	assert.True(t, ok)
	assert.InDelta(t, -9.99e33, undef, 1e27)

	start, ok := desc.StartTime()
	require.True(t, ok)
	assert.True(t, time.Date(2021, 8, 2, 0, 0, 0, 0, time.UTC).Equal(start))
	forecast, ok := desc.ForecastTime()
	require.True(t, ok)
	assert.Equal(t, 24*time.Hour, forecast)

	// Accessors hand out copies.
	desc.ZDef().Values[0] = 1
	desc.Records()[0].Name = "x"
	desc.Vars()[0].Name = "x"
	assert.Equal(t, 1000.0, desc.ZDef().Values[0])
	assert.Equal(t, "h", desc.Records()[0].Name)
	assert.Equal(t, "h", desc.Vars()[0].Name)
}

func TestCatalogLength(t *testing.T) {
	desc, err := Parse("post.ctl", strings.NewReader(meteogramDescriptor), quietLogger())
	require.NoError(t, err)

	want := 0
	for _, v := range desc.Vars() {
		if v.Levels == 0 {
			want++
		} else {
			want += v.Levels
		}
	}
	want *= desc.TDef().Count
	assert.Len(t, desc.Records(), want)

	_, ok := desc.StartTime()
	assert.False(t, ok)
	_, ok = desc.Undef()
	assert.True(t, ok)
}

func TestRecordByIndex(t *testing.T) {
	desc, err := Parse("post.ctl", strings.NewReader(meteogramDescriptor), quietLogger())
	require.NoError(t, err)

	rec, err := desc.RecordByIndex(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "t", rec.Name)
	assert.Equal(t, 850.0, rec.Level)
	assert.Equal(t, 4, rec.RecordIndex)
	assert.Zero(t, rec.TimeIndex)

	rec, err = desc.RecordByIndex(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "t2m", rec.Name)
	assert.Equal(t, LevelSingle, rec.LevelType)

	_, err = desc.RecordByIndex(3, 0)
	assert.ErrorIs(t, err, ErrVarIndexOutOfRange)
	_, err = desc.RecordByIndex(1, 2)
	assert.ErrorIs(t, err, ErrLevelIndexOutOfRange)
	_, err = desc.RecordByIndex(2, 1)
	assert.ErrorIs(t, err, ErrLevelIndexOutOfRange)
}

func TestFindRecord(t *testing.T) {
	desc, err := Parse("post.ctl", strings.NewReader(meteogramDescriptor), quietLogger())
	require.NoError(t, err)

	level := 500.0
	rec, ok := desc.FindRecord(RecordFilter{Name: "h", Level: &level})
	require.True(t, ok)
	assert.Equal(t, 2, rec.RecordIndex)

	sixHours := 6 * time.Hour
	rec, ok = desc.FindRecord(RecordFilter{Name: "t2m", Kind: LevelSingle, ForecastTime: &sixHours})
	require.True(t, ok)
	assert.Equal(t, 11, rec.RecordIndex)
	assert.Equal(t, 1, rec.TimeIndex)

	_, ok = desc.FindRecord(RecordFilter{Name: "t", Level: &level})
	assert.False(t, ok)
	_, ok = desc.FindRecord(RecordFilter{Name: "t2m", Kind: LevelMulti})
	assert.False(t, ok)
}

func TestRecordOffsets(t *testing.T) {
	desc, err := Parse("post.ctl", strings.NewReader(meteogramDescriptor), quietLogger())
	require.NoError(t, err)

	stride := desc.RecordByteSize()
	assert.Equal(t, int64(3*2*4), stride)

	records := desc.Records()
	for i := 1; i < len(records); i++ {
		prev, err := desc.RecordOffset(records[i-1])
		require.NoError(t, err)
		next, err := desc.RecordOffset(records[i])
		require.NoError(t, err)
		assert.Equal(t, stride, next-prev)
	}

	_, err = desc.RecordOffset(Record{RecordIndex: len(records)})
	assert.ErrorIs(t, err, ErrRecordIndexOutOfRange)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"bad dimension", "xdef 10 gaus 1\n", ErrUnsupportedDimension},
		{"bad tdef", "tdef 1 linear 00z02aug2021\n", ErrMalformedTdef},
		{"bad start time", "tdef 1 linear 2021-08-02 6hr\n", ErrUnsupportedStartTime},
		{"bad increment", "tdef 1 linear 00z02aug2021 1mo\n", ErrUnsupportedIncrement},
		{"vars without tdef", "vars 1\nps 0 99 pressure\n", ErrMissingTdef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := Parse("post.ctl", strings.NewReader(tt.content), quietLogger())
			assert.Nil(t, desc)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "none.ctl"), quietLogger())
	assert.Error(t, err)
}
