package grads

import (
	"path/filepath"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/grads/internal/core"
)

func quietLogger() Option {
	logger, _ := logtest.NewNullLogger()
	return WithLogger(logger)
}

func linear(count int, start, step float64) DimensionDef {
	values := make([]float64, count)
	for i := range values {
		values[i] = start + step*float64(i)
	}
	return DimensionDef{Kind: DimensionLinear, Count: count, Start: start, Step: step, Values: values}
}

func levels(values ...float64) DimensionDef {
	return DimensionDef{Kind: DimensionLevels, Count: len(values), Values: values}
}

func tdef(count int, start time.Time, step time.Duration) TimeDef {
	values := make([]time.Time, count)
	for i := range values {
		values[i] = start.Add(step * time.Duration(i))
	}
	return TimeDef{Count: count, Start: start, Step: step, Values: values}
}

var jan2021 = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

// smallLayout is a 4x2 grid with t on levels 1000 and 500.
func smallLayout() DatasetLayout {
	return DatasetLayout{
		DSet:  "^small.grd",
		Title: "small test grid",
		XDef:  linear(4, 0, 90),
		YDef:  linear(2, -90, 180),
		ZDef:  levels(1000, 500),
		TDef:  tdef(1, jan2021, 6*time.Hour),
		Vars:  []VarDef{{Name: "t", Levels: 2, Units: "99", Description: "temperature (K)"}},
	}
}

// recordGrid returns distinct values for every record: the record's
// catalog position times 100 plus the grid index.
func recordGrid(n, position int) []float32 {
	g := make([]float32, n)
	for i := range g {
		g[i] = float32(position*100 + i)
	}
	return g
}

// writeDataset creates a dataset in a temporary directory, fills every
// record with recordGrid and reopens it for reading.
func writeDataset(t *testing.T, name string, layout DatasetLayout, opts ...Option) *Descriptor {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	opts = append([]Option{quietLogger()}, opts...)

	dw, err := CreateDataset(path, layout, CreateTruncate, opts...)
	require.NoError(t, err)

	desc := dw.Descriptor()
	for i, rec := range desc.Records() {
		require.NoError(t, dw.WriteRecord(rec, recordGrid(desc.NX()*desc.NY(), i)))
	}
	require.NoError(t, dw.Close())

	reopened, err := Open(path, opts...)
	require.NoError(t, err)
	return reopened
}

func flipped(values []float32, ny, nx int) []float32 {
	out := append([]float32(nil), values...)
	core.FlipRows(out, ny, nx)
	return out
}
