package grads

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Field is a decoded grid, or a stack of grids along the level axis, with
// its coordinates and metadata.
type Field struct {
	Name        string
	Description string
	Units       string
	// Undef is the missing value sentinel of the descriptor, if any.
	Undef *float64

	// LevelDim names the level axis, "level" unless the query named it.
	LevelDim string
	// Levels holds one value per stacked grid.
	Levels []float64

	Latitudes     []float64
	Longitudes    []float64
	LatitudeUnits string

	ValidTime time.Time
	// StartTime and ForecastTime are set when the descriptor carries both.
	StartTime    *time.Time
	ForecastTime *time.Duration

	// Values holds len(Levels) grids of ny rows of nx values each.
	Values []float32
}

func (d *Descriptor) newField(q Query, levelDim string, records []Record) *Field {
	first := records[0]
	f := &Field{
		Name:          q.Parameter,
		Description:   first.Description,
		Units:         first.Units,
		LevelDim:      levelDim,
		Levels:        make([]float64, len(records)),
		Latitudes:     slices.Clone(d.d.YDef.Values),
		Longitudes:    slices.Clone(d.d.XDef.Values),
		LatitudeUnits: q.LatitudeDirection.String(),
		ValidTime:     first.ValidTime,
		Values:        make([]float32, len(records)*d.NX()*d.NY()),
	}
	if d.d.Undef != nil {
		undef := *d.d.Undef
		f.Undef = &undef
	}
	for i, rec := range records {
		f.Levels[i] = rec.Level
	}
	if q.LatitudeDirection == North {
		slices.Reverse(f.Latitudes)
	}
	if d.d.StartTime != nil && d.d.ForecastTime != nil {
		start, forecast := *d.d.StartTime, *d.d.ForecastTime
		f.StartTime = &start
		f.ForecastTime = &forecast
	}
	return f
}

// IsStacked reports whether the field holds more than one level.
func (f *Field) IsStacked() bool {
	return len(f.Levels) > 1
}

// Dims returns the axis names, outermost first.
func (f *Field) Dims() []string {
	if f.IsStacked() {
		return []string{f.LevelDim, "latitude", "longitude"}
	}
	return []string{"latitude", "longitude"}
}

// Shape returns the axis lengths matching Dims.
func (f *Field) Shape() []int {
	if f.IsStacked() {
		return []int{len(f.Levels), len(f.Latitudes), len(f.Longitudes)}
	}
	return []int{len(f.Latitudes), len(f.Longitudes)}
}

// Level returns the grid of the i-th level. The slice shares memory with
// Values.
func (f *Field) Level(i int) []float32 {
	n := len(f.Latitudes) * len(f.Longitudes)
	return f.Values[i*n : (i+1)*n]
}

// At returns the value at the given level, latitude and longitude indices.
// It panics on out of range indices like slice indexing does.
func (f *Field) At(level, lat, lon int) float32 {
	nx := len(f.Longitudes)
	return f.Values[(level*len(f.Latitudes)+lat)*nx+lon]
}

// IsMissing reports whether v is the undef sentinel or NaN.
func (f *Field) IsMissing(v float32) bool {
	if math.IsNaN(float64(v)) {
		return true
	}
	return f.Undef != nil && v == float32(*f.Undef)
}

// Summary holds statistics over the defined values of a field.
type Summary struct {
	Count   int
	Missing int
	Min     float64
	Max     float64
	Mean    float64
}

// String formats the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("count=%d missing=%d min=%g max=%g mean=%g",
		s.Count, s.Missing, s.Min, s.Max, s.Mean)
}

// Summary computes statistics over all values except missing ones. Min,
// Max and Mean are NaN when no value is defined.
func (f *Field) Summary() Summary {
	defined := make([]float64, 0, len(f.Values))
	for _, v := range f.Values {
		if !f.IsMissing(v) {
			defined = append(defined, float64(v))
		}
	}

	s := Summary{Count: len(defined), Missing: len(f.Values) - len(defined)}
	if len(defined) == 0 {
		s.Min, s.Max, s.Mean = math.NaN(), math.NaN(), math.NaN()
		return s
	}
	s.Min = floats.Min(defined)
	s.Max = floats.Max(defined)
	s.Mean = floats.Sum(defined) / float64(len(defined))
	return s
}

// String describes the field without its values.
func (f *Field) String() string {
	dims := make([]string, len(f.Dims()))
	for i, name := range f.Dims() {
		dims[i] = fmt.Sprintf("%s: %d", name, f.Shape()[i])
	}
	return fmt.Sprintf("%s (%s) valid %s", f.Name, strings.Join(dims, ", "), f.ValidTime.Format(time.RFC3339))
}
