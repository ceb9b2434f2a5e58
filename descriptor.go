// Package grads provides a pure Go reader for GrADS style gridded binary
// data. A text descriptor (control file) declares the grid, the time axis
// and the variables of one or more flat binary files of IEEE 754 float32
// values; this package parses it into a catalog of records and decodes the
// grids of the records a query selects.
package grads

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scigolib/grads/internal/core"
)

// Descriptor types shared with the parser.
type (
	// Record is one (variable, level, time) grid of a dataset.
	Record = core.Record
	// VarDef is one entry of the vars section.
	VarDef = core.VarDef
	// DimensionDef describes the x, y or z axis.
	DimensionDef = core.DimensionDef
	// TimeDef is the time axis.
	TimeDef = core.TimeDef
	// DataOptions are the flags of the options statement.
	DataOptions = core.Options
	// Endian is the byte order of the data files.
	Endian = core.Endian
	// LevelKind tells single level records from multi level ones.
	LevelKind = core.LevelKind
	// DimensionKind tells linear axes from explicit level lists.
	DimensionKind = core.DimensionKind
)

// Byte orders.
const (
	EndianLittle = core.EndianLittle
	EndianBig    = core.EndianBig
	EndianNative = core.EndianNative
)

// Record level kinds.
const (
	LevelSingle = core.LevelSingle
	LevelMulti  = core.LevelMulti
)

// Dimension kinds.
const (
	DimensionLinear = core.DimensionLinear
	DimensionLevels = core.DimensionLevels
)

// Descriptor is a parsed control file together with its record catalog.
// It is immutable and safe for concurrent queries.
type Descriptor struct {
	d   *core.Descriptor
	log logrus.FieldLogger
}

// Open parses the descriptor at path.
func Open(path string, opts ...Option) (*Descriptor, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	d, err := core.ParseDescriptorFile(path, cfg.parserConfig())
	if err != nil {
		return nil, err
	}
	return &Descriptor{d: d, log: cfg.logger}, nil
}

// Parse parses a descriptor read from r. path locates the descriptor for
// ^ relative data paths and for start time inference; the file itself is
// not opened.
func Parse(path string, r io.Reader, opts ...Option) (*Descriptor, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	d, err := core.ParseDescriptor(path, r, cfg.parserConfig())
	if err != nil {
		return nil, err
	}
	return &Descriptor{d: d, log: cfg.logger}, nil
}

// Path returns the location of the descriptor file.
func (d *Descriptor) Path() string { return d.d.Path }

// Title returns the title statement, empty if absent.
func (d *Descriptor) Title() string { return d.d.Title }

// DSet returns the data path as written in the descriptor.
func (d *Descriptor) DSet() string { return d.d.DSet }

// IsTemplate reports whether each time step is stored in its own file.
func (d *Descriptor) IsTemplate() bool { return d.d.Template }

// Options returns the declared data options.
func (d *Descriptor) Options() DataOptions {
	opts := d.d.Options
	opts.Raw = append([]string(nil), opts.Raw...)
	return opts
}

// Undef returns the missing value sentinel.
func (d *Descriptor) Undef() (float64, bool) {
	if d.d.Undef == nil {
		return 0, false
	}
	return *d.d.Undef, true
}

// XDef returns the longitude axis.
func (d *Descriptor) XDef() DimensionDef { return copyDimension(d.d.XDef) }

// YDef returns the latitude axis.
func (d *Descriptor) YDef() DimensionDef { return copyDimension(d.d.YDef) }

// ZDef returns the vertical axis.
func (d *Descriptor) ZDef() DimensionDef { return copyDimension(d.d.ZDef) }

// TDef returns the time axis.
func (d *Descriptor) TDef() TimeDef {
	t := d.d.TDef
	t.Values = append([]time.Time(nil), t.Values...)
	return t
}

// NX returns the number of longitudes.
func (d *Descriptor) NX() int { return d.d.NX() }

// NY returns the number of latitudes.
func (d *Descriptor) NY() int { return d.d.NY() }

// Vars returns the declared variables in declaration order.
func (d *Descriptor) Vars() []VarDef {
	return append([]VarDef(nil), d.d.Vars...)
}

// Records returns the record catalog in file order.
func (d *Descriptor) Records() []Record {
	return append([]Record(nil), d.d.Records...)
}

// StartTime returns the start time of the forecast, either set with
// WithStartTime or inferred from the descriptor file name.
func (d *Descriptor) StartTime() (time.Time, bool) {
	if d.d.StartTime == nil {
		return time.Time{}, false
	}
	return *d.d.StartTime, true
}

// ForecastTime returns the forecast lead time of the descriptor.
func (d *Descriptor) ForecastTime() (time.Duration, bool) {
	if d.d.ForecastTime == nil {
		return 0, false
	}
	return *d.d.ForecastTime, true
}

func copyDimension(dim DimensionDef) DimensionDef {
	dim.Values = append([]float64(nil), dim.Values...)
	return dim
}
