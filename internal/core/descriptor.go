package core

import (
	"time"
)

// Descriptor is the parsed content of a control file. It is built once by
// the parser and must not be modified afterwards.
type Descriptor struct {
	// Path is the location of the control file itself.
	Path string
	// DSet is the data file path as written after the dset keyword.
	DSet string
	// DataPath is DSet with a leading ^ resolved against the directory of Path.
	DataPath string
	// Template is set when DataPath contains % substitution tokens.
	Template bool

	Title   string
	Options Options
	Undef   *float64

	XDef DimensionDef
	YDef DimensionDef
	ZDef DimensionDef
	TDef TimeDef

	Vars    []VarDef
	Records []Record

	StartTime    *time.Time
	ForecastTime *time.Duration
}

// NX returns the number of grid points along x.
func (d *Descriptor) NX() int {
	return d.XDef.Count
}

// NY returns the number of grid points along y.
func (d *Descriptor) NY() int {
	return d.YDef.Count
}

// GridPoints returns nx*ny.
func (d *Descriptor) GridPoints() int {
	return d.XDef.Count * d.YDef.Count
}
