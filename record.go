package grads

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scigolib/grads/internal/core"
)

// RecordByteSize returns the distance in bytes between consecutive records.
func (d *Descriptor) RecordByteSize() int64 {
	return core.RecordByteSize(d.d)
}

// RecordOffset returns the byte offset of the first value of rec in its
// data file, past the record marker of sequential files.
func (d *Descriptor) RecordOffset(rec Record) (int64, error) {
	return core.RecordOffset(d.d, rec)
}

// RecordByIndex returns the record of the first time step holding level
// levelIndex of variable varIndex. Single level variables only accept
// level index 0.
func (d *Descriptor) RecordByIndex(varIndex, levelIndex int) (Record, error) {
	if varIndex < 0 || varIndex >= len(d.d.Vars) {
		return Record{}, fmt.Errorf("%w: %d not in [0, %d)", ErrVarIndexOutOfRange, varIndex, len(d.d.Vars))
	}
	levels := max(d.d.Vars[varIndex].Levels, 1)
	if levelIndex < 0 || levelIndex >= levels {
		return Record{}, fmt.Errorf("%w: %d not in [0, %d)", ErrLevelIndexOutOfRange, levelIndex, levels)
	}

	for _, rec := range d.d.Records {
		if rec.TimeIndex == 0 && rec.VarIndex == varIndex && rec.LevelIndex == levelIndex {
			return rec, nil
		}
	}
	return Record{}, fmt.Errorf("%w: variable %d level %d", ErrRecordIndexOutOfRange, varIndex, levelIndex)
}

// RecordFilter selects records of the catalog. Zero fields match anything.
type RecordFilter struct {
	Name         string
	Kind         LevelKind
	Level        *float64
	ValidTime    *time.Time
	ForecastTime *time.Duration
}

func (f RecordFilter) match(rec Record) bool {
	return rec.Name == f.Name &&
		(f.Kind == 0 || rec.LevelType == f.Kind) &&
		(f.Level == nil || rec.Level == *f.Level) &&
		(f.ValidTime == nil || rec.ValidTime.Equal(*f.ValidTime)) &&
		(f.ForecastTime == nil || rec.ForecastTime == *f.ForecastTime)
}

// FindRecord returns the first record of the catalog matching f.
func (d *Descriptor) FindRecord(f RecordFilter) (Record, bool) {
	for _, rec := range d.d.Records {
		if f.match(rec) {
			return rec, true
		}
	}
	return Record{}, false
}

// DataPath returns the data file holding rec, with template tokens
// substituted.
func (d *Descriptor) DataPath(rec Record) (string, error) {
	return core.ResolveDataPath(d.d, rec)
}

// ReadRecord decodes the grid of rec as ny rows of nx values. Each call
// opens the data file and closes it before returning.
func (d *Descriptor) ReadRecord(rec Record) ([]float32, error) {
	path, err := d.DataPath(rec)
	if err != nil {
		return nil, err
	}

	if d.log != nil {
		offset, _ := d.RecordOffset(rec)
		d.log.WithFields(logrus.Fields{
			"name":   rec.Name,
			"level":  rec.Level,
			"record": rec.RecordIndex,
			"offset": offset,
			"path":   path,
		}).Debug("reading record")
	}

	return core.ReadRecordFile(path, d.d, rec)
}
