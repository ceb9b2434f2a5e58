package core

import (
	"fmt"
	"time"
)

// LevelKind classifies the vertical axis of a record.
type LevelKind uint8

// Record level kinds.
const (
	LevelSingle LevelKind = iota + 1
	LevelMulti
)

// String returns "single" or "multi".
func (k LevelKind) String() string {
	switch k {
	case LevelSingle:
		return "single"
	case LevelMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// Record is one addressable (variable, level, time) block of binary data.
type Record struct {
	Name       string
	VarIndex   int
	LevelType  LevelKind
	Level      float64
	LevelIndex int
	TimeIndex  int
	ValidTime  time.Time
	// ForecastTime is the offset of ValidTime from the first time step.
	ForecastTime time.Duration
	// RecordIndex is the position of the record inside its data file.
	RecordIndex int
	Units       string
	Description string
}

// GenerateRecords expands variables x levels x time steps into the record
// catalog. When template is set every time step lives in its own file and
// the record index restarts at zero for each of them.
func GenerateRecords(vars []VarDef, zdef DimensionDef, tdef TimeDef, template bool) ([]Record, error) {
	perStep := 0
	for _, v := range vars {
		if v.IsSingleLevel() {
			perStep++
			continue
		}
		if !zdef.IsDefined() {
			return nil, fmt.Errorf("%w: %s", ErrMissingZdef, v.Name)
		}
		if v.Levels > len(zdef.Values) {
			return nil, fmt.Errorf("%w: %s has %d levels, zdef has %d",
				ErrLevelsExceedZdef, v.Name, v.Levels, len(zdef.Values))
		}
		perStep += v.Levels
	}

	records := make([]Record, 0, perStep*tdef.Count)
	recordIndex := 0
	for t, validTime := range tdef.Values {
		forecastTime := tdef.Step * time.Duration(t)
		if template {
			recordIndex = 0
		}

		for varIndex, v := range vars {
			rec := Record{
				Name:         v.Name,
				VarIndex:     varIndex,
				TimeIndex:    t,
				ValidTime:    validTime,
				ForecastTime: forecastTime,
				Units:        v.Units,
				Description:  v.Description,
			}

			if v.IsSingleLevel() {
				rec.LevelType = LevelSingle
				rec.RecordIndex = recordIndex
				records = append(records, rec)
				recordIndex++
				continue
			}

			rec.LevelType = LevelMulti
			for levelIndex := 0; levelIndex < v.Levels; levelIndex++ {
				rec.Level = zdef.Values[levelIndex]
				rec.LevelIndex = levelIndex
				rec.RecordIndex = recordIndex
				records = append(records, rec)
				recordIndex++
			}
		}
	}

	return records, nil
}
