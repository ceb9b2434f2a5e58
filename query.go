package grads

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scigolib/grads/internal/core"
	"github.com/scigolib/grads/internal/utils"
)

type levelTypeKind uint8

const (
	levelTypeAny levelTypeKind = iota
	levelTypeSingle
	levelTypeIndex
	levelTypeNamed
)

// LevelType is the vertical axis mode of a query.
//
// The zero value applies no level type filter.
type LevelType struct {
	kind levelTypeKind
	name string
}

// Level types other than Named.
var (
	LevelTypeAny    = LevelType{}
	LevelTypeSingle = LevelType{kind: levelTypeSingle}
	LevelTypeIndex  = LevelType{kind: levelTypeIndex}
)

// Named selects multi level records with levels given as values, such as
// "pl" for pressure levels or "ml" for model levels. The name becomes the
// level axis name of the result.
func Named(name string) LevelType {
	return LevelType{kind: levelTypeNamed, name: name}
}

// ParseLevelType maps "" to LevelTypeAny, "single" to LevelTypeSingle,
// "index" to LevelTypeIndex and any other name to Named.
func ParseLevelType(s string) LevelType {
	switch strings.ToLower(s) {
	case "":
		return LevelTypeAny
	case "single":
		return LevelTypeSingle
	case "index":
		return LevelTypeIndex
	default:
		return Named(s)
	}
}

// Name returns the axis name of a Named level type, empty otherwise.
func (t LevelType) Name() string {
	return t.name
}

// String returns the query spelling of the level type.
func (t LevelType) String() string {
	switch t.kind {
	case levelTypeSingle:
		return "single"
	case levelTypeIndex:
		return "index"
	case levelTypeNamed:
		return t.name
	default:
		return ""
	}
}

// LevelSpec is the set of requested levels. The zero value requests none
// in particular.
type LevelSpec struct {
	values []float64
}

// AtLevel requests one level.
func AtLevel(v float64) LevelSpec {
	return LevelSpec{values: []float64{v}}
}

// AtLevels requests several levels.
func AtLevels(vs ...float64) LevelSpec {
	return LevelSpec{values: slices.Clone(vs)}
}

// IsSet reports whether any level was requested.
func (s LevelSpec) IsSet() bool {
	return len(s.values) > 0
}

// Values returns the requested levels.
func (s LevelSpec) Values() []float64 {
	return slices.Clone(s.values)
}

// LatitudeDirection is the row order of loaded grids.
type LatitudeDirection uint8

const (
	// North orders rows from north to south, the reverse of the usual
	// on-disk order.
	North LatitudeDirection = iota
	// South keeps the on-disk row order.
	South
)

// String returns the latitude units matching the direction.
func (d LatitudeDirection) String() string {
	if d == South {
		return "degree_south"
	}
	return "degree_north"
}

// Query selects the records of one parameter to load as a Field.
type Query struct {
	Parameter string
	LevelType LevelType
	Level     LevelSpec
	// LevelDim overrides the name of the level axis.
	LevelDim          string
	LatitudeDirection LatitudeDirection
	ValidTime         *time.Time
	ForecastTime      *time.Duration
}

const defaultLevelDim = "level"

// plan is a query normalized against a descriptor.
type plan struct {
	filter     RecordFilter
	levels     []float64
	firstOnly  bool
	levelDim   string
	timeFilter bool
}

func (d *Descriptor) plan(q Query) (plan, error) {
	if q.Parameter == "" {
		return plan{}, ErrMissingParameter
	}

	p := plan{
		filter: RecordFilter{
			Name:         q.Parameter,
			ValidTime:    q.ValidTime,
			ForecastTime: q.ForecastTime,
		},
		levels:     q.Level.Values(),
		levelDim:   defaultLevelDim,
		timeFilter: q.ValidTime != nil || q.ForecastTime != nil,
	}

	switch q.LevelType.kind {
	case levelTypeSingle:
		p.filter.Kind = LevelSingle
		p.levels = []float64{0}
	case levelTypeIndex:
		p.filter.Kind = LevelMulti
		levels, err := d.levelsByIndex(q.Level.values)
		if err != nil {
			return plan{}, err
		}
		p.levels = levels
	case levelTypeNamed:
		p.filter.Kind = LevelMulti
		p.levelDim = q.LevelType.name
		if !q.Level.IsSet() {
			p.levels = slices.Clone(d.d.ZDef.Values)
		}
	default:
		p.firstOnly = !q.Level.IsSet()
	}

	if q.LevelDim != "" {
		p.levelDim = q.LevelDim
	}
	return p, nil
}

// levelsByIndex translates zdef indices to level values. No index selects
// every level.
func (d *Descriptor) levelsByIndex(indices []float64) ([]float64, error) {
	zdef := d.d.ZDef.Values
	if len(indices) == 0 {
		return slices.Clone(zdef), nil
	}

	levels := make([]float64, 0, len(indices))
	for _, idx := range indices {
		i := int(idx)
		if float64(i) != idx || i < 0 || i >= len(zdef) {
			return nil, fmt.Errorf("%w: %v not in [0, %d)", ErrLevelIndexOutOfRange, idx, len(zdef))
		}
		levels = append(levels, zdef[i])
	}
	return levels, nil
}

// Select returns the catalog records q resolves to, in catalog order.
func (d *Descriptor) Select(q Query) ([]Record, error) {
	p, err := d.plan(q)
	if err != nil {
		return nil, err
	}
	return d.selectRecords(p), nil
}

func (d *Descriptor) selectRecords(p plan) []Record {
	var matches []Record
	for _, rec := range d.d.Records {
		if !p.filter.match(rec) {
			continue
		}
		if len(p.levels) > 0 && !containsLevel(p.levels, rec.Level) {
			continue
		}
		matches = append(matches, rec)
		if p.firstOnly {
			break
		}
	}

	// Without a time filter every level comes from the first matching
	// time step.
	if !p.timeFilter && len(matches) > 1 {
		first := matches[0].ValidTime
		matches = slices.DeleteFunc(matches, func(rec Record) bool {
			return !rec.ValidTime.Equal(first)
		})
	}
	return matches
}

func containsLevel(levels []float64, level float64) bool {
	for _, l := range levels {
		if l == level || math.Abs(l-level) < 1e-9 {
			return true
		}
	}
	return false
}

// Load reads the records selected by q into a Field. A query matching no
// record returns a nil Field and no error. Several matches are stacked
// along the level axis.
func (d *Descriptor) Load(q Query) (*Field, error) {
	p, err := d.plan(q)
	if err != nil {
		return nil, err
	}
	records := d.selectRecords(p)

	log := d.log.WithFields(logrus.Fields{
		"parameter":  q.Parameter,
		"level_type": q.LevelType.String(),
	})
	if len(records) == 0 {
		log.Debug("no record found")
		return nil, nil
	}
	log.WithField("records", len(records)).Debug("loading field")

	field := d.newField(q, p.levelDim, records)
	grid := d.NX() * d.NY()
	for i, rec := range records {
		values, err := d.ReadRecord(rec)
		if err != nil {
			return nil, err
		}
		if q.LatitudeDirection == North {
			core.FlipRows(values, d.NY(), d.NX())
		}
		copy(field.Values[i*grid:(i+1)*grid], values)
	}
	return field, nil
}

// LoadField opens the descriptor at path and loads the field q selects.
func LoadField(path string, q Query, opts ...Option) (*Field, error) {
	d, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	f, err := d.Load(q)
	if err != nil {
		return nil, utils.WrapError("field load failed", err)
	}
	return f, nil
}
