package core

import (
	"fmt"
	"strconv"
	"strings"
)

// DimensionKind tells how an axis is described in the descriptor.
type DimensionKind uint8

// Dimension kinds.
const (
	DimensionLinear DimensionKind = iota + 1 // count, start, step.
	DimensionLevels                          // explicit list of values.
)

// String returns the descriptor spelling of the kind.
func (k DimensionKind) String() string {
	switch k {
	case DimensionLinear:
		return "linear"
	case DimensionLevels:
		return "levels"
	default:
		return "undefined"
	}
}

// DimensionDef describes one of the x, y or z axes.
type DimensionDef struct {
	Kind  DimensionKind
	Count int
	// Start and Step are only meaningful for DimensionLinear.
	Start  float64
	Step   float64
	Values []float64
}

// IsDefined reports whether the dimension was present in the descriptor.
func (d DimensionDef) IsDefined() bool {
	return d.Kind != 0
}

// parseDimension parses an xdef, ydef or zdef statement. fields are the
// tokens of the current cursor line. It returns the number of lines consumed.
//
//	xdef 1440 linear 0.0000 0.2500
//	zdef 27 levels 1000 925 850
//	     700 600 ...
func parseDimension(c *LineCursor, fields []string) (DimensionDef, int, error) {
	if len(fields) < 3 {
		return DimensionDef{}, 0, fmt.Errorf("%w: `%s`", ErrMalformedDimension, c.Current())
	}

	count, err := strconv.Atoi(fields[1])
	if err != nil || count < 0 {
		return DimensionDef{}, 0, fmt.Errorf("%w: invalid count %q", ErrMalformedDimension, fields[1])
	}

	switch kind := strings.ToLower(fields[2]); kind {
	case "linear":
		dim, err := parseLinearDimension(count, fields)
		return dim, 1, err
	case "levels":
		return parseLevelsDimension(c, count, fields)
	default:
		return DimensionDef{}, 0, fmt.Errorf("%w: %s", ErrUnsupportedDimension, kind)
	}
}

func parseLinearDimension(count int, fields []string) (DimensionDef, error) {
	if len(fields) < 5 {
		return DimensionDef{}, fmt.Errorf("%w: linear %s needs start and step", ErrMalformedDimension, fields[0])
	}

	start, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return DimensionDef{}, fmt.Errorf("%w: start: %w", ErrMalformedDimension, err)
	}
	step, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return DimensionDef{}, fmt.Errorf("%w: step: %w", ErrMalformedDimension, err)
	}

	values := make([]float64, count)
	for i := range values {
		values[i] = start + step*float64(i)
	}

	return DimensionDef{
		Kind:   DimensionLinear,
		Count:  count,
		Start:  start,
		Step:   step,
		Values: values,
	}, nil
}

// parseLevelsDimension collects values inline and from continuation lines
// until count values are known. Continuation lines may hold several values.
func parseLevelsDimension(c *LineCursor, count int, fields []string) (DimensionDef, int, error) {
	values := make([]float64, 0, count)
	values, err := appendFloats(values, fields[3:])
	if err != nil {
		return DimensionDef{}, 0, err
	}

	consumed := 1
	for len(values) < count {
		line, ok := c.Lookahead(consumed)
		if !ok {
			return DimensionDef{}, 0, fmt.Errorf("%w: %s expects %d levels, found %d",
				ErrUnexpectedEOF, fields[0], count, len(values))
		}
		consumed++

		values, err = appendFloats(values, strings.Fields(line))
		if err != nil {
			return DimensionDef{}, 0, err
		}
	}

	return DimensionDef{
		Kind:   DimensionLevels,
		Count:  count,
		Values: values[:count],
	}, consumed, nil
}

func appendFloats(dst []float64, tokens []string) ([]float64, error) {
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: level value: %w", ErrMalformedDimension, err)
		}
		dst = append(dst, v)
	}
	return dst, nil
}
