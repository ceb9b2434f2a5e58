package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// startTimeLayout matches "00z03aug2021" after lowercasing.
const startTimeLayout = "15z02Jan2006"

// TimeDef is the linear time axis of a descriptor.
type TimeDef struct {
	Count  int
	Start  time.Time
	Step   time.Duration
	Values []time.Time
}

// parseTdef parses
//
//	tdef 1 linear 00z03AUG2021 360mn
func parseTdef(fields []string) (TimeDef, error) {
	if len(fields) != 5 {
		return TimeDef{}, fmt.Errorf("%w: expected 5 tokens, got %d", ErrMalformedTdef, len(fields))
	}
	if strings.ToLower(fields[2]) != "linear" {
		return TimeDef{}, fmt.Errorf("%w: unsupported type %q", ErrMalformedTdef, fields[2])
	}

	count, err := strconv.Atoi(fields[1])
	if err != nil || count < 0 {
		return TimeDef{}, fmt.Errorf("%w: invalid count %q", ErrMalformedTdef, fields[1])
	}

	start, err := ParseStartTime(fields[3])
	if err != nil {
		return TimeDef{}, err
	}
	step, err := ParseIncrement(fields[4])
	if err != nil {
		return TimeDef{}, err
	}

	values := make([]time.Time, count)
	for i := range values {
		values[i] = start.Add(step * time.Duration(i))
	}

	return TimeDef{
		Count:  count,
		Start:  start,
		Step:   step,
		Values: values,
	}, nil
}

// ParseStartTime parses a start time of the form HHzDDmmmYYYY. The longer
// hh:mmZ and two digit year forms are not supported.
func ParseStartTime(s string) (time.Time, error) {
	if len(s) != len(startTimeLayout) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrUnsupportedStartTime, s)
	}

	t, err := time.Parse(startTimeLayout, strings.ToLower(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %w", ErrUnsupportedStartTime, s, err)
	}
	return t, nil
}

// ParseIncrement parses a time increment such as 6hr, 360mn or 1dy.
// Month and year increments have no fixed duration and are rejected.
func ParseIncrement(s string) (time.Duration, error) {
	if len(s) < 3 {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedIncrement, s)
	}

	unit := strings.ToLower(s[len(s)-2:])
	value, err := strconv.Atoi(s[:len(s)-2])
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrUnsupportedIncrement, s, err)
	}

	switch unit {
	case "mn":
		return time.Duration(value) * time.Minute, nil
	case "hr":
		return time.Duration(value) * time.Hour, nil
	case "dy":
		return time.Duration(value) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("%w: unit %q", ErrUnsupportedIncrement, unit)
	}
}
