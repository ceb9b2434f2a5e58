package core

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Descriptor names written by the GRAPES post-processing chain:
//
//	post.ctl_201408111202900  (MESO: start, forecast hours, forecast minutes)
//	post.ctl_2014081112_001   (GFS: start, forecast hours)
var (
	mesoNamePattern = regexp.MustCompile(`^(\d{10})(\d{3})(\d{1,2})$`)
	gfsNamePattern  = regexp.MustCompile(`^(\d{10})_(\d{3})$`)
)

var descriptorNamePrefixes = []string{"post.ctl_", "model.ctl_"}

const startTimeNameLayout = "2006010215"

// InferTimes guesses the start time and forecast time from the file name of
// a descriptor. ErrUnrecognizedFilename is returned when the name follows
// none of the known conventions.
func InferTimes(path string) (time.Time, time.Duration, error) {
	name := filepath.Base(path)

	var stamp string
	for _, prefix := range descriptorNamePrefixes {
		if strings.HasPrefix(name, prefix) {
			stamp = strings.TrimPrefix(name, prefix)
			break
		}
	}
	if stamp == "" {
		return time.Time{}, 0, fmt.Errorf("%w: %s", ErrUnrecognizedFilename, name)
	}

	var startPart, hourPart, minutePart string
	if m := mesoNamePattern.FindStringSubmatch(stamp); m != nil {
		startPart, hourPart = m[1], m[2]
		if len(m[3]) == 2 {
			minutePart = m[3]
		}
	} else if m := gfsNamePattern.FindStringSubmatch(stamp); m != nil {
		startPart, hourPart = m[1], m[2]
	} else {
		return time.Time{}, 0, fmt.Errorf("%w: %s", ErrUnrecognizedFilename, name)
	}

	start, err := time.Parse(startTimeNameLayout, startPart)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %s: %w", ErrUnrecognizedFilename, name, err)
	}

	hours, _ := strconv.Atoi(hourPart)
	forecast := time.Duration(hours) * time.Hour
	if minutePart != "" {
		minutes, _ := strconv.Atoi(minutePart)
		forecast += time.Duration(minutes) * time.Minute
	}

	return start, forecast, nil
}
