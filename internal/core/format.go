package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	levelsPerLine = 10
	defaultUnits  = "99"
)

// WriteDescriptor writes d in control file syntax. Only the statements
// the parser understands are written; Records are implied by Vars.
func WriteDescriptor(w io.Writer, d *Descriptor) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "dset %s\n", d.DSet)
	if d.Title != "" {
		fmt.Fprintf(bw, "title %s\n", d.Title)
	}
	if len(d.Options.Raw) > 0 {
		fmt.Fprintf(bw, "options %s\n", strings.Join(d.Options.Raw, " "))
	}
	if d.Undef != nil {
		fmt.Fprintf(bw, "undef %s\n", formatFloat(*d.Undef))
	}

	writeDimension(bw, KeywordXdef, d.XDef)
	writeDimension(bw, KeywordYdef, d.YDef)
	writeDimension(bw, KeywordZdef, d.ZDef)

	fmt.Fprintf(bw, "tdef %d linear %s %s\n", d.TDef.Count, FormatStartTime(d.TDef.Start), FormatIncrement(d.TDef.Step))

	fmt.Fprintf(bw, "vars %d\n", len(d.Vars))
	for _, v := range d.Vars {
		units := v.Units
		if units == "" {
			units = defaultUnits
		}
		line := fmt.Sprintf("%-10s %3d %s %s", v.Name, v.Levels, units, v.Description)
		fmt.Fprintln(bw, strings.TrimRight(line, " "))
	}
	fmt.Fprintln(bw, "endvars")

	return bw.Flush()
}

func writeDimension(w io.Writer, keyword Keyword, dim DimensionDef) {
	switch dim.Kind {
	case DimensionLinear:
		fmt.Fprintf(w, "%s %d linear %s %s\n", keyword, dim.Count, formatFloat(dim.Start), formatFloat(dim.Step))
	case DimensionLevels:
		fmt.Fprintf(w, "%s %d levels", keyword, dim.Count)
		for i, v := range dim.Values {
			if i > 0 && i%levelsPerLine == 0 {
				fmt.Fprint(w, "\n    ")
			}
			fmt.Fprintf(w, " %s", formatFloat(v))
		}
		fmt.Fprintln(w)
	}
}

// FormatStartTime formats t as HHzDDmmmYYYY, the only start time form
// ParseStartTime accepts.
func FormatStartTime(t time.Time) string {
	return strings.ToUpper(t.UTC().Format(startTimeLayout))
}

// FormatIncrement formats d with the largest unit dividing it.
func FormatIncrement(d time.Duration) string {
	switch {
	case d != 0 && d%(24*time.Hour) == 0:
		return fmt.Sprintf("%ddy", d/(24*time.Hour))
	case d != 0 && d%time.Hour == 0:
		return fmt.Sprintf("%dhr", d/time.Hour)
	default:
		return fmt.Sprintf("%dmn", d/time.Minute)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
