package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/scigolib/grads"
)

func (a *app) extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <ctl>",
		Short: "Load a field and summarize it",
		Long: `extract loads the records of one parameter, prints the shape, level axis
and statistics of the resulting field, and optionally writes it to NetCDF.`,
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := a.open(args[0])
			if err != nil {
				return err
			}
			q, err := a.query()
			if err != nil {
				return err
			}
			field, err := desc.Load(q)
			if err != nil {
				return err
			}
			if field == nil {
				return fmt.Errorf("no record of %s matches", q.Parameter)
			}

			printField(cmd.OutOrStdout(), field)

			if path := a.cfg.GetString("netcdf"); path != "" {
				if err := writeNetCDF(path, field); err != nil {
					return err
				}
				a.log.WithField("path", path).Info("field written")
			}
			return nil
		},
	}
}

func printField(out io.Writer, f *grads.Field) {
	fmt.Fprintln(out, f)
	if f.Description != "" {
		fmt.Fprintf(out, "description: %s\n", f.Description)
	}
	fmt.Fprintf(out, "%s: %v\n", f.LevelDim, f.Levels)
	fmt.Fprintf(out, "latitude: %g .. %g (%s)\n", f.Latitudes[0], f.Latitudes[len(f.Latitudes)-1], f.LatitudeUnits)
	fmt.Fprintf(out, "longitude: %g .. %g\n", f.Longitudes[0], f.Longitudes[len(f.Longitudes)-1])
	if f.StartTime != nil && f.ForecastTime != nil {
		fmt.Fprintf(out, "start time: %s forecast time: %s\n", f.StartTime.Format("2006010215"), f.ForecastTime)
	}
	for i, level := range f.Levels {
		level := &grads.Field{
			Undef:      f.Undef,
			Levels:     []float64{level},
			Latitudes:  f.Latitudes,
			Longitudes: f.Longitudes,
			Values:     f.Level(i),
		}
		fmt.Fprintf(out, "  %g: %s\n", level.Levels[0], level.Summary())
	}
}

func writeNetCDF(path string, f *grads.Field) (err error) {
	//nolint:gosec // G304: output path is provided on purpose
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return f.WriteNetCDF(out)
}
