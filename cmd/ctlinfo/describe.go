package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/scigolib/grads"
)

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <ctl>",
		Short: "Print the content of a descriptor",
		Long: `describe prints the grid, time axis and variables of a descriptor, and
the start and forecast time known for it.`,
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := a.open(args[0])
			if err != nil {
				return err
			}
			return describe(cmd.OutOrStdout(), desc)
		},
	}
}

func describe(out io.Writer, desc *grads.Descriptor) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "descriptor:\t%s\n", desc.Path())
	if desc.Title() != "" {
		fmt.Fprintf(w, "title:\t%s\n", desc.Title())
	}
	dset := desc.DSet()
	if desc.IsTemplate() {
		dset += " (template)"
	}
	fmt.Fprintf(w, "dset:\t%s\n", dset)
	if opts := desc.Options(); len(opts.Raw) > 0 {
		fmt.Fprintf(w, "options:\t%s (byte order %s)\n", strings.Join(opts.Raw, " "), opts.Endian)
	}
	if undef, ok := desc.Undef(); ok {
		fmt.Fprintf(w, "undef:\t%g\n", undef)
	}

	fmt.Fprintf(w, "xdef:\t%s\n", formatDimension(desc.XDef()))
	fmt.Fprintf(w, "ydef:\t%s\n", formatDimension(desc.YDef()))
	if z := desc.ZDef(); z.IsDefined() {
		fmt.Fprintf(w, "zdef:\t%s\n", formatDimension(z))
	}
	tdef := desc.TDef()
	fmt.Fprintf(w, "tdef:\t%d steps from %s every %s\n", tdef.Count, tdef.Start.Format(time.RFC3339), tdef.Step)

	if start, ok := desc.StartTime(); ok {
		fmt.Fprintf(w, "start time:\t%s\n", start.Format(time.RFC3339))
	} else {
		fmt.Fprintf(w, "start time:\tunknown\n")
	}
	if forecast, ok := desc.ForecastTime(); ok {
		fmt.Fprintf(w, "forecast time:\t%s\n", forecast)
	} else {
		fmt.Fprintf(w, "forecast time:\tunknown\n")
	}
	fmt.Fprintf(w, "records:\t%d of %d bytes\n", len(desc.Records()), desc.RecordByteSize())
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "variables:\n")
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, v := range desc.Vars() {
		fmt.Fprintf(w, "  %s\t%d\t%s\t%s\n", v.Name, v.Levels, v.Units, v.Description)
	}
	return w.Flush()
}

func formatDimension(d grads.DimensionDef) string {
	switch d.Kind {
	case grads.DimensionLinear:
		return fmt.Sprintf("%d linear start %g step %g", d.Count, d.Start, d.Step)
	case grads.DimensionLevels:
		levels := make([]string, len(d.Values))
		for i, v := range d.Values {
			levels[i] = fmt.Sprintf("%g", v)
		}
		return fmt.Sprintf("%d levels %s", d.Count, strings.Join(levels, " "))
	default:
		return "undefined"
	}
}
