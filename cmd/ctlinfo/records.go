package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/scigolib/grads"
)

func (a *app) recordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records <ctl>",
		Short: "List the record catalog",
		Long: `records lists every record of a descriptor with its position in the data
file, its byte offset and the data file holding it.`,
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := a.open(args[0])
			if err != nil {
				return err
			}
			return listRecords(cmd.OutOrStdout(), desc, a.cfg.GetString("name"))
		},
	}
}

func listRecords(out io.Writer, desc *grads.Descriptor, name string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tLEVEL\tVALID\tSTEP\tRECORD\tOFFSET\tFILE")

	for _, rec := range desc.Records() {
		if name != "" && rec.Name != name {
			continue
		}
		offset, err := desc.RecordOffset(rec)
		if err != nil {
			return err
		}
		path, err := desc.DataPath(rec)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%s\t%d\t%d\t%s\n",
			rec.Name, rec.LevelType, rec.Level, rec.ValidTime.Format(time.RFC3339),
			rec.ForecastTime, rec.RecordIndex, offset, path)
	}
	return w.Flush()
}
