package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <ctl>",
		Short: "Hex dump the raw bytes of a record",
		Long: `dump prints the raw bytes of the first record matching the query, starting
at its computed offset, for checking byte order and record framing.`,
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
			records, err := desc.Select(q)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("no record of %s matches", q.Parameter)
			}

			rec := records[0]
			offset, err := desc.RecordOffset(rec)
			if err != nil {
				return err
			}
			path, err := desc.DataPath(rec)
			if err != nil {
				return err
			}

			length := a.cfg.GetInt("length")
			if length < 1 {
				return fmt.Errorf("invalid length: %d", length)
			}
			return dumpFile(cmd.OutOrStdout(), path, offset, length)
		},
	}
}

func dumpFile(out io.Writer, path string, offset int64, length int) error {
	//nolint:gosec // G304: data path comes from the descriptor
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}
	fileSize := info.Size()

	if offset < 0 || offset >= fileSize {
		return fmt.Errorf("invalid offset: %d (file size: %d)", offset, fileSize)
	}

	readLength := min(int64(length), fileSize-offset)
	buf := make([]byte, readLength)
	n, err := f.ReadAt(buf, offset)
	if err != nil && n == 0 {
		return fmt.Errorf("read error: %w", err)
	}

	fmt.Fprintf(out, "Dumping %d bytes at offset 0x%x (%d) of %s (size: %d bytes):\n",
		n, offset, offset, path, fileSize)
	hexDump(out, buf[:n], offset)
	return nil
}

// hexDump writes buf 16 bytes per line with addresses starting at base.
func hexDump(out io.Writer, buf []byte, base int64) {
	for i := 0; i < len(buf); i += 16 {
		chunk := buf[i:min(i+16, len(buf))]

		fmt.Fprintf(out, "%08x: ", base+int64(i))
		for j := 0; j < 16; j++ {
			if j < len(chunk) {
				fmt.Fprintf(out, "%02x ", chunk[j])
			} else {
				fmt.Fprint(out, "   ")
			}
			if j == 7 {
				fmt.Fprint(out, " ")
			}
		}
		fmt.Fprint(out, " |")

		for _, b := range chunk {
			if b >= 32 && b <= 126 {
				fmt.Fprintf(out, "%c", b)
			} else {
				fmt.Fprint(out, ".")
			}
		}
		fmt.Fprintln(out, "|")
	}
}
