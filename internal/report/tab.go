package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TabWriter writes report rows in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a tab-delimited row writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Name",
			"Window",
			"Variant_count",
			"Length",
			"Sequence",
		},
	}
}

// WriteHeader writes the column header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single row.
func (tw *TabWriter) Write(row *Row) error {
	_, err := fmt.Fprintf(tw.w, "%s\t%d-%d\t%d\t%d\t%s\n",
		row.Name, row.Start, row.End, row.Variants, row.Length, row.Sequence)
	return err
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
