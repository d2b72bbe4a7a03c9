package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderable pairs a decoded result with its tabular view. value is what
// --json prints.
type renderable struct {
	value   any
	title   string
	headers []string
	rows    [][]string
	aligns  []columnAlignment
	footer  string
}

func (c *commandContext) render(cmd *cobra.Command, r renderable) error {
	out := cmd.OutOrStdout()
	if c.flags.json || !isTerminal(out) || len(r.headers) == 0 {
		return writeJSON(cmd, r.value)
	}
	return writeTable(out, r)
}

func writeTable(out io.Writer, r renderable) error {
	if r.title != "" {
		if _, err := fmt.Fprintln(out, r.title); err != nil {
			return err
		}
	}
	if len(r.rows) == 0 {
		_, err := fmt.Fprintln(out, "No results")
		return err
	}
	if _, err := fmt.Fprintln(out, renderTable(r.headers, r.rows, r.aligns)); err != nil {
		return err
	}
	if r.footer != "" {
		if _, err := fmt.Fprintln(out, r.footer); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:           i + 1,
			Align:            align,
			AlignHeader:      text.AlignLeft,
			WidthMax:         60,
			WidthMaxEnforcer: text.Trim,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
