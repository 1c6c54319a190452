package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

func renderTable(out io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(out)
	table.Header(header)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("appending row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}
