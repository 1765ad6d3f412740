package cmds

import (
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"
)

func renderTable(w io.Writer, header []string, rows [][]string) error {
	headerCells := make([]any, 0, len(header))
	for _, h := range header {
		headerCells = append(headerCells, h)
	}

	table := tablewriter.NewWriter(w)
	table.Header(headerCells...)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func prettyJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func orNotSet(s string) string {
	if s == "" {
		return "Not set"
	}
	return s
}

func enabled(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}
