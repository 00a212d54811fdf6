package display

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewTable creates a table writer with the suite's standard styling.
func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// KeyValue renders ordered key/value pairs as a two-column table. Keys keep
// their given order; commands use this for their summary displays.
func KeyValue(w io.Writer, pairs [][2]string) {
	t := NewTable(w)

	headers := []interface{}{
		text.FgHiCyan.Sprint("KEY"),
		text.FgHiCyan.Sprint("VALUE"),
	}
	t.AppendHeader(headers)

	for _, pair := range pairs {
		t.AppendRow([]interface{}{
			text.FgHiCyan.Sprint(pair[0]),
			pair[1],
		})
	}

	t.Render()
}
