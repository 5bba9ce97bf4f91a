package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"numevo/internal/evo"
)

// WriteDiagnostics renders per-generation diagnostics as a table.
func WriteDiagnostics(w io.Writer, title string, diagnostics []evo.GenerationDiagnostics) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if title != "" {
		t.SetTitle(title)
	}
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Generation", "Size", "Average", "StdDev", "Min", "Max"})
	for _, d := range diagnostics {
		t.AppendRow(table.Row{
			d.Generation,
			d.PopulationSize,
			formatFloat(d.Average),
			formatFloat(d.StdDev),
			formatFloat(d.Min),
			formatFloat(d.Max),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
