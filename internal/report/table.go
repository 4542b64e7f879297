// Package report renders matched record sets for human consumption.
package report

import (
	"github.com/biolab-put/putemg-downloader/internal/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderRecords renders the matched record set as an aligned table,
// one row per record.
func RenderRecords(records []model.Record) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Type", "ID", "Trajectory", "Date", "Time"})
	for _, r := range records {
		tw.AppendRow(table.Row{r.ExperimentType, r.ParticipantID, r.Trajectory, r.Date, r.Time})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
