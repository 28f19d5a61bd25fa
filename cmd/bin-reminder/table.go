package main

import (
	"math"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"bin-reminder/internal/domain/model"
	"bin-reminder/internal/usecase"
)

// renderCollections lays out collections as Collection | Date | In, with the
// countdown relative to now.
func renderCollections(collections []model.Collection, now time.Time) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Collection", "Date", "In"})

	for _, c := range collections {
		tw.AppendRow(table.Row{c.Type, usecase.FormatDate(c.Date), daysUntil(now, c.Date)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	return tw.Render()
}

func daysUntil(now, date time.Time) string {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	y, m, d = date.In(now.Location()).Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	// Hours/24 is off by one hour across DST changes, hence the rounding.
	days := int(math.Round(day.Sub(today).Hours() / 24))
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days < 0:
		return "past"
	default:
		return strconv.Itoa(days) + " days"
	}
}
