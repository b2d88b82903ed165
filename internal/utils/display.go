// Package utils provides utility functions for the hockey-scraper
package utils

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/myusername/hockey-scraper/pkg/models"
)

// NewTable returns a table writer with the style used for console output
func NewTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	return t
}

// DisplayWinnersLosers prints the per-year winners and losers in the given year order
func DisplayWinnersLosers(out io.Writer, summary map[string]models.YearSummary, years []string) {
	t := NewTable(out)
	t.SetTitle("WINNERS AND LOSERS BY YEAR")
	t.AppendHeader(table.Row{"Year", "Winner", "Wins", "Loser", "Losses"})

	for _, year := range years {
		s, ok := summary[year]
		if !ok {
			continue
		}
		t.AppendRow(table.Row{year, s.Winner.Team, s.Winner.Count, s.Loser.Team, s.Loser.Count})
	}
	t.AppendFooter(table.Row{"", "", "", "Years", len(years)})

	t.Render()
}
