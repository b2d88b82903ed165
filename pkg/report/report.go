// Package report renders team records and season summaries into an Excel workbook
package report

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/myusername/hockey-scraper/pkg/models"
)

// Sheet names
const (
	DataSheet    = "Hockey Data"
	SummarySheet = "Winners and Losers"
)

// widthPadding is added to the longest value of each column
const widthPadding = 2

// DataHeaders are the column titles of the data sheet
var DataHeaders = []string{
	"TeamName", "Year", "Win", "Losses", "OTLosses",
	"WinPercentage", "GoalsFor(GF)", "GoalsAgainst(GA)", "+/-",
}

// SummaryHeaders are the column titles of the summary sheet
var SummaryHeaders = []string{
	"Year", "Winner", "Winner Num. of Wins", "Loser", "Loser Num. of Wins",
}

// DataRows converts the columns into sheet rows, header first
func DataRows(cols models.TeamColumns) [][]any {
	rows := make([][]any, 0, cols.Len()+1)
	rows = append(rows, headerRow(DataHeaders))
	for i := 0; i < cols.Len(); i++ {
		rows = append(rows, []any{
			cols.TeamName[i],
			cols.Year[i],
			cols.Wins[i],
			cols.Losses[i],
			cols.OTLosses[i],
			cols.WinPercentage[i],
			cols.GoalsFor[i],
			cols.GoalsAgainst[i],
			cols.Differential[i],
		})
	}
	return rows
}

// SummaryRows converts the per-year summary into sheet rows, header first.
// Years are written in the order given.
func SummaryRows(summary map[string]models.YearSummary, years []string) [][]any {
	rows := make([][]any, 0, len(years)+1)
	rows = append(rows, headerRow(SummaryHeaders))
	for _, year := range years {
		s, ok := summary[year]
		if !ok {
			continue
		}
		rows = append(rows, []any{year, s.Winner.Team, s.Winner.Count, s.Loser.Team, s.Loser.Count})
	}
	return rows
}

func headerRow(headers []string) []any {
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	return row
}

// renderedText is the text a cell shows. Empty strings and zero counts render
// as nothing so they do not widen a column.
func renderedText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ColumnWidths returns the width of each column: the longest rendered value plus padding
func ColumnWidths(rows [][]any) []float64 {
	var widths []float64
	for _, row := range rows {
		for j, v := range row {
			for len(widths) <= j {
				widths = append(widths, widthPadding)
			}
			w := float64(utf8.RuneCountInString(renderedText(v)) + widthPadding)
			if w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

type styles struct {
	header int
	data   int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	align := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: align,
		Border:    border,
	})
	if err != nil {
		return styles{}, eris.Wrap(err, "header style")
	}
	data, err := f.NewStyle(&excelize.Style{
		Alignment: align,
		Border:    border,
	})
	if err != nil {
		return styles{}, eris.Wrap(err, "data style")
	}
	return styles{header: header, data: data}, nil
}

// writeSheet writes rows to the sheet, styles them and sizes the columns
func writeSheet(f *excelize.File, sheet string, rows [][]any, st styles) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return eris.Wrapf(err, "%s row %d", sheet, i+1)
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}

	lastCol := len(rows[0])
	headerEnd, err := excelize.CoordinatesToCellName(lastCol, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", headerEnd, st.header); err != nil {
		return err
	}
	if len(rows) > 1 {
		dataEnd, err := excelize.CoordinatesToCellName(lastCol, len(rows))
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A2", dataEnd, st.data); err != nil {
			return err
		}
	}

	for j, w := range ColumnWidths(rows) {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

// BuildWorkbook renders the data sheet and the winners/losers sheet
func BuildWorkbook(cols models.TeamColumns, summary map[string]models.YearSummary, years []string) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, err
	}

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, DataSheet, DataRows(cols), st); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, SummarySheet, SummaryRows(summary, years), st); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// WriteWorkbook builds the workbook and saves it to path, replacing any existing file.
// Failures are logged and not returned; the report is best effort.
func WriteWorkbook(path string, cols models.TeamColumns, summary map[string]models.YearSummary, years []string, logger *zap.Logger) bool {
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := BuildWorkbook(cols, summary, years)
	if err != nil {
		logger.Error("Error building the Excel file", zap.String("error", err.Error()))
		return false
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		logger.Error("Error saving the Excel file", zap.String("path", path), zap.String("error", err.Error()))
		return false
	}

	logger.Info(fmt.Sprintf("Data successfully saved to %s", path))
	return true
}
