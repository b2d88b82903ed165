// Package parser provides functionality to parse hockey team rows from standings pages
package parser

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/myusername/hockey-scraper/pkg/models"
)

// ErrMissingCell is returned when a team row lacks one of the expected cells
var ErrMissingCell = eris.New("missing cell")

// Cell classes of a team row, in column order
const (
	ClassName         = "name"
	ClassYear         = "year"
	ClassWins         = "wins"
	ClassLosses       = "losses"
	ClassOTLosses     = "ot-losses"
	ClassPct          = "pct"
	ClassGoalsFor     = "gf"
	ClassGoalsAgainst = "ga"
	ClassDiff         = "diff"
)

// cellText returns the trimmed text of the td with the given class
func cellText(row *goquery.Selection, class string) (string, error) {
	cell := row.Find("td." + class).First()
	if cell.Length() == 0 {
		return "", eris.Wrapf(ErrMissingCell, "td.%s", class)
	}
	return strings.TrimSpace(cell.Text()), nil
}

// parseCount converts cell text to an int, treating empty text as zero
func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// ParseTeamRow converts a single tr.team selection into a TeamRecord
func ParseTeamRow(row *goquery.Selection) (models.TeamRecord, error) {
	var record models.TeamRecord

	text := func(class string, dst *string) error {
		s, err := cellText(row, class)
		if err != nil {
			return err
		}
		*dst = s
		return nil
	}
	count := func(class string, dst *int) error {
		s, err := cellText(row, class)
		if err != nil {
			return err
		}
		n, err := parseCount(s)
		if err != nil {
			return eris.Wrapf(err, "td.%s", class)
		}
		*dst = n
		return nil
	}

	steps := []func() error{
		func() error { return text(ClassName, &record.TeamName) },
		func() error { return text(ClassYear, &record.Year) },
		func() error { return count(ClassWins, &record.Wins) },
		func() error { return count(ClassLosses, &record.Losses) },
		func() error { return count(ClassOTLosses, &record.OTLosses) },
		func() error { return text(ClassPct, &record.WinPercentage) },
		func() error { return count(ClassGoalsFor, &record.GoalsFor) },
		func() error { return count(ClassGoalsAgainst, &record.GoalsAgainst) },
		func() error { return text(ClassDiff, &record.Differential) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return models.TeamRecord{}, err
		}
	}

	if record.Differential == "" {
		record.Differential = "0"
	}
	return record, nil
}

// ExtractTeamRecords parses every tr.team row of a page.
// Rows that fail to parse are logged and skipped.
func ExtractTeamRecords(htmlContent string, logger *zap.Logger) ([]models.TeamRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, eris.Wrap(err, "error parsing HTML content")
	}

	var records []models.TeamRecord
	doc.Find("tr.team").Each(func(i int, row *goquery.Selection) {
		record, err := ParseTeamRow(row)
		if err != nil {
			logger.Error("Error processing team data", zap.Int("row", i), zap.String("error", err.Error()))
			return
		}
		records = append(records, record)
	})

	return records, nil
}

// ExtractAllPages parses every page and concatenates the records in page order
func ExtractAllPages(pages []string, logger *zap.Logger) ([]models.TeamRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var all []models.TeamRecord
	for i, html := range pages {
		records, err := ExtractTeamRecords(html, logger.With(zap.Int("page", i+1)))
		if err != nil {
			return nil, eris.Wrapf(err, "page %d", i+1)
		}
		all = append(all, records...)
	}

	logger.Info("extracted team records", zap.Int("records", len(all)), zap.Int("pages", len(pages)))
	return all, nil
}
