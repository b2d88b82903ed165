// Package pipeline runs a full scrape: fetch, save, parse, summarize, archive, report
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/myusername/hockey-scraper/internal/config"
	"github.com/myusername/hockey-scraper/pkg/archive"
	"github.com/myusername/hockey-scraper/pkg/models"
	"github.com/myusername/hockey-scraper/pkg/parser"
	"github.com/myusername/hockey-scraper/pkg/report"
	"github.com/myusername/hockey-scraper/pkg/scraper"
	"github.com/myusername/hockey-scraper/pkg/stats"
)

// Result is what a run produced
type Result struct {
	Records      []models.TeamRecord
	Summary      map[string]models.YearSummary
	Years        []string
	ReportSaved  bool
	Elapsed      time.Duration
	PagesFetched int
}

// Run performs one scrape with cfg. Fetch and page-saving failures abort the
// run; bad rows and a failed workbook write are only logged.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()
	logger.Info("Starting web scraping process.")

	client := scraper.NewClient(scraper.ClientOptions{
		BaseURL:   cfg.BaseURL,
		PerPage:   cfg.PerPage,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	})
	pages, err := client.FetchPages(ctx, cfg.Pages)
	if err != nil {
		return nil, eris.Wrap(err, "fetch failed")
	}

	if err := scraper.SavePages(cfg.HTMLDir, pages); err != nil {
		return nil, err
	}

	records, err := parser.ExtractAllPages(pages, logger)
	if err != nil {
		return nil, err
	}

	columns := stats.ProcessTeamData(records)
	summary := stats.CalculateWinnersLosers(records)
	years := stats.Years(records)

	names := make([]string, cfg.Pages)
	for i := range names {
		names[i] = scraper.PageFileName(i + 1)
	}
	if err := archive.CreateZip(cfg.ZipFile, cfg.HTMLDir, names); err != nil {
		return nil, err
	}

	saved := report.WriteWorkbook(cfg.ExcelFile, columns, summary, years, logger)

	elapsed := time.Since(start)
	logger.Info(fmt.Sprintf("Web scraping process completed in %.2f seconds.", elapsed.Seconds()))

	return &Result{
		Records:      records,
		Summary:      summary,
		Years:        years,
		ReportSaved:  saved,
		Elapsed:      elapsed,
		PagesFetched: len(pages),
	}, nil
}
