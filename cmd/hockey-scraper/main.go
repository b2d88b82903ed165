// Package main is the entry point for the hockey-scraper application
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/myusername/hockey-scraper/internal/config"
	"github.com/myusername/hockey-scraper/internal/logging"
	"github.com/myusername/hockey-scraper/internal/pipeline"
	"github.com/myusername/hockey-scraper/internal/utils"
)

// Version is set during build using ldflags
var (
	version = "dev"
)

var (
	versionFlag bool
	outputFlag  string
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:           "hockey-scraper",
	Short:         "Scrapes hockey team standings into an Excel workbook and a zip of the raw pages.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFlag {
			fmt.Printf("hockey-scraper version %s\n", version)
			return nil
		}
		return run(cmd.Context(), configFlag, outputFlag, os.Stdout)
	},
}

// run performs one scrape. The run log is opened before anything else, so a
// bad config file is still reported there; in that case the default log path
// under outputDir is used.
func run(ctx context.Context, configPath, outputDir string, out io.Writer) error {
	cfg, cfgErr := config.Load(configPath)
	if cfgErr != nil {
		cfg = config.Default()
	}
	cfg = cfg.WithOutputDir(outputDir)

	logger, closeLog, err := logging.NewRunLogger(cfg.LogFile, zapcore.InfoLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfgErr != nil {
		logger.Error("failed to read config", zap.String("path", configPath), zap.String("error", cfgErr.Error()))
		return fmt.Errorf("failed to read config: %w", cfgErr)
	}

	res, err := pipeline.Run(ctx, cfg, logger)
	if err != nil {
		logger.Error("scrape failed", zap.String("error", err.Error()))
		return err
	}

	utils.DisplayWinnersLosers(out, res.Summary, res.Years)
	fmt.Fprintf(out, "Scraped %d teams from %d pages in %.2f seconds\n",
		len(res.Records), res.PagesFetched, res.Elapsed.Seconds())
	return nil
}

func init() {
	rootCmd.Flags().BoolVar(&versionFlag, "version", false, "Print version information and exit")
	rootCmd.Flags().StringVar(&outputFlag, "output", "", "Output directory for all generated files (default: current directory)")
	rootCmd.Flags().StringVar(&configFlag, "config", config.DefaultFile, "Optional json5 config file")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
