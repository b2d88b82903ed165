// Package config loads the scraper run configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/rotisserie/eris"
	"github.com/titanous/json5"
)

// DefaultFile is the config file looked up in the working directory
const DefaultFile = "hockey-scraper.json5"

// Config holds the settings of a single scrape run
type Config struct {
	BaseURL   string `json:"base_url"`
	Pages     int    `json:"pages"`
	PerPage   int    `json:"per_page"`
	UserAgent string `json:"user_agent"`

	HTMLDir   string `json:"html_dir"`
	ZipFile   string `json:"zip_file"`
	ExcelFile string `json:"excel_file"`
	LogFile   string `json:"log_file"`
}

// Default returns the configuration of the standard deployment
func Default() Config {
	return Config{
		BaseURL:   "https://www.scrapethissite.com/pages/forms/",
		Pages:     24,
		PerPage:   100,
		HTMLDir:   "html_files",
		ZipFile:   "html_files.zip",
		ExcelFile: "hockey.xlsx",
		LogFile:   "scrape_log.txt",
	}
}

// WithOutputDir roots every relative output path in dir
func (c Config) WithOutputDir(dir string) Config {
	if dir == "" || dir == "." {
		return c
	}
	join := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	c.HTMLDir = join(c.HTMLDir)
	c.ZipFile = join(c.ZipFile)
	c.ExcelFile = join(c.ExcelFile)
	c.LogFile = join(c.LogFile)
	return c
}

// Validate reports settings a run cannot work with
func (c Config) Validate() error {
	if c.Pages <= 0 {
		return eris.Errorf("pages must be positive, got %d", c.Pages)
	}
	if c.PerPage <= 0 {
		return eris.Errorf("per_page must be positive, got %d", c.PerPage)
	}
	if c.BaseURL == "" {
		return eris.New("base_url must be set")
	}
	return nil
}

func readFile(path string) (Config, bool, error) {
	var out Config
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return out, false, nil
	}
	if err != nil {
		return out, false, err
	}
	if len(contents) == 0 {
		return out, false, nil
	}
	if err := json5.Unmarshal(contents, &out); err != nil {
		return out, false, eris.Wrapf(err, "failed to parse %s", path)
	}
	return out, true, nil
}

// localPath turns "dir/name.ext" into "dir/name.local.ext"
func localPath(path string) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s.local%s", strings.TrimSuffix(path, ext), ext)
}

// Load merges path and then its ".local" sibling over the defaults.
// Only fields set in a file override. Missing files are not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	for _, p := range []string{path, localPath(path)} {
		override, ok, err := readFile(p)
		if err != nil {
			return cfg, err
		}
		if !ok {
			continue
		}
		if err := mergo.Merge(&cfg, override, mergo.WithOverride); err != nil {
			return cfg, eris.Wrapf(err, "failed to merge %s", p)
		}
	}
	return cfg, cfg.Validate()
}
