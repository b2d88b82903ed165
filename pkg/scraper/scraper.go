// Package scraper provides functionality to fetch standings pages and save them locally
package scraper

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the paginated hockey teams form
const DefaultBaseURL = "https://www.scrapethissite.com/pages/forms/"

// ErrBadStatus is returned when a page responds with a non-2xx status code
var ErrBadStatus = eris.New("non-success status code")

// ClientOptions configures a Client
type ClientOptions struct {
	BaseURL   string
	PerPage   int
	UserAgent string
	// Timeout is applied per request. Zero disables it.
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client fetches standings pages over a single shared connection pool
type Client struct {
	http    *resty.Client
	baseURL string
	perPage int
	logger  *zap.Logger
}

// NewClient creates a Client from the given options
func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.PerPage <= 0 {
		opts.PerPage = 100
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	client := resty.New()
	if opts.UserAgent != "" {
		client.SetHeader("user-agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	return &Client{
		http:    client,
		baseURL: opts.BaseURL,
		perPage: opts.PerPage,
		logger:  opts.Logger,
	}
}

// PageURL builds the URL of a single page of results
func PageURL(base string, page, perPage int) string {
	q := url.Values{}
	q.Set("page_num", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	u, err := url.Parse(base)
	if err != nil {
		return fmt.Sprintf("%s?%s", base, q.Encode())
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// FetchPage downloads a single page and returns its body
func (c *Client) FetchPage(ctx context.Context, page int) (string, error) {
	pageURL := PageURL(c.baseURL, page, c.perPage)
	c.logger.Debug("fetching page", zap.Int("page", page), zap.String("url", pageURL))

	res, err := c.http.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return "", eris.Wrapf(err, "error fetching page %d", page)
	}
	if !res.IsSuccess() {
		return "", eris.Wrapf(ErrBadStatus, "page %d: %s", page, res.Status())
	}

	c.logger.Debug("fetched page",
		zap.Int("page", page),
		zap.Int("status", res.StatusCode()),
		zap.Int("bytes", len(res.Body())),
	)
	return string(res.Body()), nil
}

// FetchPages downloads pages 1..pages concurrently and returns their bodies in page order.
// Every request is started at once. The first failure cancels the rest and is returned.
func (c *Client) FetchPages(ctx context.Context, pages int) ([]string, error) {
	if pages < 0 {
		return nil, eris.Errorf("page count must not be negative, got %d", pages)
	}
	bodies := make([]string, pages)

	g, gCtx := errgroup.WithContext(ctx)
	for i := range bodies {
		g.Go(func() error {
			body, err := c.FetchPage(gCtx, i+1)
			if err != nil {
				return err
			}
			bodies[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Info("fetched pages", zap.Int("pages", pages))
	return bodies, nil
}

// PageFileName is the file name a page is saved under
func PageFileName(page int) string {
	return fmt.Sprintf("%d.html", page)
}

// SaveContentToFile saves content to a file
func SaveContentToFile(filename string, content string) error {
	return os.WriteFile(filename, []byte(content), 0644)
}

// SavePages writes each page body to dir as {page}.html, creating dir if needed
func SavePages(dir string, pages []string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return eris.Wrapf(err, "failed to create directory %s", dir)
	}
	for i, html := range pages {
		path := filepath.Join(dir, PageFileName(i+1))
		if err := SaveContentToFile(path, html); err != nil {
			return eris.Wrapf(err, "failed to save page %d", i+1)
		}
	}
	return nil
}
