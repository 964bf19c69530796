// Package scraper fetches and parses paginated book listings into flat
// records. A thin, linear utility: no state machine, no shared state.
package scraper

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/yigit/registrar/internal/pkg/logger"
)

// retryWait separates failed fetch attempts.
const retryWait = 2 * time.Second

// Book is one flattened listing record.
type Book struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Rating   string  `json:"rating"`
	Link     string  `json:"link"`
	Category string  `json:"category"`
}

// Options configures a Scraper.
type Options struct {
	// BaseURL is a format string with one %d verb for the page number.
	BaseURL string
	// DetailBaseURL prefixes the relative detail links found on listing
	// pages. Defaults to the catalogue root derived from the site.
	DetailBaseURL string
	MaxRetries    int
	Timeout       time.Duration
	// MinDelay/MaxDelay bound the randomized politeness delay between
	// detail-page requests.
	MinDelay time.Duration
	MaxDelay time.Duration
}

// Scraper fetches catalogue pages with bounded retries and polite delays.
type Scraper struct {
	client  *http.Client
	options Options
	rand    *rand.Rand
}

// New creates a scraper.
func New(options Options) *Scraper {
	if options.MaxRetries <= 0 {
		options.MaxRetries = 3
	}
	if options.Timeout <= 0 {
		options.Timeout = 10 * time.Second
	}
	if options.DetailBaseURL == "" {
		options.DetailBaseURL = detailURLPrefix
	}

	return &Scraper{
		client:  &http.Client{Timeout: options.Timeout},
		options: options,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// FetchPage fetches a URL with retry logic, returning the body as a string.
func (s *Scraper) FetchPage(ctx context.Context, url string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= s.options.MaxRetries; attempt++ {
		body, err := s.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		logger.Warn().Str("url", url).Int("attempt", attempt).Err(err).
			Msg("Fetch failed")

		if attempt == s.options.MaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(retryWait):
		}
	}

	return "", fmt.Errorf("fetching %s failed after %d attempts: %w", url, s.options.MaxRetries, lastErr)
}

// fetchOnce performs a single GET.
func (s *Scraper) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}

	return string(body), nil
}

// ScrapeBooks walks the paginated catalogue, following each listing's detail
// page for category and stock.
func (s *Scraper) ScrapeBooks(ctx context.Context, maxPages int) ([]Book, error) {
	var books []Book

	for page := 1; page <= maxPages; page++ {
		url := fmt.Sprintf(s.options.BaseURL, page)
		pageLogger := logger.WithFields(map[string]interface{}{
			"page": page,
			"url":  url,
		})
		pageLogger.Info().Msg("Scraping page")

		html, err := s.FetchPage(ctx, url)
		if err != nil {
			pageLogger.Warn().Err(err).Msg("Skipping page")
			continue
		}

		listings, err := ParseListings(html, s.options.DetailBaseURL)
		if err != nil {
			pageLogger.Warn().Err(err).Msg("Skipping unparseable page")
			continue
		}

		for _, listing := range listings {
			book := Book{
				Title:    listing.Title,
				Price:    listing.Price,
				Rating:   listing.Rating,
				Link:     listing.Link,
				Category: "Unknown",
			}

			if detailHTML, err := s.FetchPage(ctx, listing.Link); err == nil {
				if detail, err := ParseDetail(detailHTML); err == nil {
					book.Category = detail.Category
					book.Stock = detail.Stock
				}
			}

			books = append(books, book)

			if err := s.politeDelay(ctx); err != nil {
				return books, err
			}
		}
	}

	return books, nil
}

// politeDelay sleeps for a random duration within the configured bounds.
func (s *Scraper) politeDelay(ctx context.Context) error {
	delay := s.options.MinDelay
	if spread := s.options.MaxDelay - s.options.MinDelay; spread > 0 {
		delay += time.Duration(s.rand.Int63n(int64(spread)))
	}
	if delay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
