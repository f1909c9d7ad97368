package wiktionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/wikiparse/internal/config"
	"github.com/heartmarshall/wikiparse/internal/domain"
)

// maxPageBytes bounds the body read from a single page.
const maxPageBytes = 16 << 20

// ErrPageTooLarge is returned for a page body over the size limit. A cut
// page is never handed to the parser.
var ErrPageTooLarge = errors.New("page exceeds size limit")

// Fetcher downloads rendered Wiktionary pages.
type Fetcher struct {
	baseURL    string
	userAgent  string
	maxRetries int
	retryDelay time.Duration
	maxBytes   int64
	httpClient *http.Client
	log        *slog.Logger
}

// NewFetcher creates a Fetcher from configuration.
func NewFetcher(cfg config.WiktionaryConfig, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		maxBytes:   maxPageBytes,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "wiktionary"),
	}
}

// NewFetcherWithURL creates a Fetcher with a custom base URL and no retry
// delay (for testing).
func NewFetcherWithURL(baseURL string, maxRetries int, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		baseURL:    baseURL,
		maxRetries: maxRetries,
		maxBytes:   maxPageBytes,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "wiktionary"),
	}
}

// FetchPage fetches the rendered page for word. With printable set the
// printable rendering is requested, which carries the same sections with
// less chrome. Returns "", nil if the page does not exist (HTTP 404).
func (f *Fetcher) FetchPage(ctx context.Context, word string, printable bool) (string, error) {
	reqURL := f.baseURL + "/" + url.PathEscape(word)
	if printable {
		reqURL += "?printable=yes"
	}

	f.log.DebugContext(ctx, "wiktionary request", slog.String("word", word), slog.Bool("printable", printable))

	resp, err := f.doWithRetry(ctx, reqURL, word)
	if err != nil {
		f.log.ErrorContext(ctx, "wiktionary request failed", slog.String("word", word), slog.String("error", err.Error()))
		return "", fmt.Errorf("wiktionary: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		f.log.DebugContext(ctx, "wiktionary page not found", slog.String("word", word))
		return "", nil
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wiktionary: %w", &domain.UpstreamError{Status: resp.StatusCode, Attempts: 1})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("wiktionary: read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		f.log.WarnContext(ctx, "wiktionary page too large",
			slog.String("word", word),
			slog.Int64("limit", f.maxBytes),
		)
		return "", fmt.Errorf("wiktionary: %w: %w", domain.ErrUpstream, ErrPageTooLarge)
	}

	f.log.DebugContext(ctx, "wiktionary response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)

	return string(body), nil
}

// doWithRetry executes the request, retrying up to maxRetries times on 5xx
// or network errors. Each attempt builds a fresh request.
func (f *Fetcher) doWithRetry(ctx context.Context, reqURL, word string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		if f.userAgent != "" {
			req.Header.Set("User-Agent", f.userAgent)
		}

		resp, err := f.httpClient.Do(req)

		shouldRetry := err != nil || resp.StatusCode >= 500
		if !shouldRetry || attempt >= f.maxRetries {
			if err == nil && resp.StatusCode >= 500 {
				resp.Body.Close()
				return nil, &domain.UpstreamError{Status: resp.StatusCode, Attempts: attempt + 1}
			}
			return resp, err
		}

		// Don't retry if context is already cancelled.
		if ctx.Err() != nil {
			if resp != nil {
				resp.Body.Close()
			}
			return nil, ctx.Err()
		}

		reason := "network error"
		if err == nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
			// Close body from the failed attempt before retrying.
			resp.Body.Close()
		}
		f.log.WarnContext(ctx, "wiktionary retry",
			slog.String("word", word),
			slog.String("reason", reason),
			slog.Int("attempt", attempt+1),
		)

		if err := sleepCtx(ctx, f.retryDelay); err != nil {
			return nil, err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
