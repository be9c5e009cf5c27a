// Package sheetfetch downloads the monthly staff reference sheet over HTTP.
package sheetfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/iho/tbrecon/internal/domain"
)

var fetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tbrecon_sheet_fetches_total",
		Help: "Total reference sheet download attempts by result",
	},
	[]string{"result"},
)

// Fetcher implements usecase.SheetFetcher with exponential-backoff retries
// on transient failures.
type Fetcher struct {
	client          *http.Client
	urlTemplate     string
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	logger          zerolog.Logger
}

// NewFetcher creates a new Fetcher. urlTemplate must contain a "{month}"
// placeholder, e.g. "https://files.example.com/staff/{month}.xlsx".
func NewFetcher(client *http.Client, urlTemplate string, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		client:          client,
		urlTemplate:     urlTemplate,
		maxRetries:      3,
		initialInterval: 200 * time.Millisecond,
		maxInterval:     2 * time.Second,
		logger:          logger,
	}
}

// Fetch downloads the sheet for a month. Network errors and 5xx responses
// are retried; other HTTP errors are permanent.
func (f *Fetcher) Fetch(ctx context.Context, month string) ([]byte, error) {
	url := strings.ReplaceAll(f.urlTemplate, "{month}", month)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.initialInterval
	b.MaxInterval = f.maxInterval

	var data []byte
	retryCount := 0

	err := backoff.Retry(func() error {
		var err error
		data, err = f.fetchOnce(ctx, url)
		if err == nil {
			return nil
		}

		if !isRetryable(err) {
			return backoff.Permanent(err)
		}

		retryCount++
		if retryCount > f.maxRetries {
			return backoff.Permanent(err)
		}

		f.logger.Warn().Err(err).Str("month", month).Int("retry", retryCount).
			Msg("reference sheet download failed, retrying")

		return err
	}, backoff.WithContext(b, ctx))
	if err != nil {
		fetchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetUnavailable, err)
	}

	fetchesTotal.WithLabelValues("ok").Inc()
	return data, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{status: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("sheet server returned status %d", e.status)
}

// isRetryable checks if a download error should trigger a retry.
func isRetryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.status >= http.StatusInternalServerError
	}
	// Network-level errors are retryable.
	return true
}
