// Package latinwordnet fetches lemma records and the verb index from the
// LatinWordNet REST API.
package latinwordnet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/cours-de-latin/conjugator"
	"github.com/cours-de-latin/conjugator/internal/lemmaindex"
)

// ErrNotFound is returned when the service has no lemma for a URI.
var ErrNotFound = errors.New("latinwordnet: lemma not found")

// Client talks to the LatinWordNet API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryWait  time.Duration
	log        *slog.Logger
}

// NewClientWithURL creates a Client for the instance at baseURL. The
// public one is the default of config.LexicalServiceConfig.BaseURL.
func NewClientWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		retryWait:  500 * time.Millisecond,
		log:        logger.With("adapter", "latinwordnet"),
	}
}

// FetchLemma returns the lemma record for uri.
func (c *Client) FetchLemma(ctx context.Context, uri string) (*conjugator.Record, error) {
	c.log.DebugContext(ctx, "lemma request", slog.String("uri", uri))

	var page lemmaPage
	if err := c.getJSON(ctx, "/api/lemmas/", url.Values{"uri": {uri}}, &page); err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, uri)
	}
	rec := page.Results[0]
	c.log.DebugContext(ctx, "lemma response",
		slog.String("uri", uri),
		slog.String("lemma", rec.Lemma),
		slog.String("morpho", rec.Morpho),
	)
	return &rec, nil
}

// FetchIndex returns every verb lemma with its URI. The service pages its
// index, so the count is requested first and the full list second.
func (c *Client) FetchIndex(ctx context.Context) ([]lemmaindex.Entry, error) {
	var head indexPage
	if err := c.getJSON(ctx, "/api/index/v", nil, &head); err != nil {
		return nil, err
	}

	var page indexPage
	q := url.Values{"limit": {strconv.Itoa(head.Count)}}
	if err := c.getJSON(ctx, "/api/index/v/", q, &page); err != nil {
		return nil, err
	}

	entries := make([]lemmaindex.Entry, 0, len(page.Results))
	for _, r := range page.Results {
		entries = append(entries, lemmaindex.Entry{Lemma: r.Lemma, URI: r.URI})
	}
	if len(entries) != head.Count {
		c.log.WarnContext(ctx, "index size mismatch",
			slog.Int("count", head.Count),
			slog.Int("received", len(entries)),
		)
	}
	return entries, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, dst any) error {
	reqURL := c.baseURL + path
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("latinwordnet: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "request failed", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("latinwordnet: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("latinwordnet: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("latinwordnet: read body: %w", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("latinwordnet: decode json: %w", err)
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "latinwordnet retry", slog.String("url", req.URL.String()), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryWait):
	}
	return c.httpClient.Do(req)
}
