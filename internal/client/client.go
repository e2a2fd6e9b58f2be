// Package client wraps the remote PaperSketch summarization API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrTimeout marks a summarization request that exceeded the configured
// deadline. Callers report it to the agent as a retryable condition.
var ErrTimeout = errors.New("papersketch request timed out")

// APIError is a non-2xx response from the summarization API.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("papersketch API returned status %d", e.StatusCode)
}

// Summarizer is the outbound contract the tool orchestrator depends on.
type Summarizer interface {
	Summarize(ctx context.Context, pdfURL, lang string) (map[string]any, error)
}

// Client is a thin wrapper around the PaperSketch HTTP API.
type Client struct {
	endpoint string
	apiKey   string
	httpc    *http.Client
}

func New(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpc:    &http.Client{Timeout: timeout},
	}
}

// Summarize issues GET <endpoint>?url=<pdfURL>&lang=<lang> with API-key
// authentication and decodes the loosely-typed JSON response. A transport
// timeout maps to ErrTimeout; any non-2xx status maps to *APIError.
func (c *Client) Summarize(ctx context.Context, pdfURL, lang string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building papersketch request: %w", err)
	}

	q := url.Values{}
	q.Set("url", pdfURL)
	q.Set("lang", lang)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w; try again or use an uploaded PDF", ErrTimeout)
		}
		return nil, fmt.Errorf("papersketch request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding papersketch response: %w", err)
	}
	return data, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

// summaryKeys are the field names the API has used for the summary body,
// tried in priority order.
var summaryKeys = []string{"paperSketch", "papersketch", "summary", "markdown", "content"}

// SummaryText resolves the Markdown summary from a loosely-typed response,
// falling back to the empty string when no candidate key is present.
func SummaryText(resp map[string]any) string {
	for _, key := range summaryKeys {
		if v, ok := resp[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// StringField returns resp[key] when it is a non-empty string, else "".
// Used to pass version/modelInfo metadata through verbatim.
func StringField(resp map[string]any, key string) string {
	if v, ok := resp[key].(string); ok {
		return v
	}
	return ""
}
