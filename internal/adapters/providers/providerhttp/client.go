// Package providerhttp holds the request plumbing shared by the upstream clients.
package providerhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/rotalivre/internal/apperrors"
)

const (
	// UserAgent identifies us to OSM-operated services, which require one.
	UserAgent = "RotaLivre/1.0 (+https://github.com/SscSPs/rotalivre)"

	// DefaultTimeout applies when a client is built without an explicit timeout.
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 512
)

// NewHTTPClient returns an http.Client bounded by timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// StatusError is returned for any non-2xx answer. It unwraps to
// apperrors.ErrRateLimited for 429 and apperrors.ErrUpstream otherwise.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusTooManyRequests {
		return apperrors.ErrRateLimited
	}
	return apperrors.ErrUpstream
}

// DoJSON sends req once and decodes a successful JSON body into out.
func DoJSON(client *http.Client, req *http.Request, provider string, out any) error {
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Provider: provider, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", provider, err)
	}
	return nil
}

// GetJSON builds a GET request for url and decodes the answer into out.
func GetJSON(ctx context.Context, client *http.Client, url, provider string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%s: creating request: %w", provider, err)
	}
	return DoJSON(client, req, provider, out)
}
