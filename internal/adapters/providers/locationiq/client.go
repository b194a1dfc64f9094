// Package locationiq implements reverse and forward geocoding with LocationIQ.
package locationiq

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/rotalivre/internal/adapters/providers/nominatim"
	"github.com/SscSPs/rotalivre/internal/adapters/providers/providerhttp"
	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
)

const providerName = "locationiq"

// Client calls the LocationIQ /reverse and /search endpoints.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = providerhttp.NewHTTPClient(0)
	}
	return &Client{apiKey: apiKey, baseURL: baseURL, httpClient: httpClient}
}

func (c *Client) Name() string { return providerName }

func (c *Client) Configured() bool { return c.apiKey != "" }

// Reverse resolves a point to its address. Out-of-range coordinates fail
// with apperrors.ErrValidation before any request is made.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*domain.Location, error) {
	if !geo.ValidCoordinates(lat, lon) {
		return nil, fmt.Errorf("%s: coordinates (%v, %v) out of range: %w", providerName, lat, lon, apperrors.ErrValidation)
	}

	q := c.params()
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var result nominatim.Result
	if err := providerhttp.GetJSON(ctx, c.httpClient, c.baseURL+"/reverse?"+q.Encode(), providerName, &result); err != nil {
		return nil, err
	}
	loc, err := result.ToLocation()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", providerName, err)
	}
	return &loc, nil
}

// Search geocodes free text. LocationIQ answers 404 when nothing matches,
// which is reported as an empty result.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.Location, error) {
	q := c.params()
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("countrycodes", "br")

	var results []nominatim.Result
	err := providerhttp.GetJSON(ctx, c.httpClient, c.baseURL+"/search?"+q.Encode(), providerName, &results)
	var statusErr *providerhttp.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return []domain.Location{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]domain.Location, 0, len(results))
	for _, r := range results {
		loc, err := r.ToLocation()
		if err != nil {
			continue
		}
		out = append(out, loc)
	}
	return out, nil
}

func (c *Client) params() url.Values {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("accept-language", "pt-BR")
	return q
}
