// Package serpapi searches Google Maps listings through SerpAPI.
package serpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/rotalivre/internal/adapters/providers/providerhttp"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
)

const providerName = "serpapi"

// Client queries the google_maps engine.
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

type gps struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type listing struct {
	PlaceID        string   `json:"place_id"`
	Title          string   `json:"title"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	Website        string   `json:"website"`
	Rating         *float64 `json:"rating"`
	Reviews        *int     `json:"reviews"`
	Price          string   `json:"price"`
	OpenState      string   `json:"open_state"`
	Hours          string   `json:"hours"`
	Type           string   `json:"type"`
	GPSCoordinates *gps     `json:"gps_coordinates"`
}

type response struct {
	LocalResults []listing `json:"local_results"`
	// place_results is a single object when the query resolves to one place.
	PlaceResults json.RawMessage `json:"place_results"`
	Error        string          `json:"error"`
}

// SearchPlaces runs one google_maps search centred on the point.
func (c *Client) SearchPlaces(ctx context.Context, query string, lat, lon, radiusKm float64) ([]domain.Place, error) {
	q := url.Values{}
	q.Set("engine", "google_maps")
	q.Set("type", "search")
	q.Set("q", query)
	q.Set("ll", fmt.Sprintf("@%s,%s,%skm",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
		strconv.FormatFloat(radiusKm, 'f', -1, 64)))
	q.Set("hl", "pt")
	q.Set("gl", "br")
	q.Set("google_domain", "google.com")
	q.Set("api_key", c.apiKey)

	var resp response
	if err := providerhttp.GetJSON(ctx, c.httpClient, c.baseURL+"/search.json?"+q.Encode(), providerName, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" && len(resp.LocalResults) == 0 {
		// SerpAPI reports "no results" as a 200 with an error string.
		return []domain.Place{}, nil
	}

	listings := resp.LocalResults
	if single, ok := decodeSingle(resp.PlaceResults); ok {
		listings = append(listings, single)
	}

	places := make([]domain.Place, 0, len(listings))
	for _, l := range listings {
		if l.GPSCoordinates == nil {
			continue
		}
		places = append(places, l.toPlace(lat, lon))
	}
	return places, nil
}

func decodeSingle(raw json.RawMessage) (listing, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return listing{}, false
	}
	var l listing
	if err := json.Unmarshal(raw, &l); err != nil {
		return listing{}, false
	}
	return l, true
}

func (l listing) toPlace(originLat, originLon float64) domain.Place {
	coords := domain.Coordinates{Lat: l.GPSCoordinates.Latitude, Lng: l.GPSCoordinates.Longitude}
	return domain.Place{
		ID:          "serpapi_" + l.PlaceID,
		Name:        l.Title,
		Address:     l.Address,
		Coordinates: coords,
		Distance:    geo.Distance(originLat, originLon, coords.Lat, coords.Lng),
		Phone:       l.Phone,
		Website:     l.Website,
		Rating:      l.Rating,
		Reviews:     l.Reviews,
		Price:       l.Price,
		OpenState:   l.OpenState,
		Hours:       l.Hours,
		Type:        l.Type,
		Source:      domain.PlaceSourceSerpAPI,
	}
}
