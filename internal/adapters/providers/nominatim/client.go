// Package nominatim queries an OpenStreetMap Nominatim instance. Its result
// decoding is shared with LocationIQ, which serves the same JSON format.
package nominatim

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/SscSPs/rotalivre/internal/adapters/providers/providerhttp"
	"github.com/SscSPs/rotalivre/internal/core/domain"
)

const providerName = "nominatim"

// Client serves autocomplete suggestions restricted to Brazil.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = providerhttp.NewHTTPClient(0)
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

func (c *Client) Name() string { return providerName }

// Suggest returns at most limit places matching the partial query.
func (c *Client) Suggest(ctx context.Context, query string, limit int) ([]domain.Suggestion, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("countrycodes", "br")
	q.Set("addressdetails", "1")

	var results []Result
	if err := providerhttp.GetJSON(ctx, c.httpClient, c.baseURL+"/search?"+q.Encode(), providerName, &results); err != nil {
		return nil, err
	}

	out := make([]domain.Suggestion, 0, len(results))
	for _, r := range results {
		loc, err := r.ToLocation()
		if err != nil {
			continue
		}
		out = append(out, domain.Suggestion{
			DisplayName: r.DisplayName,
			Name:        r.ShortName(),
			Coordinates: domain.Coordinates{Lat: loc.Latitude, Lng: loc.Longitude},
			Type:        r.Type,
			Importance:  r.Importance,
		})
	}
	return out, nil
}

// Result is one entry in Nominatim's jsonv1 format. Coordinates arrive as strings.
type Result struct {
	PlaceID     flexString `json:"place_id"`
	Lat         string     `json:"lat"`
	Lon         string     `json:"lon"`
	DisplayName string     `json:"display_name"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Importance  float64    `json:"importance"`
	BoundingBox []string   `json:"boundingbox"`
	Address     struct {
		HouseNumber   string `json:"house_number"`
		Road          string `json:"road"`
		Suburb        string `json:"suburb"`
		Neighbourhood string `json:"neighbourhood"`
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		Municipality  string `json:"municipality"`
		State         string `json:"state"`
		Postcode      string `json:"postcode"`
		Country       string `json:"country"`
		CountryCode   string `json:"country_code"`
	} `json:"address"`
}

// ToLocation converts the result, failing when the coordinates do not parse.
func (r Result) ToLocation() (domain.Location, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("invalid lat %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("invalid lon %q: %w", r.Lon, err)
	}
	a := r.Address
	return domain.Location{
		PlaceID:     string(r.PlaceID),
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: r.DisplayName,
		BoundingBox: r.BoundingBox,
		Address: domain.Address{
			HouseNumber: a.HouseNumber,
			Road:        a.Road,
			Suburb:      firstNonEmpty(a.Suburb, a.Neighbourhood),
			City:        firstNonEmpty(a.City, a.Town, a.Village, a.Municipality),
			State:       a.State,
			Postcode:    a.Postcode,
			Country:     a.Country,
			CountryCode: a.CountryCode,
		},
	}, nil
}

// ShortName is the explicit name, or the first segment of the display name.
func (r Result) ShortName() string {
	if r.Name != "" {
		return r.Name
	}
	name, _, _ := strings.Cut(r.DisplayName, ",")
	return strings.TrimSpace(name)
}

// flexString accepts place_id as either a JSON number (Nominatim) or string (LocationIQ).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	*f = flexString(s)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
