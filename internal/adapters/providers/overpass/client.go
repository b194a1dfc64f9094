// Package overpass finds OpenStreetMap amenities through the Overpass API.
package overpass

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/SscSPs/rotalivre/internal/adapters/providers/providerhttp"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
)

const (
	providerName = "overpass"

	// queryTimeoutSeconds is the server-side budget announced in the QL header.
	queryTimeoutSeconds = 25

	missingAddress = "Endereço não disponível"
)

// Tag keys and values are interpolated into QL; anything else is dropped.
var tagPattern = regexp.MustCompile(`^[a-z_:]+$`)

// Client posts Overpass QL queries to an interpreter endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = providerhttp.NewHTTPClient(0)
	}
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

func (c *Client) Name() string { return providerName }

type point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *point            `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type response struct {
	Elements []element `json:"elements"`
}

// NearbyAmenities returns nodes, ways and relations matching one of the tags
// within radiusMeters of the point, in the order Overpass sends them. A tag is
// either a bare amenity value ("fuel") or a key=value pair ("tourism=hotel").
// Elements without coordinates are skipped.
func (c *Client) NearbyAmenities(ctx context.Context, lat, lon float64, radiusMeters int, amenities []string) ([]domain.Place, error) {
	ql, err := BuildQuery(lat, lon, radiusMeters, amenities)
	if err != nil {
		return nil, err
	}

	form := url.Values{"data": {ql}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%s: creating request: %w", providerName, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp response
	if err := providerhttp.DoJSON(c.httpClient, req, providerName, &resp); err != nil {
		return nil, err
	}

	places := make([]domain.Place, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		coords, ok := el.coordinates()
		if !ok {
			continue
		}
		places = append(places, el.toPlace(coords, lat, lon))
	}
	return places, nil
}

// BuildQuery renders the Overpass QL for a tag search around a point.
func BuildQuery(lat, lon float64, radiusMeters int, tags []string) (string, error) {
	var (
		keys     []string
		byKey    = map[string][]string{}
		position = fmt.Sprintf("(around:%d,%s,%s)", radiusMeters,
			strconv.FormatFloat(lat, 'f', -1, 64), strconv.FormatFloat(lon, 'f', -1, 64))
	)
	for _, tag := range tags {
		key, value, found := strings.Cut(tag, "=")
		if !found {
			key, value = "amenity", tag
		}
		if !tagPattern.MatchString(key) || !tagPattern.MatchString(value) {
			continue
		}
		if _, seen := byKey[key]; !seen {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], value)
	}
	if len(keys) == 0 {
		return "", fmt.Errorf("%s: no valid tags in %v", providerName, tags)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", queryTimeoutSeconds)
	for _, key := range keys {
		filter := fmt.Sprintf(`["%s"~"^(%s)$"]%s`, key, strings.Join(byKey[key], "|"), position)
		for _, kind := range []string{"node", "way", "relation"} {
			fmt.Fprintf(&b, "  %s%s;\n", kind, filter)
		}
	}
	b.WriteString(");\nout center;")
	return b.String(), nil
}

func (el element) coordinates() (domain.Coordinates, bool) {
	switch {
	case el.Lat != nil && el.Lon != nil:
		return domain.Coordinates{Lat: *el.Lat, Lng: *el.Lon}, true
	case el.Center != nil:
		return domain.Coordinates{Lat: el.Center.Lat, Lng: el.Center.Lon}, true
	}
	return domain.Coordinates{}, false
}

func (el element) toPlace(coords domain.Coordinates, originLat, originLon float64) domain.Place {
	tags := el.Tags
	amenity := firstNonEmpty(tags["amenity"], tags["tourism"], tags["shop"])

	name := firstNonEmpty(tags["name"], tags["brand"], amenity, "Local")

	var parts []string
	for _, key := range []string{"addr:street", "addr:housenumber", "addr:city"} {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	address := strings.Join(parts, ", ")
	if address == "" {
		address = missingAddress
	}

	place := domain.Place{
		ID:          fmt.Sprintf("osm_%s_%d", el.Type, el.ID),
		Name:        name,
		Address:     address,
		Coordinates: coords,
		Distance:    geo.Distance(originLat, originLon, coords.Lat, coords.Lng),
		Phone:       firstNonEmpty(tags["phone"], tags["contact:phone"]),
		Website:     firstNonEmpty(tags["website"], tags["contact:website"]),
		Hours:       tags["opening_hours"],
		Type:        firstNonEmpty(amenity, "unknown"),
		Source:      domain.PlaceSourceOSM,
	}
	if r, err := strconv.ParseFloat(tags["rating"], 64); err == nil {
		place.Rating = &r
	}
	return place
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
