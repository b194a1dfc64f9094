package nominatim_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/SscSPs/rotalivre/internal/adapters/providers/nominatim"
	"github.com/SscSPs/rotalivre/internal/adapters/providers/providerhttp"
	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://nominatim.test"

const searchBody = `[
  {"place_id": 298, "lat": "-22.9068", "lon": "-43.1729", "display_name": "Rio de Janeiro, Região Sudeste, Brasil",
   "type": "city", "importance": 0.83, "address": {"city": "Rio de Janeiro", "state": "Rio de Janeiro", "country_code": "br"}},
  {"place_id": 299, "lat": "not-a-number", "lon": "0", "display_name": "Broken"}
]`

func TestSuggestRestrictsToBrazil(t *testing.T) {
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	httpmock.RegisterResponder("GET", baseURL+"/search", func(req *http.Request) (*http.Response, error) {
		q := req.URL.Query()
		assert.Equal(t, "rio de", q.Get("q"))
		assert.Equal(t, "br", q.Get("countrycodes"))
		assert.Equal(t, "3", q.Get("limit"))
		assert.Equal(t, providerhttp.UserAgent, req.Header.Get("User-Agent"))
		return httpmock.NewStringResponse(http.StatusOK, searchBody), nil
	})

	client := nominatim.NewClient(baseURL, httpClient)
	suggestions, err := client.Suggest(context.Background(), "rio de", 3)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	s := suggestions[0]
	assert.Equal(t, "Rio de Janeiro", s.Name)
	assert.Equal(t, -22.9068, s.Coordinates.Lat)
	assert.Equal(t, "city", s.Type)
	assert.Equal(t, 0.83, s.Importance)
}

func TestSuggestRateLimited(t *testing.T) {
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	httpmock.RegisterResponder("GET", baseURL+"/search", httpmock.NewStringResponder(http.StatusTooManyRequests, ""))

	_, err := nominatim.NewClient(baseURL, httpClient).Suggest(context.Background(), "x", 5)
	assert.ErrorIs(t, err, apperrors.ErrRateLimited)
}

func TestResultToLocationAcceptsStringPlaceID(t *testing.T) {
	var r nominatim.Result
	require.NoError(t, json.Unmarshal([]byte(`{"place_id":"abc123","lat":"1.5","lon":"2.5","display_name":"Rua X, 10, Centro, Campinas",
		"address":{"road":"Rua X","house_number":"10","town":"Campinas","state":"São Paulo"}}`), &r))

	loc, err := r.ToLocation()
	require.NoError(t, err)
	assert.Equal(t, "abc123", loc.PlaceID)
	assert.Equal(t, "Campinas", loc.Address.City)
	assert.Equal(t, "Campinas, São Paulo", loc.CityState())
	assert.Equal(t, "Rua X", r.ShortName())
}
