package serpapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/SscSPs/rotalivre/internal/adapters/providers/serpapi"
	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://serpapi.test"

const localResults = `{
  "local_results": [
    {"place_id": "ChIJ1", "title": "Posto Ipiranga", "address": "Rua da Consolação, 800", "rating": 4.1, "reviews": 230,
     "open_state": "Aberto 24 horas", "type": "Posto de combustível", "gps_coordinates": {"latitude": -23.553, "longitude": -46.66}},
    {"place_id": "ChIJ2", "title": "Sem GPS"}
  ]
}`

func setup(t *testing.T) *serpapi.Client {
	t.Helper()
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return serpapi.NewClient("serp-key", baseURL, httpClient)
}

func TestSearchPlacesSendsMapsParameters(t *testing.T) {
	client := setup(t)
	httpmock.RegisterResponder("GET", baseURL+"/search.json", func(req *http.Request) (*http.Response, error) {
		q := req.URL.Query()
		assert.Equal(t, "google_maps", q.Get("engine"))
		assert.Equal(t, "posto de gasolina", q.Get("q"))
		assert.Equal(t, "@-23.55,-46.63,5km", q.Get("ll"))
		assert.Equal(t, "pt", q.Get("hl"))
		assert.Equal(t, "br", q.Get("gl"))
		assert.Equal(t, "serp-key", q.Get("api_key"))
		return httpmock.NewStringResponse(http.StatusOK, localResults), nil
	})

	places, err := client.SearchPlaces(context.Background(), "posto de gasolina", -23.55, -46.63, 5)
	require.NoError(t, err)
	require.Len(t, places, 1)

	p := places[0]
	assert.Equal(t, "serpapi_ChIJ1", p.ID)
	assert.Equal(t, "Posto Ipiranga", p.Name)
	assert.Equal(t, domain.PlaceSourceSerpAPI, p.Source)
	require.NotNil(t, p.Rating)
	assert.Equal(t, 4.1, *p.Rating)
	require.NotNil(t, p.Reviews)
	assert.Equal(t, 230, *p.Reviews)
	assert.Greater(t, p.Distance, 0.0)
}

func TestSearchPlacesAcceptsSinglePlaceResult(t *testing.T) {
	client := setup(t)
	httpmock.RegisterResponder("GET", baseURL+"/search.json", httpmock.NewStringResponder(http.StatusOK,
		`{"place_results": {"place_id": "X", "title": "Hospital", "gps_coordinates": {"latitude": 1, "longitude": 1}}}`))

	places, err := client.SearchPlaces(context.Background(), "hospital", 1, 1, 10)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, 0.0, places[0].Distance)
}

func TestSearchPlacesNoResultsIsEmpty(t *testing.T) {
	client := setup(t)
	httpmock.RegisterResponder("GET", baseURL+"/search.json", httpmock.NewStringResponder(http.StatusOK,
		`{"error": "Google hasn't returned any results for this query."}`))

	places, err := client.SearchPlaces(context.Background(), "nada", 1, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestSearchPlacesRateLimited(t *testing.T) {
	client := setup(t)
	httpmock.RegisterResponder("GET", baseURL+"/search.json", httpmock.NewStringResponder(http.StatusTooManyRequests, `{"error":"limit"}`))

	_, err := client.SearchPlaces(context.Background(), "posto", 1, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrRateLimited)
}
