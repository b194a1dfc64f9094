package handlers_test

import (
	"net/http"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestSearch() {
	result := &domain.SearchResult{
		Places: []domain.Place{
			{ID: "osm-1", Name: "Posto Ipiranga", Distance: 0.3, Source: domain.PlaceSourceOSM},
			{ID: "serp-1", Name: "Auto Posto", Distance: 0.9, Source: domain.PlaceSourceSerpAPI},
		},
		Sources: []string{domain.PlaceSourceOSM, domain.PlaceSourceSerpAPI},
	}
	expected := domain.SearchQuery{
		Query:     "posto",
		Latitude:  -23.55,
		Longitude: -46.63,
		RadiusKm:  0,
		UseCache:  true,
		Filters:   domain.SearchFilters{SortBy: "rating"},
	}
	suite.search.On("Search", mock.Anything, expected).Return(result, nil).Once()

	w, body := suite.serve(http.MethodGet, "/api/search?q=posto&lat=-23.55&lng=-46.63&sort=Rating", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(true, body["success"])
	suite.Equal(float64(2), body["total_results"])
	suite.Equal([]any{"openstreetmap", "serpapi"}, body["source"])
	suite.Equal(5.0, body["radius"])
	suite.Equal("posto", body["query"])
	rateLimit := body["rate_limit"].(map[string]any)
	suite.Equal(float64(1000), rateLimit["limit"])
	suite.Equal(float64(999), rateLimit["remaining"])
}

func (suite *HandlersTestSuite) TestSearch_PassesFiltersAndCacheFlag() {
	minRating := 4.0
	expected := domain.SearchQuery{
		Query:     "oficina",
		Latitude:  -23.55,
		Longitude: -46.63,
		RadiusKm:  12,
		Category:  "oficina",
		UseCache:  false,
		Filters:   domain.SearchFilters{MinRating: &minRating, OpenNow: true, Source: "serpapi"},
	}
	suite.search.On("Search", mock.Anything, expected).Return(&domain.SearchResult{Cached: false}, nil).Once()

	w, body := suite.serve(http.MethodGet,
		"/api/search?query=oficina&category=Oficina&lat=-23.55&lng=-46.63&radius=12&use_cache=false&min_rating=4&open_now=true&source=serpapi",
		nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal([]any{}, body["data"])
	suite.Equal(12.0, body["radius"])
}

func (suite *HandlersTestSuite) TestSearch_Validation() {
	testCases := []struct {
		name    string
		path    string
		message string
	}{
		{"missing coordinates", "/api/search?q=posto", "Parâmetros obrigatórios: query, lat, lng"},
		{"missing text and category", "/api/search?lat=-23.5&lng=-46.6", "Parâmetros obrigatórios: query, lat, lng"},
		{"malformed radius", "/api/search?q=posto&lat=-23.5&lng=-46.6&radius=far", "Coordenadas e raio devem ser números válidos"},
		{"radius not a number", "/api/search?q=posto&lat=-23.55&lng=-46.63&radius=NaN", "Raio deve estar entre 1 e 50 km"},
		{"infinite radius", "/api/search?q=posto&lat=-23.55&lng=-46.63&radius=Inf", "Raio deve estar entre 1 e 50 km"},
		{"latitude not a number", "/api/search?q=posto&lat=NaN&lng=-46.63", "Coordenadas inválidas"},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w, body := suite.serve(http.MethodGet, tc.path, nil, "")

			suite.assertError(w, body, http.StatusBadRequest, tc.message)
		})
	}
	suite.search.AssertNotCalled(suite.T(), "Search", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestSearch_ServiceValidationError() {
	suite.search.On("Search", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewBadRequestError("Raio deve estar entre 1 e 50 km")).Once()

	w, body := suite.serve(http.MethodGet, "/api/search?q=posto&lat=-23.5&lng=-46.6&radius=80", nil, "")

	suite.assertError(w, body, http.StatusBadRequest, "Raio deve estar entre 1 e 50 km")
}

func (suite *HandlersTestSuite) TestSearchByCategory() {
	suite.Run("default radius", func() {
		suite.search.On("SearchByCategory", mock.Anything, "hospital", -23.55, -46.63, (*float64)(nil), domain.SearchFilters{}).
			Return(&domain.SearchResult{Sources: []string{"openstreetmap"}}, nil).Once()

		w, body := suite.serve(http.MethodGet, "/api/search/category/Hospital?lat=-23.55&lng=-46.63", nil, "")

		suite.Equal(http.StatusOK, w.Code)
		suite.Equal("hospital", body["category"])
		suite.Equal(10.0, body["radius"])
	})

	suite.Run("unknown category", func() {
		suite.search.On("SearchByCategory", mock.Anything, "cinema", -23.55, -46.63, (*float64)(nil), domain.SearchFilters{}).
			Return(nil, apperrors.NewBadRequestError(`Categoria "cinema" não encontrada`)).Once()

		w, body := suite.serve(http.MethodGet, "/api/search/category/cinema?lat=-23.55&lng=-46.63", nil, "")

		suite.assertError(w, body, http.StatusBadRequest, `Categoria "cinema" não encontrada`)
	})

	suite.Run("missing coordinates", func() {
		w, body := suite.serve(http.MethodGet, "/api/search/category/gasolina", nil, "")

		suite.assertError(w, body, http.StatusBadRequest, "Parâmetros obrigatórios: lat, lng")
	})
}

func (suite *HandlersTestSuite) TestAutocomplete() {
	suite.Run("suggestions", func() {
		suggestions := []domain.Suggestion{{DisplayName: "Avenida Paulista, São Paulo", Name: "Avenida Paulista"}}
		suite.search.On("Autocomplete", mock.Anything, "paulista", 5).
			Return(suggestions, domain.Provenance{Provider: "nominatim"}).Once()

		w, body := suite.serve(http.MethodGet, "/api/search/autocomplete?q=paulista", nil, "")

		suite.Equal(http.StatusOK, w.Code)
		suite.Len(body["suggestions"], 1)
		suite.Equal("paulista", body["query"])
	})

	suite.Run("provider down", func() {
		suite.search.On("Autocomplete", mock.Anything, "rua", 3).
			Return([]domain.Suggestion(nil), domain.Provenance{Provider: "nominatim", Fallback: true}).Once()

		w, body := suite.serve(http.MethodGet, "/api/search/autocomplete?query=rua&limit=3", nil, "")

		suite.Equal(http.StatusOK, w.Code)
		suite.Equal([]any{}, body["suggestions"])
		suite.Equal("fallback", w.Header().Get("X-Data-Source"))
	})

	suite.Run("missing query", func() {
		w, body := suite.serve(http.MethodGet, "/api/search/autocomplete", nil, "")

		suite.assertError(w, body, http.StatusBadRequest, "Parâmetro obrigatório: query")
	})
}

func (suite *HandlersTestSuite) TestCategories() {
	suite.search.On("Categories").Return([]domain.Category{{Key: "gasolina", Label: "Postos de Gasolina", Priority: 1}}).Once()

	w, body := suite.serve(http.MethodGet, "/api/search/categories", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	categories := body["categories"].([]any)
	suite.Require().Len(categories, 1)
	suite.Equal("gasolina", categories[0].(map[string]any)["key"])
}

func (suite *HandlersTestSuite) TestCacheMaintenance_RequiresSession() {
	w, _ := suite.serve(http.MethodGet, "/api/search/stats", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	w, _ = suite.serve(http.MethodPost, "/api/search/cache/clear", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestCacheMaintenance() {
	token := suite.sessionToken(7)

	suite.Run("stats", func() {
		suite.search.On("CacheStats").Return(domain.CacheStats{TotalEntries: 3, ByCategory: map[string]int{"gasolina": 3}, TTLSeconds: 3600}).Once()

		w, body := suite.serve(http.MethodGet, "/api/search/stats", nil, token)

		suite.Equal(http.StatusOK, w.Code)
		suite.Equal(float64(3), body["stats"].(map[string]any)["total_entries"])
	})

	suite.Run("clear category", func() {
		suite.search.On("ClearCache", "gasolina").Return(3).Once()

		w, body := suite.serve(http.MethodPost, "/api/search/cache/clear", map[string]string{"category": "Gasolina"}, token)

		suite.Equal(http.StatusOK, w.Code)
		suite.Equal(float64(3), body["cleared"])
	})

	suite.Run("clear expired without body", func() {
		suite.search.On("ClearCache", "").Return(1).Once()

		w, body := suite.serve(http.MethodPost, "/api/search/cache/clear", nil, token)

		suite.Equal(http.StatusOK, w.Code)
		suite.Equal(float64(1), body["cleared"])
	})
}
