package handlers_test

import (
	"net/http"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/core/services"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestReverseGeocode() {
	loc := &domain.Location{
		PlaceID:     "123",
		DisplayName: "Avenida Paulista, 1000, São Paulo",
		Address:     domain.Address{Road: "Avenida Paulista", HouseNumber: "1000", City: "São Paulo", State: "São Paulo"},
	}
	suite.geocode.On("Reverse", mock.Anything, -23.56, -46.65).Return(loc, domain.Provenance{Provider: "locationiq"}, nil).Once()

	w, body := suite.serve(http.MethodGet, "/api/geocode/reverse?lat=-23.56&lon=-46.65", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Avenida Paulista, 1000 - São Paulo", body["formatted"])
	suite.Equal("São Paulo, São Paulo", body["city_state"])
	suite.Equal("123", body["data"].(map[string]any)["place_id"])
}

func (suite *HandlersTestSuite) TestReverseGeocode_RateLimitedMirrors429() {
	fallbackLocation := services.MockLocation()
	suite.geocode.On("Reverse", mock.Anything, 1.0, 2.0).
		Return(&fallbackLocation, domain.Provenance{Provider: "locationiq", Fallback: true, RateLimited: true}, nil).Once()

	w, body := suite.serve(http.MethodGet, "/api/geocode/reverse?lat=1&lon=2", nil, "")

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.Equal(true, body["success"])
	suite.Equal("mock_place_123", body["data"].(map[string]any)["place_id"])
	suite.Equal("fallback", w.Header().Get("X-Data-Source"))
}

func (suite *HandlersTestSuite) TestReverseGeocode_InvalidCoordinates() {
	suite.geocode.On("Reverse", mock.Anything, 0.0, 200.0).
		Return(nil, domain.Provenance{}, apperrors.NewBadRequestError("Coordenadas inválidas")).Once()

	w, body := suite.serve(http.MethodGet, "/api/geocode/reverse?lat=0&lon=200", nil, "")

	suite.assertError(w, body, http.StatusBadRequest, "Coordenadas inválidas")
}

func (suite *HandlersTestSuite) TestGeocodeSearch() {
	suite.Run("with origin", func() {
		d := 0.8
		origin := &domain.Coordinates{Lat: -23.55, Lng: -46.63}
		suite.geocode.On("Search", mock.Anything, "padaria", 3, origin).
			Return([]domain.Location{{PlaceID: "a", Distance: &d}}, domain.Provenance{Provider: "locationiq"}, nil).Once()

		w, body := suite.serve(http.MethodGet, "/api/geocode/search?q=padaria&limit=3&lat=-23.55&lon=-46.63", nil, "")

		suite.Equal(http.StatusOK, w.Code)
		suite.Equal("padaria", body["query"])
		data := body["data"].([]any)
		suite.Require().Len(data, 1)
		suite.Equal(0.8, data[0].(map[string]any)["distance"])
	})

	suite.Run("origin needs both coordinates", func() {
		suite.geocode.On("Search", mock.Anything, "padaria", 5, (*domain.Coordinates)(nil)).
			Return([]domain.Location{}, domain.Provenance{Provider: "locationiq"}, nil).Once()

		w, _ := suite.serve(http.MethodGet, "/api/geocode/search?q=padaria&lat=-23.55", nil, "")

		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("missing q", func() {
		w, body := suite.serve(http.MethodGet, "/api/geocode/search", nil, "")

		suite.assertError(w, body, http.StatusBadRequest, "Parâmetro q é obrigatório")
	})
}
