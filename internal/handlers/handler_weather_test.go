package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestGetWeather() {
	snapshot := &domain.WeatherSnapshot{
		Current: domain.CurrentConditions{
			Main:    domain.MainReadings{Temp: 24.5, Humidity: 70},
			Weather: []domain.WeatherSummary{{Main: "Rain", Description: "chuva leve"}},
		},
		Forecast:        []domain.DailyForecast{{Date: "2026-10-15", RainProbability: 80}},
		RainProbability: 80,
		Timestamp:       time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
	}
	suite.weather.On("GetWeather", mock.Anything, -23.55, -46.63).
		Return(snapshot, domain.Provenance{Provider: "openmeteo"}).Once()

	w, body := suite.serve(http.MethodGet, "/api/weather?lat=-23.55&lon=-46.63", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(true, body["success"])
	suite.Equal(float64(80), body["rain_probability"])
	suite.Len(body["forecast"], 1)
	suite.Equal(24.5, body["current"].(map[string]any)["main"].(map[string]any)["temp"])
	suite.Equal("openmeteo", w.Header().Get("X-Data-Provider"))
}

func (suite *HandlersTestSuite) TestGetWeather_RequiresCoordinates() {
	for _, path := range []string{"/api/weather", "/api/weather?lat=-23.5", "/api/weather?lat=x&lon=y"} {
		w, body := suite.serve(http.MethodGet, path, nil, "")

		suite.assertError(w, body, http.StatusBadRequest, "Latitude and longitude required")
	}
}

func (suite *HandlersTestSuite) TestMaps() {
	rating := 4.5
	result := &domain.MapsResult{
		Places: []domain.Place{
			{Name: "Posto Shell", Type: "fuel", Distance: 0.42, Rating: &rating},
			{Name: "Padaria", Type: "bakery", Distance: 1.2},
		},
		Query:        "posto",
		Latitude:     -23.55,
		Longitude:    -46.63,
		RadiusMeters: 5000,
		Provenance:   domain.Provenance{Provider: "OpenStreetMap Overpass API"},
	}
	suite.places.On("FindNearby", mock.Anything, -23.55, -46.63, "posto").Return(result).Once()

	w, body := suite.serve(http.MethodGet, "/api/maps?lat=-23.55&lon=-46.63&query=%20posto%20", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	places := body["places"].([]any)
	suite.Require().Len(places, 2)
	first := places[0].(map[string]any)
	suite.Equal(true, first["motorcycle_friendly"])
	suite.Equal(false, places[1].(map[string]any)["motorcycle_friendly"])
	suite.Equal("5000m", body["search_parameters"].(map[string]any)["radius"])
	suite.Equal("OpenStreetMap Overpass API", body["search_metadata"].(map[string]any)["provider"])
}

func (suite *HandlersTestSuite) TestMaps_RequiresCoordinates() {
	w, body := suite.serve(http.MethodGet, "/api/maps?lon=-46.6", nil, "")

	suite.assertError(w, body, http.StatusBadRequest, "Latitude and longitude required")
}
