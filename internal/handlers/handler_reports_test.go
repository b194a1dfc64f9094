package handlers_test

import (
	"net/http"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/dto"
	"github.com/stretchr/testify/mock"
)

func ptr[T any](v T) *T { return &v }

func (suite *HandlersTestSuite) TestListReports_LenientParameters() {
	reports := []domain.WeatherReport{{ID: 1, WeatherType: domain.WeatherRain, Intensity: 2, Distance: 0.5}}
	suite.reports.On("NearbyReports", mock.Anything, 0.0, -46.6, 10.0).
		Return(reports, domain.Provenance{Provider: "store"}).Once()

	w, body := suite.serve(http.MethodGet, "/api/reports?lat=abc&lon=-46.6", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(true, body["success"])
	suite.Len(body["reports"], 1)
	suite.Equal("live", w.Header().Get("X-Data-Source"))
}

func (suite *HandlersTestSuite) TestListReports_NonFiniteParametersUseDefaults() {
	suite.reports.On("NearbyReports", mock.Anything, 0.0, -46.63, 10.0).
		Return([]domain.WeatherReport{}, domain.Provenance{Provider: "store", Fallback: true}).Once()

	w, body := suite.serve(http.MethodGet, "/api/reports?lat=NaN&lon=-46.63&radius=Inf", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(true, body["success"])
}

func (suite *HandlersTestSuite) TestListReports_FallbackStillSucceeds() {
	suite.reports.On("NearbyReports", mock.Anything, -23.55, -46.63, 3.0).
		Return([]domain.WeatherReport(nil), domain.Provenance{Provider: "store", Fallback: true}).Once()

	w, body := suite.serve(http.MethodGet, "/api/reports?lat=-23.55&lon=-46.63&radius=3", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal([]any{}, body["reports"])
	suite.Equal("fallback", w.Header().Get("X-Data-Source"))
}

func (suite *HandlersTestSuite) TestCreateReport() {
	req := dto.CreateReportRequest{
		Latitude:    ptr(-23.55),
		Longitude:   ptr(-46.63),
		WeatherType: "rain",
		Intensity:   ptr(2),
		Description: "Chuva forte na marginal",
	}

	suite.Run("stored", func() {
		suite.reports.On("SubmitReport", mock.Anything, req).Return(&domain.ReportSubmission{ID: 42}, nil).Once()

		w, body := suite.serve(http.MethodPost, "/api/reports", req, "")

		suite.Equal(http.StatusOK, w.Code)
		suite.Equal(float64(42), body["id"])
		suite.Equal("Report submitted successfully", body["message"])
	})

	suite.Run("demo mode", func() {
		suite.reports.On("SubmitReport", mock.Anything, req).Return(&domain.ReportSubmission{ID: 512, Demo: true}, nil).Once()

		w, body := suite.serve(http.MethodPost, "/api/reports", req, "")

		suite.Equal(http.StatusOK, w.Code)
		suite.Equal(true, body["success"])
		suite.Equal("Report received (demo mode)", body["message"])
	})
}

func (suite *HandlersTestSuite) TestCreateReport_Invalid() {
	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{"missing weather type", `{"latitude":-23.5,"longitude":-46.6}`, "Missing required fields"},
		{"missing latitude", `{"longitude":-46.6,"weather_type":"rain"}`, "Missing required fields"},
		{"unknown weather type", `{"latitude":-23.5,"longitude":-46.6,"weather_type":"snow"}`, "Invalid weather_type"},
		{"intensity out of range", `{"latitude":-23.5,"longitude":-46.6,"weather_type":"rain","intensity":5}`, "Intensity must be between 1 and 3"},
		{"latitude out of range", `{"latitude":123,"longitude":-46.6,"weather_type":"rain"}`, "Invalid coordinates"},
		{"malformed json", `{"latitude":`, "Missing required fields"},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w, body := suite.serve(http.MethodPost, "/api/reports", tc.body, "")

			suite.assertError(w, body, http.StatusBadRequest, tc.message)
		})
	}
	suite.reports.AssertNotCalled(suite.T(), "SubmitReport", mock.Anything, mock.Anything)
}
