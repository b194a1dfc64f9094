package dto

import "github.com/SscSPs/rotalivre/internal/core/domain"

// CreateReportRequest is the body of POST /api/reports.
type CreateReportRequest struct {
	Latitude    *float64 `json:"latitude" binding:"required,latitude"`
	Longitude   *float64 `json:"longitude" binding:"required,longitude"`
	WeatherType string   `json:"weather_type" binding:"required,weathertype"`
	Intensity   *int     `json:"intensity" binding:"omitempty,min=1,max=3"`
	Description string   `json:"description" binding:"max=500"`
}

// ListReportsParams are the query parameters of GET /api/reports.
type ListReportsParams struct {
	Lat    string `form:"lat"`
	Lon    string `form:"lon"`
	Radius string `form:"radius"`
}

// ListReportsResponse wraps nearby reports.
type ListReportsResponse struct {
	Success bool                   `json:"success"`
	Reports []domain.WeatherReport `json:"reports"`
}

// CreateReportResponse acknowledges a submitted report.
type CreateReportResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
