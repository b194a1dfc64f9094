package dto

import "github.com/SscSPs/rotalivre/internal/core/domain"

// GeocodeSearchParams are the query parameters of GET /api/geocode/search.
type GeocodeSearchParams struct {
	Query string   `form:"q" binding:"required"`
	Limit int      `form:"limit,default=5"`
	Lat   *float64 `form:"lat"`
	Lon   *float64 `form:"lon"`
}

// ReverseGeocodeResponse is the body of GET /api/geocode/reverse.
type ReverseGeocodeResponse struct {
	Success   bool            `json:"success"`
	Data      domain.Location `json:"data"`
	Formatted string          `json:"formatted"`
	CityState string          `json:"city_state"`
}

// GeocodeSearchResponse is the body of GET /api/geocode/search.
type GeocodeSearchResponse struct {
	Success bool              `json:"success"`
	Data    []domain.Location `json:"data"`
	Query   string            `json:"query"`
}
