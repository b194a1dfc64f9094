package dto

import "github.com/SscSPs/rotalivre/internal/core/domain"

// SearchParams are the query parameters of the place search routes.
// Query may also be sent as q.
type SearchParams struct {
	Query     string   `form:"query"`
	Q         string   `form:"q"`
	Lat       *float64 `form:"lat" binding:"required"`
	Lng       *float64 `form:"lng" binding:"required"`
	Radius    *float64 `form:"radius"`
	Category  string   `form:"category"`
	UseCache  *bool    `form:"use_cache"`
	MinRating *float64 `form:"min_rating"`
	OpenNow   bool     `form:"open_now"`
	Source    string   `form:"source"`
	SortBy    string   `form:"sort"`
}

// AutocompleteParams are the query parameters of GET /api/search/autocomplete.
type AutocompleteParams struct {
	Query string `form:"query"`
	Q     string `form:"q"`
	Limit int    `form:"limit,default=5"`
}

// Text returns the search text from either parameter name.
func (p SearchParams) Text() string {
	if p.Query != "" {
		return p.Query
	}
	return p.Q
}

// Text returns the partial query from either parameter name.
func (p AutocompleteParams) Text() string {
	if p.Query != "" {
		return p.Query
	}
	return p.Q
}

// RateLimitInfo mirrors the limiter state for the calling client.
type RateLimitInfo struct {
	Limit     int64 `json:"limit"`
	Remaining int64 `json:"remaining"`
	Reset     int64 `json:"reset"`
}

// SearchResponse is the body of the place search routes.
type SearchResponse struct {
	Success      bool               `json:"success"`
	Data         []domain.Place     `json:"data"`
	Cached       bool               `json:"cached"`
	Source       []string           `json:"source"`
	TotalResults int                `json:"total_results"`
	Query        string             `json:"query"`
	Category     string             `json:"category,omitempty"`
	Coordinates  domain.Coordinates `json:"coordinates"`
	Radius       float64            `json:"radius"`
	RateLimit    *RateLimitInfo     `json:"rate_limit,omitempty"`
}

// AutocompleteResponse is the body of GET /api/search/autocomplete.
type AutocompleteResponse struct {
	Success     bool                `json:"success"`
	Suggestions []domain.Suggestion `json:"suggestions"`
	Query       string              `json:"query"`
}

// CategoriesResponse lists the preset categories.
type CategoriesResponse struct {
	Success    bool              `json:"success"`
	Categories []domain.Category `json:"categories"`
}

// CacheStatsResponse wraps search cache statistics.
type CacheStatsResponse struct {
	Success bool              `json:"success"`
	Stats   domain.CacheStats `json:"stats"`
}

// ClearCacheRequest optionally restricts clearing to one category.
type ClearCacheRequest struct {
	Category string `json:"category"`
}

// ClearCacheResponse reports how many entries were dropped.
type ClearCacheResponse struct {
	Success bool `json:"success"`
	Cleared int  `json:"cleared"`
}
