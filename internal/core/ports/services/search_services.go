package services

import (
	"context"

	"github.com/SscSPs/rotalivre/internal/core/domain"
)

// SearchReaderSvc defines place search operations
type SearchReaderSvc interface {
	// Search validates the query and aggregates every available provider.
	Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error)

	// SearchByCategory runs a preset search. Unknown categories yield a validation error.
	// A nil radius uses the category default.
	SearchByCategory(ctx context.Context, category string, lat, lng float64, radiusKm *float64, filters domain.SearchFilters) (*domain.SearchResult, error)

	// Autocomplete suggests places for a partial query; limit is clamped to [1,20].
	Autocomplete(ctx context.Context, query string, limit int) ([]domain.Suggestion, domain.Provenance)

	// Categories lists the presets ordered by priority.
	Categories() []domain.Category
}

// SearchCacheSvc defines maintenance of the search result cache
type SearchCacheSvc interface {
	CacheStats() domain.CacheStats

	// ClearCache drops every entry of category, or only expired entries when
	// category is empty. It returns the number of entries removed.
	ClearCache(category string) int
}

// SearchSvcFacade combines all search-related service interfaces
type SearchSvcFacade interface {
	SearchReaderSvc
	SearchCacheSvc
}
