package domain

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is one normalized search result, whatever provider produced it.
type Place struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	Distance    float64     `json:"distance"`
	Phone       string      `json:"phone,omitempty"`
	Website     string      `json:"website,omitempty"`
	Rating      *float64    `json:"rating,omitempty"`
	Reviews     *int        `json:"reviews,omitempty"`
	Price       string      `json:"price,omitempty"`
	OpenState   string      `json:"open_state,omitempty"`
	Hours       string      `json:"hours,omitempty"`
	Type        string      `json:"type,omitempty"`
	Source      string      `json:"source"`
	Category    string      `json:"category,omitempty"`
}

const (
	PlaceSourceOSM     = "openstreetmap"
	PlaceSourceSerpAPI = "serpapi"
	PlaceSourceMock    = "mock"
)

// Category is a preset place search for riders.
type Category struct {
	Key           string   `json:"key"`
	Label         string   `json:"label"`
	Keywords      []string `json:"keywords"`
	RadiusKm      float64  `json:"radius"`
	Priority      int      `json:"priority"`
	OSMAmenities  []string `json:"-"`
	DisplayedIcon string   `json:"icon"`
}

// SearchQuery is a validated place search.
type SearchQuery struct {
	Query     string
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Category  string
	UseCache  bool
	Filters   SearchFilters
}

// SearchFilters narrows and orders a result set after retrieval.
type SearchFilters struct {
	MinRating *float64
	OpenNow   bool
	Source    string
	SortBy    string
}

const (
	SortByDistance = "distance"
	SortByRating   = "rating"
	SortByReviews  = "reviews"
	SortByName     = "name"
)

// SearchResult is the outcome of a place search.
type SearchResult struct {
	Places   []Place
	Cached   bool
	Sources  []string
	Fallback bool
}

// Suggestion is an autocomplete entry.
type Suggestion struct {
	DisplayName string      `json:"display_name"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Type        string      `json:"type"`
	Importance  float64     `json:"importance"`
}

// CacheStats describes the search cache.
type CacheStats struct {
	TotalEntries int            `json:"total_entries"`
	ByCategory   map[string]int `json:"by_category"`
	TTLSeconds   int            `json:"ttl_seconds"`
}
