package domain

// Provenance says where a provider-backed payload came from.
type Provenance struct {
	Provider    string `json:"provider"`
	Fallback    bool   `json:"fallback"`
	RateLimited bool   `json:"-"`
}

// ReportSubmission is the receipt for a submitted report. Demo is set when the
// store was unavailable and nothing was persisted.
type ReportSubmission struct {
	ID   int64
	Demo bool
}

// MapsResult is the answer of the nearby-places lookup behind the map view.
type MapsResult struct {
	Places       []Place
	Query        string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Provenance   Provenance
}
