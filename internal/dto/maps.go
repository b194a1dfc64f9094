package dto

import (
	"fmt"
	"strings"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
)

// MapsParams are the query parameters of GET /api/maps.
type MapsParams struct {
	Lat   *float64 `form:"lat" binding:"required"`
	Lon   *float64 `form:"lon" binding:"required"`
	Query string   `form:"query"`
}

// MapPlace is a place pinned on the map view.
type MapPlace struct {
	Name               string             `json:"name"`
	Address            string             `json:"address"`
	Rating             *float64           `json:"rating"`
	Type               string             `json:"type"`
	Position           domain.Coordinates `json:"position"`
	Distance           string             `json:"distance"`
	Phone              string             `json:"phone,omitempty"`
	Hours              string             `json:"hours,omitempty"`
	MotorcycleFriendly bool               `json:"motorcycle_friendly"`
}

type MapsSearchMetadata struct {
	Provider string `json:"provider"`
}

type MapsSearchParameters struct {
	Query  string  `json:"query"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius string  `json:"radius"`
}

// MapsResponse is the body of GET /api/maps.
type MapsResponse struct {
	Success          bool                 `json:"success"`
	Places           []MapPlace           `json:"places"`
	SearchMetadata   MapsSearchMetadata   `json:"search_metadata"`
	SearchParameters MapsSearchParameters `json:"search_parameters"`
}

func ToMapsResponse(r *domain.MapsResult) MapsResponse {
	places := make([]MapPlace, len(r.Places))
	for i, p := range r.Places {
		places[i] = MapPlace{
			Name:               p.Name,
			Address:            p.Address,
			Rating:             p.Rating,
			Type:               p.Type,
			Position:           p.Coordinates,
			Distance:           geo.FormatKm(p.Distance),
			Phone:              p.Phone,
			Hours:              p.Hours,
			MotorcycleFriendly: isMotorcycleFriendly(p),
		}
	}
	return MapsResponse{
		Success:        true,
		Places:         places,
		SearchMetadata: MapsSearchMetadata{Provider: r.Provenance.Provider},
		SearchParameters: MapsSearchParameters{
			Query:  r.Query,
			Lat:    r.Latitude,
			Lon:    r.Longitude,
			Radius: fmt.Sprintf("%dm", r.RadiusMeters),
		},
	}
}

// Fuel stations and motorcycle workshops are the stops riders look for first.
func isMotorcycleFriendly(p domain.Place) bool {
	switch p.Type {
	case "fuel", "motorcycle_repair", "motorcycle", "tyres":
		return true
	}
	name := strings.ToLower(p.Name)
	return strings.Contains(name, "moto") || strings.Contains(name, "posto") || strings.Contains(name, "borracharia")
}
