package domain

// Address is the structured part of a geocoding result.
type Address struct {
	HouseNumber string `json:"house_number,omitempty"`
	Road        string `json:"road,omitempty"`
	Suburb      string `json:"suburb,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// Location is a geocoding result.
type Location struct {
	PlaceID     string   `json:"place_id"`
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lon"`
	DisplayName string   `json:"display_name"`
	Address     Address  `json:"address"`
	BoundingBox []string `json:"boundingbox,omitempty"`
	Distance    *float64 `json:"distance,omitempty"`
}

// CityState returns "City, State" using whichever parts are known.
func (l Location) CityState() string {
	switch {
	case l.Address.City != "" && l.Address.State != "":
		return l.Address.City + ", " + l.Address.State
	case l.Address.City != "":
		return l.Address.City
	default:
		return l.Address.State
	}
}

// ShortAddress formats road, number and city for display.
func (l Location) ShortAddress() string {
	out := l.Address.Road
	if l.Address.HouseNumber != "" && out != "" {
		out += ", " + l.Address.HouseNumber
	}
	if city := l.Address.City; city != "" {
		if out != "" {
			out += " - "
		}
		out += city
	}
	if out == "" {
		return l.DisplayName
	}
	return out
}
