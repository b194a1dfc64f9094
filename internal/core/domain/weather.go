package domain

import "time"

// WeatherSnapshot is the normalized answer of any weather provider.
type WeatherSnapshot struct {
	Current         CurrentConditions `json:"current"`
	Forecast        []DailyForecast   `json:"forecast"`
	RainProbability int               `json:"rain_probability"`
	Timestamp       time.Time         `json:"timestamp"`
}

// CurrentConditions keeps the nested layout the web client already consumes.
type CurrentConditions struct {
	Main    MainReadings     `json:"main"`
	Weather []WeatherSummary `json:"weather"`
	Wind    Wind             `json:"wind"`
	Clouds  Clouds           `json:"clouds"`
}

type MainReadings struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

type WeatherSummary struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type Wind struct {
	Speed float64 `json:"speed"`
}

type Clouds struct {
	All float64 `json:"all"`
}

// DailyForecast summarises one calendar day.
type DailyForecast struct {
	Date            string  `json:"date"`
	TempMin         float64 `json:"temp_min"`
	TempMax         float64 `json:"temp_max"`
	Description     string  `json:"description"`
	Humidity        float64 `json:"humidity"`
	WindSpeed       float64 `json:"wind_speed"`
	RainProbability int     `json:"rain_probability"`
}

// ClampProbability bounds a percentage to [0,100].
func ClampProbability(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
