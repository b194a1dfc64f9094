// Package openmeteo implements the weather port on top of the keyless Open-Meteo API.
package openmeteo

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/rotalivre/internal/adapters/providers/providerhttp"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/middleware"
	"golang.org/x/sync/errgroup"
)

const (
	providerName = "openmeteo"

	// rainWindowHours is how many hourly slots feed rain_probability.
	rainWindowHours = 6
	forecastDays    = 5
)

// Client talks to the Open-Meteo forecast endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client. A nil httpClient gets the default timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = providerhttp.NewHTTPClient(0)
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

func (c *Client) Name() string { return providerName }

// Configured is always true: Open-Meteo needs no key.
func (c *Client) Configured() bool { return true }

type currentResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		CloudCover  float64 `json:"cloud_cover"`
	} `json:"current"`
	Hourly struct {
		PrecipitationProbability []*float64 `json:"precipitation_probability"`
	} `json:"hourly"`
}

type dailyResponse struct {
	Daily struct {
		Time                     []string   `json:"time"`
		WeatherCode              []int      `json:"weather_code"`
		TemperatureMax           []float64  `json:"temperature_2m_max"`
		TemperatureMin           []float64  `json:"temperature_2m_min"`
		PrecipitationProbability []*float64 `json:"precipitation_probability_max"`
		WindSpeedMax             []float64  `json:"wind_speed_10m_max"`
		HumidityMean             []float64  `json:"relative_humidity_2m_mean"`
	} `json:"daily"`
}

// FetchWeather requests current conditions and the daily forecast in parallel.
// The forecast is best-effort: when only it fails the snapshot carries no forecast.
func (c *Client) FetchWeather(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error) {
	var (
		current     currentResponse
		daily       dailyResponse
		forecastErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return providerhttp.GetJSON(gctx, c.httpClient, c.currentURL(lat, lon), providerName, &current)
	})
	g.Go(func() error {
		forecastErr = providerhttp.GetJSON(gctx, c.httpClient, c.dailyURL(lat, lon), providerName, &daily)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if forecastErr != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Open-Meteo forecast unavailable", slog.String("error", forecastErr.Error()))
	}

	summary := ConvertWeatherCode(current.Current.WeatherCode)
	snapshot := &domain.WeatherSnapshot{
		Current: domain.CurrentConditions{
			Main:    domain.MainReadings{Temp: current.Current.Temperature, Humidity: current.Current.Humidity},
			Weather: []domain.WeatherSummary{summary},
			Wind:    domain.Wind{Speed: current.Current.WindSpeed},
			Clouds:  domain.Clouds{All: current.Current.CloudCover},
		},
		RainProbability: domain.ClampProbability(maxProbability(current.Hourly.PrecipitationProbability, rainWindowHours)),
		Forecast:        toForecast(daily),
	}
	return snapshot, nil
}

func (c *Client) currentURL(lat, lon float64) string {
	q := baseQuery(lat, lon)
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,cloud_cover")
	q.Set("hourly", "precipitation_probability")
	q.Set("forecast_hours", strconv.Itoa(rainWindowHours))
	return c.baseURL + "/forecast?" + q.Encode()
}

func (c *Client) dailyURL(lat, lon float64) string {
	q := baseQuery(lat, lon)
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max,wind_speed_10m_max,relative_humidity_2m_mean")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	return c.baseURL + "/forecast?" + q.Encode()
}

func baseQuery(lat, lon float64) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("wind_speed_unit", "ms")
	q.Set("timezone", "auto")
	return q
}

// ConvertWeatherCode maps a WMO weather code onto the condition names the web client knows.
func ConvertWeatherCode(code int) domain.WeatherSummary {
	switch {
	case code <= 3:
		return domain.WeatherSummary{Main: "Clear", Description: "céu limpo"}
	case code <= 48:
		return domain.WeatherSummary{Main: "Clouds", Description: "nuvens"}
	case code <= 67:
		return domain.WeatherSummary{Main: "Rain", Description: "chuva"}
	case code <= 77:
		return domain.WeatherSummary{Main: "Snow", Description: "neve"}
	case code <= 82:
		return domain.WeatherSummary{Main: "Rain", Description: "chuva forte"}
	case code <= 99:
		return domain.WeatherSummary{Main: "Thunderstorm", Description: "tempestade"}
	default:
		return domain.WeatherSummary{Main: "Clear", Description: "céu limpo"}
	}
}

// maxProbability returns the highest non-null value among the first n entries, or 0.
func maxProbability(values []*float64, n int) int {
	if len(values) > n {
		values = values[:n]
	}
	best := 0.0
	for _, v := range values {
		if v != nil && *v > best {
			best = *v
		}
	}
	return int(best)
}

func toForecast(r dailyResponse) []domain.DailyForecast {
	d := r.Daily
	out := make([]domain.DailyForecast, 0, len(d.Time))
	for i, date := range d.Time {
		day := domain.DailyForecast{Date: date}
		if i < len(d.WeatherCode) {
			day.Description = ConvertWeatherCode(d.WeatherCode[i]).Description
		}
		if i < len(d.TemperatureMin) {
			day.TempMin = d.TemperatureMin[i]
		}
		if i < len(d.TemperatureMax) {
			day.TempMax = d.TemperatureMax[i]
		}
		if i < len(d.HumidityMean) {
			day.Humidity = d.HumidityMean[i]
		}
		if i < len(d.WindSpeedMax) {
			day.WindSpeed = d.WindSpeedMax[i]
		}
		if i < len(d.PrecipitationProbability) && d.PrecipitationProbability[i] != nil {
			day.RainProbability = domain.ClampProbability(int(*d.PrecipitationProbability[i]))
		}
		out = append(out, day)
	}
	return out
}
