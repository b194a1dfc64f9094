// Package openweather implements the weather port on top of OpenWeatherMap 2.5.
package openweather

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/SscSPs/rotalivre/internal/adapters/providers/providerhttp"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/middleware"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
	"golang.org/x/sync/errgroup"
)

const (
	providerName = "openweather"

	forecastDays = 5
	// lookaheadSlots is how many 3-hour forecast slots feed the rain estimate.
	lookaheadSlots = 3
)

// Client talks to the OpenWeatherMap current and forecast endpoints.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client. An empty apiKey leaves it unconfigured.
func NewClient(apiKey, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = providerhttp.NewHTTPClient(0)
	}
	return &Client{apiKey: apiKey, baseURL: baseURL, httpClient: httpClient}
}

func (c *Client) Name() string { return providerName }

func (c *Client) Configured() bool { return c.apiKey != "" }

type condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type currentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []condition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Rain map[string]float64 `json:"rain,omitempty"`
}

type forecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []condition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Pop  float64            `json:"pop"`
	Rain map[string]float64 `json:"rain,omitempty"`
}

type forecastResponse struct {
	List []forecastItem `json:"list"`
	City struct {
		Timezone int `json:"timezone"`
	} `json:"city"`
}

// FetchWeather requests /weather and /forecast in parallel. The forecast is
// best-effort; without it the rain estimate uses current conditions only.
func (c *Client) FetchWeather(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error) {
	var (
		current     currentResponse
		forecast    forecastResponse
		forecastErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return providerhttp.GetJSON(gctx, c.httpClient, c.endpoint("/weather", lat, lon), providerName, &current)
	})
	g.Go(func() error {
		forecastErr = providerhttp.GetJSON(gctx, c.httpClient, c.endpoint("/forecast", lat, lon), providerName, &forecast)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if forecastErr != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("OpenWeather forecast unavailable", slog.String("error", forecastErr.Error()))
		forecast = forecastResponse{}
	}

	summaries := make([]domain.WeatherSummary, 0, len(current.Weather))
	for _, w := range current.Weather {
		summaries = append(summaries, domain.WeatherSummary{Main: w.Main, Description: w.Description})
	}

	return &domain.WeatherSnapshot{
		Current: domain.CurrentConditions{
			Main:    domain.MainReadings{Temp: current.Main.Temp, Humidity: current.Main.Humidity},
			Weather: summaries,
			Wind:    domain.Wind{Speed: current.Wind.Speed},
			Clouds:  domain.Clouds{All: current.Clouds.All},
		},
		Forecast:        groupDaily(forecast),
		RainProbability: rainProbability(current, forecast.List),
	}, nil
}

func (c *Client) endpoint(path string, lat, lon float64) string {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	q.Set("lang", "pt_br")
	return c.baseURL + path + "?" + q.Encode()
}

// rainProbability estimates the chance of rain from current conditions and
// the next few forecast slots. OpenWeather 2.5 exposes no direct figure.
func rainProbability(current currentResponse, upcoming []forecastItem) int {
	p := 0
	switch {
	case len(current.Rain) > 0:
		p = 80
	case len(current.Weather) > 0 && isWet(current.Weather[0].Main, true):
		p = 70
	case current.Clouds.All > 80:
		p = 30
	}

	if len(upcoming) > lookaheadSlots {
		upcoming = upcoming[:lookaheadSlots]
	}
	for _, item := range upcoming {
		switch {
		case len(item.Rain) > 0:
			p = max(p, 60)
		case len(item.Weather) > 0 && isWet(item.Weather[0].Main, false):
			p = max(p, 50)
		}
	}
	return domain.ClampProbability(p)
}

func isWet(main string, includeStorms bool) bool {
	switch main {
	case "Rain", "Drizzle":
		return true
	case "Thunderstorm":
		return includeStorms
	}
	return false
}

// groupDaily folds 3-hour slots into calendar days in the location's timezone.
func groupDaily(f forecastResponse) []domain.DailyForecast {
	zone := time.FixedZone("local", f.City.Timezone)

	var (
		order []string
		byDay = map[string][]forecastItem{}
	)
	for _, item := range f.List {
		day := time.Unix(item.Dt, 0).In(zone).Format(time.DateOnly)
		if _, seen := byDay[day]; !seen {
			order = append(order, day)
		}
		byDay[day] = append(byDay[day], item)
	}
	if len(order) > forecastDays {
		order = order[:forecastDays]
	}

	out := make([]domain.DailyForecast, 0, len(order))
	for _, day := range order {
		items := byDay[day]
		minT, maxT := math.Inf(1), math.Inf(-1)
		var humidity, wind float64
		for _, it := range items {
			minT = math.Min(minT, it.Main.Temp)
			maxT = math.Max(maxT, it.Main.Temp)
			humidity += it.Main.Humidity
			wind += it.Wind.Speed
		}
		n := float64(len(items))
		entry := domain.DailyForecast{
			Date:            day,
			TempMin:         math.Round(minT),
			TempMax:         math.Round(maxT),
			Humidity:        math.Round(humidity / n),
			WindSpeed:       geo.Round(wind/n, 1),
			RainProbability: domain.ClampProbability(int(math.Round(items[0].Pop * 100))),
		}
		if len(items[0].Weather) > 0 {
			entry.Description = items[0].Weather[0].Description
		}
		out = append(out, entry)
	}
	return out
}
