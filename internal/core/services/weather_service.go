package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/core/ports/providers"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/observability"
	"github.com/SscSPs/rotalivre/internal/platform/fallback"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
	"github.com/jonboulle/clockwork"
	"github.com/patrickmn/go-cache"
)

var mockForecastDescriptions = []string{"céu limpo", "parcialmente nublado", "nublado", "chuva leve"}

type weatherService struct {
	BaseService
	provider providers.WeatherProvider
	policy   *fallback.Policy
	cache    *cache.Cache
	metrics  *observability.Metrics
	clock    clockwork.Clock
}

// NewWeatherService wraps provider with caching and fallback. Live answers are
// cached for cacheTTL per ~100 m cell; fallback answers are never cached.
func NewWeatherService(provider providers.WeatherProvider, policy *fallback.Policy, cacheTTL time.Duration, metrics *observability.Metrics, clock clockwork.Clock) portssvc.WeatherSvcFacade {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &weatherService{
		provider: provider,
		policy:   policy,
		cache:    cache.New(cacheTTL, 2*cacheTTL),
		metrics:  metrics,
		clock:    clock,
	}
}

func (s *weatherService) GetWeather(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, domain.Provenance) {
	name := s.provider.Name()
	key := fmt.Sprintf("%s:%.3f,%.3f", name, lat, lon)

	if cached, ok := s.cache.Get(key); ok {
		s.countCache("hit")
		snap := *cached.(*domain.WeatherSnapshot)
		snap.Timestamp = s.clock.Now().UTC()
		return &snap, domain.Provenance{Provider: name}
	}
	s.countCache("miss")

	var primary func(context.Context) (*domain.WeatherSnapshot, error)
	if s.provider.Configured() {
		primary = func(ctx context.Context) (*domain.WeatherSnapshot, error) {
			return s.provider.FetchWeather(ctx, lat, lon)
		}
	}

	now := s.clock.Now().UTC()
	res := fallback.Do(ctx, s.policy, name, primary, func() *domain.WeatherSnapshot {
		return MockWeather(now)
	})

	snap := res.Value
	snap.Timestamp = now
	snap.RainProbability = domain.ClampProbability(snap.RainProbability)
	if !res.Fallback() {
		stored := *snap
		s.cache.SetDefault(key, &stored)
	}
	return snap, res.Provenance(name)
}

func (s *weatherService) countCache(result string) {
	if s.metrics != nil {
		s.metrics.WeatherCache.WithLabelValues(result).Inc()
	}
}

// MockWeather produces plausible, jittered conditions so a demo never shows
// the exact same numbers twice.
func MockWeather(now time.Time) *domain.WeatherSnapshot {
	summary := domain.WeatherSummary{Main: "Clear", Description: "céu limpo"}
	if rand.Float64() > 0.5 {
		summary = domain.WeatherSummary{Main: "Clouds", Description: "nuvens dispersas"}
	}

	forecast := make([]domain.DailyForecast, 0, 5)
	for i := 1; i <= 5; i++ {
		forecast = append(forecast, domain.DailyForecast{
			Date:            now.AddDate(0, 0, i).Format(time.DateOnly),
			TempMin:         float64(18 + rand.IntN(8)),
			TempMax:         float64(25 + rand.IntN(8)),
			Description:     mockForecastDescriptions[rand.IntN(len(mockForecastDescriptions))],
			Humidity:        float64(60 + rand.IntN(30)),
			WindSpeed:       float64(2 + rand.IntN(6)),
			RainProbability: rand.IntN(40),
		})
	}

	return &domain.WeatherSnapshot{
		Current: domain.CurrentConditions{
			Main: domain.MainReadings{
				Temp:     geo.Round(22+rand.Float64()*10, 1),
				Humidity: geo.Round(60+rand.Float64()*30, 0),
			},
			Weather: []domain.WeatherSummary{summary},
			Wind:    domain.Wind{Speed: geo.Round(2+rand.Float64()*5, 1)},
			Clouds:  domain.Clouds{All: geo.Round(rand.Float64()*100, 0)},
		},
		Forecast:        forecast,
		RainProbability: rand.IntN(100),
		Timestamp:       now,
	}
}
