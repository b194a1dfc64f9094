package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	WeatherProviderOpenMeteo   = "openmeteo"
	WeatherProviderOpenWeather = "openweather"
)

// Config holds application configuration. It is built once at startup and
// shared read-only by every component.
type Config struct {
	Port         string
	IsProduction bool

	// Storage
	DBDriver      string
	SQLitePath    string
	DatabaseURL   string
	StoreRequired bool

	// Session
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AuthCookieName    string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	// Upstream providers
	WeatherProvider    string
	OpenMeteoBaseURL   string
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	SerpAPIKey         string
	SerpAPIBaseURL     string
	LocationIQAPIKey   string
	LocationIQBaseURL  string
	NominatimBaseURL   string
	OverpassURL        string

	WeatherTimeout      time.Duration
	PlacesTimeout       time.Duration
	GeocodeTimeout      time.Duration
	AutocompleteTimeout time.Duration

	WeatherCacheTTL time.Duration
	SearchCacheTTL  time.Duration

	AuthRateLimit   string
	SearchRateLimit string

	ReportRetention time.Duration

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DB_DRIVER", DriverSQLite)
	viper.SetDefault("SQLITE_PATH", "data/moto_weather.db")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("STORE_REQUIRED", false)
	viper.SetDefault("JWT_SECRET", "moto-clima-secret-key")
	viper.SetDefault("JWT_EXPIRY_DURATION", "168h")
	viper.SetDefault("JWT_ISSUER", "rotalivre")
	viper.SetDefault("AUTH_COOKIE_NAME", "auth-token")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("WEATHER_PROVIDER", WeatherProviderOpenMeteo)
	viper.SetDefault("OPENMETEO_BASE_URL", "https://api.open-meteo.com/v1")
	viper.SetDefault("OPENWEATHER_API_KEY", "")
	viper.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")
	viper.SetDefault("SERPAPI_KEY", "")
	viper.SetDefault("SERPAPI_BASE_URL", "https://serpapi.com")
	viper.SetDefault("LOCATIONIQ_API_KEY", "")
	viper.SetDefault("LOCATIONIQ_BASE_URL", "https://us1.locationiq.com/v1")
	viper.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("OVERPASS_URL", "https://overpass-api.de/api/interpreter")
	viper.SetDefault("WEATHER_TIMEOUT", "10s")
	viper.SetDefault("PLACES_TIMEOUT", "30s")
	viper.SetDefault("GEOCODE_TIMEOUT", "10s")
	viper.SetDefault("AUTOCOMPLETE_TIMEOUT", "10s")
	viper.SetDefault("WEATHER_CACHE_TTL", "10m")
	viper.SetDefault("SEARCH_CACHE_TTL", "1h")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")
	viper.SetDefault("SEARCH_RATE_LIMIT", "60-M")
	viper.SetDefault("REPORT_RETENTION", "168h")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.DBDriver = strings.ToLower(viper.GetString("DB_DRIVER"))
	if cfg.DBDriver != DriverSQLite && cfg.DBDriver != DriverPostgres {
		log.Printf("Warning: Unknown DB_DRIVER ('%s'). Defaulting to %s.\n", cfg.DBDriver, DriverSQLite)
		cfg.DBDriver = DriverSQLite
	}
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DBDriver == DriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: DB_DRIVER is postgres but PGSQL_URL environment variable not set.")
	}
	cfg.StoreRequired = viper.GetBool("STORE_REQUIRED")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "moto-clima-secret-key" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", 7*24*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AuthCookieName = viper.GetString("AUTH_COOKIE_NAME")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.WeatherProvider = strings.ToLower(viper.GetString("WEATHER_PROVIDER"))
	if cfg.WeatherProvider != WeatherProviderOpenMeteo && cfg.WeatherProvider != WeatherProviderOpenWeather {
		log.Printf("Warning: Unknown WEATHER_PROVIDER ('%s'). Defaulting to %s.\n", cfg.WeatherProvider, WeatherProviderOpenMeteo)
		cfg.WeatherProvider = WeatherProviderOpenMeteo
	}
	cfg.OpenMeteoBaseURL = viper.GetString("OPENMETEO_BASE_URL")
	cfg.OpenWeatherAPIKey = apiKey("OPENWEATHER_API_KEY")
	cfg.OpenWeatherBaseURL = viper.GetString("OPENWEATHER_BASE_URL")
	cfg.SerpAPIKey = apiKey("SERPAPI_KEY")
	cfg.SerpAPIBaseURL = viper.GetString("SERPAPI_BASE_URL")
	cfg.LocationIQAPIKey = apiKey("LOCATIONIQ_API_KEY")
	cfg.LocationIQBaseURL = viper.GetString("LOCATIONIQ_BASE_URL")
	cfg.NominatimBaseURL = viper.GetString("NOMINATIM_BASE_URL")
	cfg.OverpassURL = viper.GetString("OVERPASS_URL")

	cfg.WeatherTimeout = durationOrDefault("WEATHER_TIMEOUT", 10*time.Second)
	cfg.PlacesTimeout = durationOrDefault("PLACES_TIMEOUT", 30*time.Second)
	cfg.GeocodeTimeout = durationOrDefault("GEOCODE_TIMEOUT", 10*time.Second)
	cfg.AutocompleteTimeout = durationOrDefault("AUTOCOMPLETE_TIMEOUT", 10*time.Second)
	cfg.WeatherCacheTTL = durationOrDefault("WEATHER_CACHE_TTL", 10*time.Minute)
	cfg.SearchCacheTTL = durationOrDefault("SEARCH_CACHE_TTL", time.Hour)

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.SearchRateLimit = viper.GetString("SEARCH_RATE_LIMIT")
	cfg.ReportRetention = durationOrDefault("REPORT_RETENTION", 7*24*time.Hour)

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

// durationOrDefault reads a duration key, logging and falling back when it does not parse.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

// apiKey reads a provider key; installer placeholders count as absent.
func apiKey(key string) string {
	v := strings.TrimSpace(viper.GetString(key))
	if IsPlaceholderKey(v) {
		if v != "" {
			log.Printf("Warning: %s holds a placeholder value. The provider will use fallback data.\n", key)
		}
		return ""
	}
	return v
}

// IsPlaceholderKey reports whether v is empty or one of the "your_..._here" template values.
func IsPlaceholderKey(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return true
	}
	return strings.HasPrefix(v, "your_") && strings.HasSuffix(v, "_here")
}
