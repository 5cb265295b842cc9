package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Sources  SourcesConfig
	Refresh  RefreshConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// SourcesConfig holds the endpoints and timeout for the two external
// data providers (country catalog and USD exchange rates).
type SourcesConfig struct {
	CountriesURL string
	RatesURL     string
	FetchTimeout time.Duration
}

// RefreshConfig holds refresh pipeline tuning.
//
// Schedule is a cron expression for background refreshes; empty disables
// them. GDPPerCapitaUSD is the fixed multiplier for the estimated GDP
// proxy metric (population × multiplier ÷ exchange rate).
type RefreshConfig struct {
	Schedule        string
	GDPPerCapitaUSD float64
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	timeoutSeconds, err := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT_SECONDS: %q", os.Getenv("FETCH_TIMEOUT_SECONDS"))
	}

	gdpPerCapita, err := strconv.ParseFloat(getEnv("GDP_PER_CAPITA_USD", "1500"), 64)
	if err != nil || gdpPerCapita <= 0 {
		return nil, fmt.Errorf("invalid GDP_PER_CAPITA_USD: %q", os.Getenv("GDP_PER_CAPITA_USD"))
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/countries.db"),
		},
		Sources: SourcesConfig{
			CountriesURL: getEnv("COUNTRIES_API_URL", "https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"),
			RatesURL:     getEnv("EXCHANGE_RATES_API_URL", "https://open.er-api.com/v6/latest/USD"),
			FetchTimeout: time.Duration(timeoutSeconds) * time.Second,
		},
		Refresh: RefreshConfig{
			Schedule:        getEnv("REFRESH_SCHEDULE", ""),
			GDPPerCapitaUSD: gdpPerCapita,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
