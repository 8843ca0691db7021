package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port    string
	DBPath  string
	Backend string // local|remote record store

	RecordEndpoint string
	ProjectID      string
	PublicKey      string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	LLMMock     bool

	WeatherForecastCSV string
	WeatherAlertsCSV   string
	WeatherCurrentXLSX string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:    get("PORT", "8080"),
		DBPath:  get("DB_PATH", "farmdesk.db"),
		Backend: get("RECORD_BACKEND", "local"),

		RecordEndpoint: get("RECORD_ENDPOINT", ""),
		ProjectID:      get("RECORD_PROJECT_ID", ""),
		PublicKey:      get("RECORD_PUBLIC_KEY", ""),

		LLMEndpoint: get("LLM_ENDPOINT", "https://api.openai.com"),
		LLMAPIKey:   get("OPENAI_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),
		LLMMock:     get("LLM_MOCK", "") == "true",

		WeatherForecastCSV: get("WEATHER_FORECAST_CSV", "./WeatherForecast.csv"),
		WeatherAlertsCSV:   get("WEATHER_ALERTS_CSV", "./WeatherAlerts.csv"),
		WeatherCurrentXLSX: get("WEATHER_CURRENT_XLSX", "./WeatherCurrent.xlsx"),
	}
	log.Printf("[cfg] port=%s backend=%s db=%s", cfg.Port, cfg.Backend, cfg.DBPath)
	return cfg
}
