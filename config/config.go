package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Backend driver selectors. Exactly one is active per process.
const (
	DriverPostgres = "postgres"
	DriverSheets   = "sheets"
	DriverRest     = "rest"
)

type Config struct {
	Port string

	// DataSource selects the backend driver: postgres, sheets or rest.
	DataSource string

	DBURL      string // postgres driver and the user table
	SheetsURL  string // sheets driver: spreadsheet web app endpoint
	RestAPIURL string // rest driver: remote API base URL

	JWTSecret string
}

// Load reads the environment (plus an optional .env file) into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DataSource: getEnv("DATA_SOURCE", DriverPostgres),
		DBURL:      os.Getenv("DB_URL"),
		SheetsURL:  os.Getenv("SHEETS_URL"),
		RestAPIURL: os.Getenv("REST_API_URL"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}

	switch cfg.DataSource {
	case DriverPostgres:
	case DriverSheets:
		if cfg.SheetsURL == "" {
			return nil, fmt.Errorf("DATA_SOURCE=sheets requires SHEETS_URL")
		}
	case DriverRest:
		if cfg.RestAPIURL == "" {
			return nil, fmt.Errorf("DATA_SOURCE=rest requires REST_API_URL")
		}
	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q", cfg.DataSource)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
