// Package config loads backend configuration from environment variables with
// development defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type Database struct {
	Type       string // "postgres" or "sqlite"
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SQLitePath string
}

type Config struct {
	Port          string
	LogLevel      string
	UploadDir     string
	DetectionsDir string
	MaxUploadSize int64

	// Vision scanner subprocess.
	PythonBin     string
	ScannerScript string

	MigrationsPath string
	DB             Database

	// External query/alert execution cluster.
	BackendURL string

	OpenAIAPIKey string
}

// Load reads configuration from the environment. It only fails on values that
// are present but unparseable.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		UploadDir:      getenv("UPLOAD_DIR", "./uploads"),
		DetectionsDir:  getenv("DETECTIONS_DIR", "./detections"),
		PythonBin:      getenv("PYTHON_BIN", "python3"),
		ScannerScript:  getenv("SCANNER_SCRIPT", "./python/scanner.py"),
		MigrationsPath: getenv("MIGRATIONS_PATH", "./migrations"),
		BackendURL:     getenv("URL_BACKEND", "http://localhost:5000"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
	}

	maxSize, err := strconv.ParseInt(getenv("MAX_UPLOAD_SIZE", "104857600"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE: %w", err)
	}
	cfg.MaxUploadSize = maxSize

	cfg.DB = Database{
		Type:       getenv("DB_TYPE", "sqlite"),
		SQLitePath: getenv("DB_PATH", "./surveillance.db"),
	}
	if cfg.DB.Type == "postgres" {
		cfg.DB.Host = getenv("DB_HOST", "localhost")
		cfg.DB.User = getenv("DB_USER", "postgres")
		cfg.DB.Password = getenv("DB_PASSWORD", "postgres")
		cfg.DB.Name = getenv("DB_NAME", "videodata")

		port, err := strconv.Atoi(getenv("DB_PORT", "5432"))
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT: %w", err)
		}
		cfg.DB.Port = port
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
