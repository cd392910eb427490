package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Dataset DatasetConfig
	CORS    CORSConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatasetConfig struct {
	// Candidate file locations, tried in order. The first existing
	// file wins; if none exists every request fails with DataNotFound.
	Paths []string

	// CacheTTL > 0 enables the read-mostly parse cache; 0 re-reads the
	// file on every request.
	CacheTTL time.Duration

	// Result-count contract for the recommend endpoint.
	TopK int
	MinK int
}

type CORSConfig struct {
	AllowOrigins []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cacheTTLSec, err := strconv.Atoi(getEnv("DATASET_CACHE_TTL_SECONDS", "0"))
	if err != nil || cacheTTLSec < 0 {
		cacheTTLSec = 0
	}

	topK, err := strconv.Atoi(getEnv("RECOMMEND_TOP_K", "10"))
	if err != nil || topK <= 0 {
		topK = 10
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Seoulmate Recommendation API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Dataset: DatasetConfig{
			Paths: []string{
				getEnv("DATASET_PATH", "data/seoul_hotspots.csv"),
				getEnv("DATASET_FALLBACK_PATH", "outputs/seoul_hotspots.csv"),
			},
			CacheTTL: time.Duration(cacheTTLSec) * time.Second,
			TopK:     topK,
			MinK:     3,
		},
		CORS: CORSConfig{
			AllowOrigins: strings.Split(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
