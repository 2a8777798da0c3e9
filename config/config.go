package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings loaded from environment variables.
type Config struct {
	ListenAddr string

	DashboardUser string
	DashboardPass string

	// Minimum interval between review pages, in milliseconds.
	PageIntervalMs int

	PlayLang    string
	PlayCountry string

	OpenAIAPIKey string
}

// Load reads the .env file (if present) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),

		DashboardUser: getEnv("DASHBOARD_USER", "admin"),
		DashboardPass: getEnv("DASHBOARD_PASS", "admin"),

		PageIntervalMs: getEnvInt("PAGE_INTERVAL_MS", 2000),

		PlayLang:    getEnv("PLAY_LANG", "en"),
		PlayCountry: getEnv("PLAY_COUNTRY", "us"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
