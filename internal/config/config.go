// Package config loads the process configuration from a .env file and the
// environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	GeminiAPIKey  string
	AnalysisModel string
	ChatModel     string
	HistoryPath   string
	CacheSize     int
	Timeout       time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = ":8084"
	} else if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:          port,
		Env:           env,
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		AnalysisModel: firstNonEmpty(strings.TrimSpace(os.Getenv("LEGALEASE_ANALYSIS_MODEL")), "gemini-3-pro-preview"),
		ChatModel:     firstNonEmpty(strings.TrimSpace(os.Getenv("LEGALEASE_CHAT_MODEL")), "gemini-3-flash-preview"),
		HistoryPath:   firstNonEmpty(strings.TrimSpace(os.Getenv("LEGALEASE_HISTORY_PATH")), "tmp/legalease_history.json"),
		CacheSize:     intEnv("LEGALEASE_CACHE_SIZE", 32),
		Timeout:       time.Duration(intEnv("LEGALEASE_TIMEOUT_SECONDS", 120)) * time.Second,
	}, nil
}

func intEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
