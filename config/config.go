package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	DBPath         string
	LLMEndpoint    string
	LLMAPIKey      string
	LLMModel       string
	SaveDebounceMS int
	AllowedDomains string
	MaxPageBytes   int
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
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		DBPath:         get("DB_PATH", "planner.db"),
		LLMEndpoint:    get("LLM_ENDPOINT", ""),
		LLMAPIKey:      get("LLM_API_KEY", ""),
		LLMModel:       get("LLM_MODEL", "gpt-4o-mini"),
		SaveDebounceMS: getInt("SAVE_DEBOUNCE_MS", 500),
		AllowedDomains: get("RESEARCH_ALLOWED_DOMAINS", ""),
		MaxPageBytes:   getInt("RESEARCH_MAX_BYTES_PER_PAGE", 1500000),
	}
	log.Printf("[cfg] port=%s db=%s llm=%t debounce=%dms", cfg.Port, cfg.DBPath, cfg.LLMEndpoint != "", cfg.SaveDebounceMS)
	return cfg
}
