// Package config loads process configuration from the environment, with
// optional ".env" support for local development.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every tunable the scan pipeline reads at construction time.
type Config struct {
	OllamaBaseURL    string
	OllamaModel      string
	SlackWebhookURL  string
	SlackMinScore    float64
	ScanScheduleHours string
	ScanTimezone     string
	ScrapeDelayMin   int
	ScrapeDelayMax   int
	MaxConcurrentPages int
	PreferredWorkMode string
	MinSalaryConfidence float64
	ATSAllowedDomains []string
	DatabaseURL      string
	DisableScheduler bool
	DataDir          string
	APIRateLimitPerMinute int
	LogLevel         string
}

// Load reads ".env" (if present, silently ignored otherwise) then overlays
// process environment variables over the defaults below.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		OllamaBaseURL:         getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:           getEnv("OLLAMA_MODEL", "qwen2.5-coder:7b"),
		SlackWebhookURL:       getEnv("SLACK_WEBHOOK_URL", ""),
		SlackMinScore:         getEnvFloat("SLACK_MIN_SCORE", 0.70),
		ScanScheduleHours:     getEnv("SCAN_SCHEDULE_HOURS", "6,12,18"),
		ScanTimezone:          getEnv("SCAN_TIMEZONE", "America/Chicago"),
		ScrapeDelayMin:        getEnvInt("SCRAPE_DELAY_MIN", 5),
		ScrapeDelayMax:        getEnvInt("SCRAPE_DELAY_MAX", 10),
		MaxConcurrentPages:    getEnvInt("MAX_CONCURRENT_PAGES", 3),
		PreferredWorkMode:     getEnv("PREFERRED_WORK_MODE", "any"),
		MinSalaryConfidence:   getEnvFloat("MIN_SALARY_CONFIDENCE", 0.60),
		ATSAllowedDomains:     getEnvList("ATS_ALLOWED_DOMAINS", []string{
			"greenhouse.io", "lever.co", "workdayjobs.com", "myworkdayjobs.com",
			"ashbyhq.com", "rippling.com", "jobvite.com", "smartrecruiters.com",
		}),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		DisableScheduler:      getEnvBool("DISABLE_SCHEDULER", false),
		DataDir:               getEnv("DATA_DIR", "./data"),
		APIRateLimitPerMinute: getEnvInt("API_RATE_LIMIT_PER_MINUTE", 60),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
