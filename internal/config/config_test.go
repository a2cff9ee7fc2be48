package config

import "testing"

func TestLoadAppliesDefaultsWhenEnvUnset(t *testing.T) {
	cfg := Load()

	if cfg.OllamaBaseURL != "http://localhost:11434" {
		t.Errorf("OllamaBaseURL = %q", cfg.OllamaBaseURL)
	}
	if cfg.SlackMinScore != 0.70 {
		t.Errorf("SlackMinScore = %v", cfg.SlackMinScore)
	}
	if cfg.ScanScheduleHours != "6,12,18" {
		t.Errorf("ScanScheduleHours = %q", cfg.ScanScheduleHours)
	}
	if len(cfg.ATSAllowedDomains) == 0 || cfg.ATSAllowedDomains[0] != "greenhouse.io" {
		t.Errorf("ATSAllowedDomains = %v", cfg.ATSAllowedDomains)
	}
	if cfg.DisableScheduler {
		t.Error("DisableScheduler should default to false")
	}
}

func TestLoadOverlaysEnvironmentVariables(t *testing.T) {
	t.Setenv("OLLAMA_BASE_URL", "http://ollama.internal:9999")
	t.Setenv("SLACK_MIN_SCORE", "0.85")
	t.Setenv("SCRAPE_DELAY_MIN", "2")
	t.Setenv("DISABLE_SCHEDULER", "true")
	t.Setenv("ATS_ALLOWED_DOMAINS", "greenhouse.io, lever.co")

	cfg := Load()

	if cfg.OllamaBaseURL != "http://ollama.internal:9999" {
		t.Errorf("OllamaBaseURL = %q", cfg.OllamaBaseURL)
	}
	if cfg.SlackMinScore != 0.85 {
		t.Errorf("SlackMinScore = %v", cfg.SlackMinScore)
	}
	if cfg.ScrapeDelayMin != 2 {
		t.Errorf("ScrapeDelayMin = %v", cfg.ScrapeDelayMin)
	}
	if !cfg.DisableScheduler {
		t.Error("DisableScheduler should be true")
	}
	if len(cfg.ATSAllowedDomains) != 2 || cfg.ATSAllowedDomains[1] != "lever.co" {
		t.Errorf("ATSAllowedDomains = %v", cfg.ATSAllowedDomains)
	}
}

func TestGetEnvIntFallsBackOnUnparsableValue(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_PAGES", "not-a-number")

	cfg := Load()
	if cfg.MaxConcurrentPages != 3 {
		t.Errorf("expected fallback default 3, got %v", cfg.MaxConcurrentPages)
	}
}
