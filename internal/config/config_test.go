package config

import "testing"

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Services.CalcServiceURL != "http://localhost:8000" {
		t.Fatalf("unexpected default calc service URL: %q", cfg.Services.CalcServiceURL)
	}
	if cfg.Services.FoodAnalysisURL != "http://localhost:8000/analyse" {
		t.Fatalf("unexpected default food analysis URL: %q", cfg.Services.FoodAnalysisURL)
	}
	if cfg.Services.ReportServiceURL != "http://localhost:8000/report-incident" {
		t.Fatalf("unexpected default report service URL: %q", cfg.Services.ReportServiceURL)
	}
}

func TestLoadPrefersEnvironmentOverDefaults(t *testing.T) {
	t.Setenv("LUNA_CALC_SERVICE_URL", "http://calc.internal:9000")
	t.Setenv("LUNA_CHAT_SERVICE_URL", "http://chat.internal:9001")
	t.Setenv("LUNA_PORT", "3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Services.CalcServiceURL != "http://calc.internal:9000" {
		t.Fatalf("expected env calc URL to win, got %q", cfg.Services.CalcServiceURL)
	}
	if cfg.Services.ChatServiceURL != "http://chat.internal:9001" {
		t.Fatalf("expected env chat URL to win, got %q", cfg.Services.ChatServiceURL)
	}
	if cfg.Port != "3000" {
		t.Fatalf("expected env port to win, got %q", cfg.Port)
	}
}
