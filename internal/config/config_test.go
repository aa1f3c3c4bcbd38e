package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.APIKey != "dev-key" {
		t.Fatalf("expected default API key, got %q", cfg.APIKey)
	}
	if cfg.MaxListings != 80 {
		t.Fatalf("expected 80 max listings, got %d", cfg.MaxListings)
	}
	if cfg.PageSize != 20 {
		t.Fatalf("expected page size 20, got %d", cfg.PageSize)
	}
	if cfg.MockMode {
		t.Fatal("expected mock mode off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_KEY", "secret")
	t.Setenv("MAX_LISTINGS", "40")
	t.Setenv("MOCK_MODE", "true")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.APIKey != "secret" {
		t.Fatalf("expected API key override, got %q", cfg.APIKey)
	}
	if cfg.MaxListings != 40 {
		t.Fatalf("expected max listings override, got %d", cfg.MaxListings)
	}
	if !cfg.MockMode {
		t.Fatal("expected mock mode on")
	}
}

func TestLoadEmptyAPIKeyDisablesAuth(t *testing.T) {
	t.Setenv("API_KEY", "")

	cfg := Load()

	if cfg.APIKey != "" {
		t.Fatalf("API_KEY set to empty must stay empty, got %q", cfg.APIKey)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_LISTINGS", "not-a-number")
	t.Setenv("RATE_LIMIT", "also-not")

	cfg := Load()

	if cfg.MaxListings != 80 {
		t.Fatalf("expected fallback on bad int, got %d", cfg.MaxListings)
	}
	if cfg.RateLimit != 10 {
		t.Fatalf("expected fallback on bad float, got %v", cfg.RateLimit)
	}
}
