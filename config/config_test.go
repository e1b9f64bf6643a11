package config

import (
	"os"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	for _, k := range []string{"MONGODB_URI", "PORT", "APP_ENV", "CORS_ORIGIN", "SENDGRID_API_KEY", "NOTIFY_EMAIL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.MongoURI != "mongodb://127.0.0.1:27017/portfolio_contacts" {
		t.Errorf("unexpected MongoURI %q", cfg.MongoURI)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected port 5000, got %q", cfg.Port)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("expected CORS origin *, got %q", cfg.CORSOrigin)
	}
	if cfg.Production() {
		t.Error("expected non-production by default")
	}
	if cfg.NotificationsEnabled() {
		t.Error("expected notifications disabled by default")
	}
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017/site")
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("CORS_ORIGIN", "https://example.com")
	t.Setenv("SENDGRID_API_KEY", "key")
	t.Setenv("NOTIFY_EMAIL", "me@example.com")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.MongoURI != "mongodb://db:27017/site" || cfg.Port != "8081" || cfg.CORSOrigin != "https://example.com" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.Production() {
		t.Error("expected production")
	}
	if !cfg.NotificationsEnabled() {
		t.Error("expected notifications enabled")
	}
}
