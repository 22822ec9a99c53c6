package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shoply.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 9500\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Host != "127.0.0.1" || cfg.HTTP.Port != 9500 {
		t.Fatalf("http defaults: %+v", cfg.HTTP)
	}
	if cfg.DB.Driver != "mysql" || cfg.DB.Name != "shoply" {
		t.Fatalf("db defaults: %+v", cfg.DB)
	}
	if cfg.JWT.Secret != "dev-secret" || cfg.JWT.Issuer != "shoply" || cfg.JWT.ExpMin != 60 {
		t.Fatalf("jwt defaults: %+v", cfg.JWT)
	}
	if cfg.Scheduler.Spec != "@every 1m" || cfg.Scheduler.MaxAttempts != 3 {
		t.Fatalf("scheduler defaults: %+v", cfg.Scheduler)
	}
	if cfg.Admin.Email != "admin@shoply.local" {
		t.Fatalf("admin defaults: %+v", cfg.Admin)
	}
	if cfg.Payment.Currency != "usd" {
		t.Fatalf("payment defaults: %+v", cfg.Payment)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  host: 0.0.0.0
  port: 8080
  db:
    driver: sqlite
    path: /tmp/shoply-test.db
  jwt:
    secret: super-secret
    exp_min: 15
  payment:
    api_key: sk_test_123
    currency: eur
  scheduler:
    spec: "@every 30s"
    max_attempts: 5
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Host != "0.0.0.0" || cfg.HTTP.Port != 8080 {
		t.Fatalf("http: %+v", cfg.HTTP)
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.Path != "/tmp/shoply-test.db" {
		t.Fatalf("db: %+v", cfg.DB)
	}
	if cfg.JWT.Secret != "super-secret" || cfg.JWT.ExpMin != 15 {
		t.Fatalf("jwt: %+v", cfg.JWT)
	}
	if cfg.Payment.APIKey != "sk_test_123" || cfg.Payment.Currency != "eur" {
		t.Fatalf("payment: %+v", cfg.Payment)
	}
	if cfg.Scheduler.Spec != "@every 30s" || cfg.Scheduler.MaxAttempts != 5 {
		t.Fatalf("scheduler: %+v", cfg.Scheduler)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
