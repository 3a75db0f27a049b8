package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_DATABASE", "legalaid")
	t.Setenv("DB_USER", "app")
	t.Setenv("AUTHZ_URL", "http://authorizer:8080")
	t.Setenv("AUTHZ_CLIENT_ID", "client")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.Port)
	}
	if cfg.AppURL != "http://localhost:3000" {
		t.Errorf("unexpected AppURL %s", cfg.AppURL)
	}
	if cfg.DBType != "postgres" || cfg.DBPort != "5432" {
		t.Errorf("unexpected database defaults %s:%s", cfg.DBType, cfg.DBPort)
	}
	if !cfg.AutoMigrate {
		t.Error("expected AutoMigrate by default")
	}
	if cfg.DefaultPageSize != 20 {
		t.Errorf("expected page size 20, got %d", cfg.DefaultPageSize)
	}
	if cfg.LLMTimeout != 60*time.Second {
		t.Errorf("expected 60s LLM timeout, got %s", cfg.LLMTimeout)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("unexpected model %s", cfg.OpenAIModel)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("APP_URL", "https://legalaid.example")
	t.Setenv("DB_CONNECTION_LIMIT", "25")
	t.Setenv("DB_DEBUG", "true")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("DEFAULT_PAGE_SIZE", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AppURL != "https://legalaid.example" {
		t.Errorf("unexpected AppURL %s", cfg.AppURL)
	}
	if cfg.DBConnectionLimit != 25 || !cfg.DBDebug || cfg.AutoMigrate {
		t.Errorf("database overrides not applied: %+v", cfg)
	}
	if cfg.LLMTimeout != 5*time.Second || cfg.DefaultPageSize != 50 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"database", "DB_DATABASE"},
		{"user", "DB_USER"},
		{"authorizer url", "AUTHZ_URL"},
		{"client id", "AUTHZ_CLIENT_ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")
			if _, err := Load(); err == nil {
				t.Errorf("expected an error without %s", tt.unset)
			}
		})
	}
}

func TestLoadSqliteNeedsNoUser(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_USER", "")

	if _, err := Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	setRequired(t)
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PORT=4100\nOPENAI_MODEL=gpt-4o\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENV_FILE", path)
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("OPENAI_MODEL", "")
	os.Unsetenv("OPENAI_MODEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "4100" || cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("env file not applied: port=%s model=%s", cfg.Port, cfg.OpenAIModel)
	}

	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	if _, err := Load(); err == nil {
		t.Error("expected an error for a missing env file")
	}
}
