package database

import (
	"testing"

	"github.com/localnerve/legalaid-api/internal/config"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		dbType string
		name   string
	}{
		{"mysql", "mysql"},
		{"mariadb", "mysql"},
		{"postgres", "postgres"},
		{"sqlite", "sqlite"},
		{"sqlserver", "sqlserver"},
	}
	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			cfg := &config.Config{
				DBType:     tt.dbType,
				DBHost:     "db.internal",
				DBPort:     "5432",
				DBDatabase: "legalaid",
				DBUser:     "app",
				DBPassword: "p@ss word",
			}
			d, err := Dialector(cfg)
			if err != nil {
				t.Fatalf("Dialector failed: %v", err)
			}
			if d.Name() != tt.name {
				t.Errorf("expected dialector %q, got %q", tt.name, d.Name())
			}
		})
	}

	if _, err := Dialector(&config.Config{DBType: "oracle"}); err == nil {
		t.Error("expected an error for an unsupported database type")
	}
}
