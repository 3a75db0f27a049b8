package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/localnerve/legalaid-api/internal/config"
	"github.com/localnerve/legalaid-api/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Authorizer   string            `json:"authorizer"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

type probeResult struct {
	state   string
	details map[string]string
	err     string
}

// HealthCheck pings the database and the identity provider concurrently.
// Each probe reports its latency under "<name>_latency".
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB) HealthCheckResult {
	var dbProbe, authzProbe probeResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		dbProbe = timed("database", func() probeResult { return pingDatabase(ctx, cfg, db) })
	}()
	go func() {
		defer wg.Done()
		authzProbe = timed("authorizer", func() probeResult { return pingAuthorizer(ctx, cfg) })
	}()
	wg.Wait()

	result := HealthCheckResult{
		Status:     "healthy",
		Database:   dbProbe.state,
		Authorizer: authzProbe.state,
		Details:    make(map[string]string),
	}
	var failures []string
	for _, p := range []probeResult{dbProbe, authzProbe} {
		for k, v := range p.details {
			result.Details[k] = v
		}
		if p.err != "" {
			failures = append(failures, p.err)
		}
	}
	if len(failures) > 0 {
		result.Status = "unhealthy"
		result.ErrorMessage = strings.Join(failures, "; ")
		slog.Warn("health check failed", "error", result.ErrorMessage)
	} else {
		slog.Debug("health check passed")
	}
	return result
}

func timed(name string, probe func() probeResult) probeResult {
	start := time.Now()
	p := probe()
	p.details[name+"_latency"] = time.Since(start).Round(time.Millisecond).String()
	return p
}

func pingDatabase(ctx context.Context, cfg *config.Config, db *gorm.DB) probeResult {
	sqlDB, err := db.DB()
	if err != nil {
		return probeResult{
			state:   "error",
			details: map[string]string{"database_error": err.Error()},
			err:     "Database connection error: " + err.Error(),
		}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return probeResult{
			state:   "unreachable",
			details: map[string]string{"database_ping_error": err.Error()},
			err:     "Database ping failed: " + err.Error(),
		}
	}
	stats := sqlDB.Stats()
	return probeResult{
		state: "ok",
		details: map[string]string{
			"database_type":        cfg.DBType,
			"database_name":        cfg.DBDatabase,
			"database_connections": fmt.Sprintf("%d in use of %d", stats.InUse, stats.OpenConnections),
		},
	}
}

func pingAuthorizer(ctx context.Context, cfg *config.Config) probeResult {
	if err := utils.PingAuthorizer(ctx, cfg.AuthzURL); err != nil {
		return probeResult{
			state:   "unreachable",
			details: map[string]string{"authorizer_error": err.Error()},
			err:     "Authorizer ping failed: " + err.Error(),
		}
	}
	return probeResult{
		state:   "ok",
		details: map[string]string{"authorizer_url": cfg.AuthzURL},
	}
}
