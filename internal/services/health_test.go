package services_test

import (
	"context"
	"net"
	"testing"

	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckHealthy(t *testing.T) {
	db := testutil.NewDB(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testutil.Config()
	cfg.AuthzURL = "http://" + ln.Addr().String()

	result := services.HealthCheck(context.Background(), cfg, db)
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "ok", result.Authorizer)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, "sqlite", result.Details["database_type"])
	assert.Contains(t, result.Details, "database_latency")
	assert.Contains(t, result.Details, "authorizer_latency")
}

func TestHealthCheckUnreachableAuthorizer(t *testing.T) {
	db := testutil.NewDB(t)
	cfg := testutil.Config()
	cfg.AuthzURL = "http://127.0.0.1:1"

	result := services.HealthCheck(context.Background(), cfg, db)
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "unreachable", result.Authorizer)
	assert.Contains(t, result.ErrorMessage, "Authorizer ping failed")
	assert.Contains(t, result.Details, "authorizer_error")
}

func TestHealthCheckClosedDatabase(t *testing.T) {
	db := testutil.NewDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	cfg := testutil.Config()
	cfg.AuthzURL = "http://127.0.0.1:1"

	result := services.HealthCheck(context.Background(), cfg, db)
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "unreachable", result.Database)
	assert.Contains(t, result.ErrorMessage, "Database ping failed")
	assert.Contains(t, result.ErrorMessage, "; ")
}
