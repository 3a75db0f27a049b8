package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/localnerve/legalaid-api/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	containerDatabase = "legalaid"
	containerUser     = "legalaid"
	containerPassword = "legalaid"
)

// Containers holds the database container started for integration runs.
// Config points at it.
type Containers struct {
	DBContainer testcontainers.Container
	Config      *config.Config
}

// Terminate stops every started container. t may be nil.
func (tc *Containers) Terminate(t *testing.T) {
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(context.Background()); err != nil {
			logMessage(t, "Failed to terminate database: %v", err)
		}
	}
}

// StartDatabase starts the database named by DB_TYPE (postgres by default,
// or mysql/mariadb) using DB_IMAGE when set. t may be nil for standalone use.
func StartDatabase(ctx context.Context, t *testing.T) (*Containers, error) {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "postgres"
	}
	image := os.Getenv("DB_IMAGE")

	tc := &Containers{}
	var port nat.Port
	switch dbType {
	case "postgres":
		if image == "" {
			image = "postgres:16-alpine"
		}
		pgContainer, err := postgres.Run(ctx,
			image,
			postgres.WithDatabase(containerDatabase),
			postgres.WithUsername(containerUser),
			postgres.WithPassword(containerPassword),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start postgres: %w", err)
		}
		tc.DBContainer = pgContainer
		port = "5432/tcp"

	case "mysql", "mariadb":
		if image == "" {
			image = "mariadb:11"
		}
		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        image,
				ExposedPorts: []string{"3306/tcp"},
				Env: map[string]string{
					"MYSQL_ROOT_PASSWORD": containerPassword,
					"MYSQL_DATABASE":      containerDatabase,
					"MYSQL_USER":          containerUser,
					"MYSQL_PASSWORD":      containerPassword,
				},
				WaitingFor: wait.ForListeningPort("3306/tcp").WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to start %s: %w", dbType, err)
		}
		tc.DBContainer = container
		port = "3306/tcp"

	default:
		return nil, fmt.Errorf("unsupported container database type: %s", dbType)
	}

	host, err := tc.DBContainer.Host(ctx)
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mapped, err := tc.DBContainer.MappedPort(ctx, port)
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	cfg := Config()
	cfg.DBType = dbType
	cfg.DBHost = host
	cfg.DBPort = mapped.Port()
	cfg.DBDatabase = containerDatabase
	cfg.DBUser = containerUser
	cfg.DBPassword = containerPassword
	cfg.DBConnectionLimit = 10
	tc.Config = cfg

	logMessage(t, "DB_TYPE=%s DB_HOST=%s DB_PORT=%s", dbType, host, mapped.Port())
	return tc, nil
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
