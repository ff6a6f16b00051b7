package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"labelchecker"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

// startPostgres runs a throwaway postgres and returns its host and port.
func startPostgres(ctx context.Context, t *testing.T) (string, int) {
	t.Helper()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			// postgres restarts once after running its init scripts
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			),
		},
		Started: true,
	})
	require.NoError(t, err, "could not start postgres container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return host, port.Int()
}

// runMigrations applies the migrations embedded in the binary, the same set
// the migrate command runs.
func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(labelchecker.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// setupTestDB returns a migrated storage on a fresh container. The returned
// func closes the pool; the container goes away with the test.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()
	host, port := startPostgres(ctx, t)

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               host,
		Port:               port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 2,
	})
	require.NoError(t, err)
	require.NoError(t, runMigrations(pgSQL.DB.(*sql.DB)))

	return pgSQL, func() { _ = pgSQL.Close() }
}

// seedAccountUser creates an account with a single owner and returns both.
func seedAccountUser(t *testing.T, pg *postgres.PgSQL, plan domain.Plan) (*domain.Account, *domain.User) {
	t.Helper()
	ctx := context.Background()

	acc, err := pg.StoreAccount(ctx, domain.Account{
		Name:      "acme",
		Plan:      plan,
		ScanLimit: plan.Limits().ScansPerPeriod,
	})
	require.NoError(t, err)

	u, err := pg.StoreUser(ctx, domain.User{
		AccountID:    acc.ID,
		Email:        uuid.NewString() + "@example.com",
		Name:         "Owner",
		PasswordHash: "hash",
		Role:         domain.RoleUser,
		AccountRole:  domain.AccountRoleOwner,
	})
	require.NoError(t, err)

	return acc, u
}
