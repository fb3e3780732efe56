//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medrec/medrec/internal/platform/db"
)

// testDB holds the shared database infrastructure for integration tests.
type testDB struct {
	Pool          *pgxpool.Pool
	ConnStr       string
	MigrationsDir string
}

// globalDB is the package-level test database, initialized once in TestMain.
var globalDB *testDB

func TestMain(m *testing.M) {
	ctx := context.Background()

	tdb, cleanup, err := setupPostgres(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup postgres container: %v\n", err)
		os.Exit(1)
	}

	migrator := db.NewMigrator(tdb.Pool, tdb.MigrationsDir)
	if _, err := migrator.Up(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to apply migrations: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	globalDB = tdb
	code := m.Run()
	cleanup()
	os.Exit(code)
}

func setupPostgres(ctx context.Context) (*testDB, func(), error) {
	migrationsDir := findMigrationsDir()

	connStr, cleanup, err := startPostgresContainer(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres container: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		cleanup()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return &testDB{
		Pool:          pool,
		ConnStr:       connStr,
		MigrationsDir: migrationsDir,
	}, func() {
		pool.Close()
		cleanup()
	}, nil
}

// findMigrationsDir locates the migrations directory relative to this test file.
func findMigrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	// test/integration -> repo root
	root := filepath.Join(dir, "..", "..")
	return filepath.Join(root, "migrations")
}

func strPtr(s string) *string { return &s }
