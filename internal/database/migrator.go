package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsDir = "db/migrations"
	defaultSeedsDir      = "db/seeds"
)

// Tests shorten these to avoid minute-long retry loops.
var (
	readyAttempts = 30
	readyInterval = 2 * time.Second
)

// Migrator applies schema migrations and optional seed data on startup.
type Migrator struct {
	sqlDB         *sql.DB
	migrationsDir string
	seedsDir      string
}

// NewMigrator creates a migrator bound to the default db/ directories.
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{
		sqlDB:         db,
		migrationsDir: defaultMigrationsDir,
		seedsDir:      defaultSeedsDir,
	}
}

// WaitUntilReady pings the database until it answers or the attempt budget
// runs out.
func (m *Migrator) WaitUntilReady() error {
	for attempt := 1; attempt <= readyAttempts; attempt++ {
		if err := m.sqlDB.Ping(); err == nil {
			slog.Info("database reachable", "attempts", attempt)
			return nil
		} else {
			slog.Warn("database not reachable yet",
				"attempt", attempt,
				"max_attempts", readyAttempts,
				"error", err)
		}
		time.Sleep(readyInterval)
	}
	return fmt.Errorf("database unreachable after %d attempts", readyAttempts)
}

// Up applies every pending migration. A missing migrations directory is not
// an error so binaries can run outside the repo checkout.
func (m *Migrator) Up() error {
	if _, err := os.Stat(m.migrationsDir); os.IsNotExist(err) {
		slog.Warn("migrations directory missing, skipping", "dir", m.migrationsDir)
		return nil
	}

	inst, err := m.newMigrateInstance()
	if err != nil {
		return err
	}

	version, dirty, err := inst.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		slog.Warn("database marked dirty, forcing version", "version", version)
		if err := inst.Force(int(version)); err != nil {
			return fmt.Errorf("failed to clear dirty state: %w", err)
		}
	}

	if err := inst.Up(); err != nil {
		if err == migrate.ErrNoChange {
			slog.Info("schema already current", "version", version)
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	applied, _, err := inst.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	slog.Info("migrations applied", "version", applied)
	return nil
}

// Seed executes every *.sql file in the seeds directory. Seeding is gated by
// SEED_DATABASE and individual file failures are logged, not fatal, so a
// conflicting insert never blocks startup.
func (m *Migrator) Seed() error {
	if os.Getenv("SEED_DATABASE") != "true" {
		slog.Info("seed files skipped, SEED_DATABASE not enabled")
		return nil
	}
	if _, err := os.Stat(m.seedsDir); os.IsNotExist(err) {
		slog.Warn("seeds directory missing, skipping", "dir", m.seedsDir)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(m.seedsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list seed files: %w", err)
	}
	if len(files) == 0 {
		slog.Info("no seed files found", "dir", m.seedsDir)
		return nil
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}
		if _, err := m.sqlDB.Exec(string(content)); err != nil {
			slog.Warn("seed file failed", "file", filepath.Base(file), "error", err)
			continue
		}
		slog.Info("seed file applied", "file", filepath.Base(file))
	}
	return nil
}

// Status reports the current schema version and whether it is dirty.
func (m *Migrator) Status() (version uint, dirty bool, err error) {
	if _, err := os.Stat(m.migrationsDir); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found at %s", m.migrationsDir)
	}

	inst, err := m.newMigrateInstance()
	if err != nil {
		return 0, false, err
	}
	return inst.Version()
}

func (m *Migrator) newMigrateInstance() (*migrate.Migrate, error) {
	absDir, err := filepath.Abs(m.migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations dir: %w", err)
	}

	driver, err := postgres.WithInstance(m.sqlDB, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	inst, err := migrate.NewWithDatabaseInstance("file://"+absDir, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return inst, nil
}

// RunMigrationsIfEnabled waits for the database and applies migrations plus
// seed data when AUTO_MIGRATE is set.
func RunMigrationsIfEnabled(db *sql.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		slog.Info("auto-migration skipped, AUTO_MIGRATE not enabled")
		return nil
	}

	migrator := NewMigrator(db)

	if err := migrator.WaitUntilReady(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := migrator.Up(); err != nil {
		return fmt.Errorf("migration run failed: %w", err)
	}
	if err := migrator.Seed(); err != nil {
		slog.Warn("seed run failed", "error", err)
	}

	if version, dirty, err := migrator.Status(); err != nil {
		slog.Warn("could not read migration status", "error", err)
	} else {
		slog.Info("migration status", "version", version, "dirty", dirty)
	}
	return nil
}
