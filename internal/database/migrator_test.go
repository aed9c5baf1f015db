package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*Migrator, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMigrator(db), mock
}

// shortenRetries makes the readiness loop fast enough for tests.
func shortenRetries(t *testing.T, attempts int) {
	t.Helper()
	prevAttempts, prevInterval := readyAttempts, readyInterval
	readyAttempts = attempts
	readyInterval = 10 * time.Millisecond
	t.Cleanup(func() {
		readyAttempts = prevAttempts
		readyInterval = prevInterval
	})
}

func setSeedEnv(t *testing.T, value string) {
	t.Helper()
	prev := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", value)
	t.Cleanup(func() { os.Setenv("SEED_DATABASE", prev) })
}

func TestMigratorDefaults(t *testing.T) {
	migrator, _ := newMockDB(t)

	assert.Equal(t, defaultMigrationsDir, migrator.migrationsDir)
	assert.Equal(t, defaultSeedsDir, migrator.seedsDir)
}

func TestWaitUntilReady_FirstPingSucceeds(t *testing.T) {
	migrator, mock := newMockDB(t)
	mock.ExpectPing()

	assert.NoError(t, migrator.WaitUntilReady())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitUntilReady_RecoversAfterFailure(t *testing.T) {
	migrator, mock := newMockDB(t)
	shortenRetries(t, 3)

	mock.ExpectPing().WillReturnError(errors.New("dial tcp: connect refused"))
	mock.ExpectPing()

	assert.NoError(t, migrator.WaitUntilReady())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitUntilReady_ExhaustsAttempts(t *testing.T) {
	migrator, mock := newMockDB(t)
	shortenRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("dial tcp: connect refused"))
	mock.ExpectPing().WillReturnError(errors.New("dial tcp: connect refused"))

	err := migrator.WaitUntilReady()
	assert.ErrorContains(t, err, "unreachable after 2 attempts")
}

func TestUp_MissingDirectoryIsNotFatal(t *testing.T) {
	migrator, _ := newMockDB(t)
	migrator.migrationsDir = filepath.Join(t.TempDir(), "no-such-dir")

	assert.NoError(t, migrator.Up())
}

func TestSeed_SkippedWhenDisabled(t *testing.T) {
	migrator, mock := newMockDB(t)
	setSeedEnv(t, "false")

	assert.NoError(t, migrator.Seed())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_MissingDirectoryIsNotFatal(t *testing.T) {
	migrator, _ := newMockDB(t)
	setSeedEnv(t, "true")
	migrator.seedsDir = filepath.Join(t.TempDir(), "no-such-dir")

	assert.NoError(t, migrator.Seed())
}

func TestSeed_EmptyDirectory(t *testing.T) {
	migrator, _ := newMockDB(t)
	setSeedEnv(t, "true")
	migrator.seedsDir = t.TempDir()

	assert.NoError(t, migrator.Seed())
}

func TestSeed_ExecutesFiles(t *testing.T) {
	migrator, mock := newMockDB(t)
	setSeedEnv(t, "true")
	migrator.seedsDir = t.TempDir()

	statement := `INSERT INTO credit_cards (card_name, type) VALUES ('Eterna', 'PREMIUM') ON CONFLICT DO NOTHING;`
	require.NoError(t, os.WriteFile(filepath.Join(migrator.seedsDir, "001_cards.sql"), []byte(statement), 0o644))

	mock.ExpectExec("INSERT INTO credit_cards").WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, migrator.Seed())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_FailedFileDoesNotStopTheRest(t *testing.T) {
	migrator, mock := newMockDB(t)
	setSeedEnv(t, "true")
	migrator.seedsDir = t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(migrator.seedsDir, "001_broken.sql"),
		[]byte("INSERT INTO missing_table VALUES (1);"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(migrator.seedsDir, "002_transactions.sql"),
		[]byte("INSERT INTO transactions (ref_no) VALUES ('REF000000000001');"), 0o644))

	mock.ExpectExec("INSERT INTO missing_table").WillReturnError(errors.New("relation does not exist"))
	mock.ExpectExec("INSERT INTO transactions").WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, migrator.Seed())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_UnreadableFileFails(t *testing.T) {
	migrator, _ := newMockDB(t)
	setSeedEnv(t, "true")
	migrator.seedsDir = t.TempDir()

	// A directory with a .sql name cannot be read as a file.
	require.NoError(t, os.Mkdir(filepath.Join(migrator.seedsDir, "001_oops.sql"), 0o755))

	err := migrator.Seed()
	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestStatus_MissingDirectory(t *testing.T) {
	migrator, _ := newMockDB(t)
	migrator.migrationsDir = filepath.Join(t.TempDir(), "no-such-dir")

	_, _, err := migrator.Status()
	assert.ErrorContains(t, err, "migrations directory not found")
}

func TestRunMigrationsIfEnabled_SkippedByDefault(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	prev := os.Getenv("AUTO_MIGRATE")
	os.Setenv("AUTO_MIGRATE", "false")
	defer os.Setenv("AUTO_MIGRATE", prev)

	assert.NoError(t, RunMigrationsIfEnabled(db))
}

func TestRunMigrationsIfEnabled_UnreachableDatabase(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	prev := os.Getenv("AUTO_MIGRATE")
	os.Setenv("AUTO_MIGRATE", "true")
	defer os.Setenv("AUTO_MIGRATE", prev)

	shortenRetries(t, 2)
	mock.ExpectPing().WillReturnError(errors.New("dial tcp: connect refused"))
	mock.ExpectPing().WillReturnError(errors.New("dial tcp: connect refused"))

	err = RunMigrationsIfEnabled(db)
	assert.ErrorContains(t, err, "database readiness check failed")
}
