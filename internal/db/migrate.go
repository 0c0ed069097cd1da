package db

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ErrDirtySchema means an earlier migration stopped halfway. It needs a manual
// `migrate force` before the service can start.
var ErrDirtySchema = errors.New("database schema is dirty")

//go:embed migrations/*.sql
var migrationsFS embed.FS

func migrationSource() (source.Driver, error) {
	return iofs.New(migrationsFS, "migrations")
}

// Migrate brings the users and exercises tables to the newest embedded version.
// It runs on every start; an up-to-date schema is a no-op.
func Migrate(databaseURL string) error {
	src, err := migrationSource()
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("migration instance: %w", err)
	}
	defer m.Close()

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return wrapDirty(from)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("schema up to date", "version", from)
		return nil
	}
	if err != nil {
		return fmt.Errorf("apply migrations from version %d: %w", from, err)
	}

	to, _, _ := m.Version()
	slog.Info("schema migrated", "from", from, "to", to)
	return nil
}

func wrapDirty(version uint) error {
	return fmt.Errorf("%w at version %d", ErrDirtySchema, version)
}
