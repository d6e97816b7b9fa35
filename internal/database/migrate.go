package database

import (
	"embed"
	"errors"
	"fmt"

	"trivia-api/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations
var migrationFS embed.FS

// Direction selects which way migrations are applied
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection validates a command-line direction argument
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("unknown migration direction %q (want up or down)", s)
	}
}

// RunMigrations applies the embedded migrations for driver in the given direction.
// An already up-to-date schema is not an error.
func RunMigrations(db *sqlx.DB, driver string, dir Direction) error {
	m, err := newMigrator(db, driver)
	if err != nil {
		return err
	}
	// m.Close would also close db, so the migrator is left open.

	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", dir)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", dir, err)
	}
	return nil
}

func newMigrator(db *sqlx.DB, driver string) (*migrate.Migrate, error) {
	var (
		target migratedb.Driver
		dir    string
		err    error
	)
	switch driver {
	case config.DriverPostgres:
		dir = "migrations/postgres"
		target, err = migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	case config.DriverSQLite:
		dir = "migrations/sqlite3"
		target, err = migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s migration driver: %w", driver, err)
	}

	src, err := iofs.New(migrationFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}
