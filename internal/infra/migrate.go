package infra

import (
	"context"
	"embed"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

//go:embed migrations
var migrationsFS embed.FS

type MigrationStatus struct {
	Version uint `json:"version"`
	Dirty   bool `json:"dirty"`
}

// Migrator applies the embedded schema migrations matching the database dialect.
type Migrator struct {
	db *bun.DB
}

func NewMigrator(db *bun.DB) *Migrator {
	return &Migrator{db: db}
}

// with runs fn against a migrate instance. The instance is never closed with
// migrate.Close since that would close the shared *sql.DB as well.
func (m *Migrator) with(ctx context.Context, fn func(mg *migrate.Migrate) error) error {
	var (
		driver database.Driver
		dir    string
		name   string
		err    error
	)

	switch m.db.Dialect().Name() {
	case dialect.PG:
		conn, cerr := m.db.DB.Conn(ctx)
		if cerr != nil {
			return errors.Wrap(cerr, "failed to acquire migration connection")
		}
		defer conn.Close()

		driver, err = postgres.WithConnection(ctx, conn, &postgres.Config{})
		dir, name = "migrations/postgres", "postgres"
	case dialect.SQLite:
		driver, err = sqlite3.WithInstance(m.db.DB, &sqlite3.Config{})
		dir, name = "migrations/sqlite", "sqlite3"
	default:
		return errors.Errorf("unsupported database dialect %q", m.db.Dialect().Name())
	}
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	mg, err := migrate.NewWithInstance("iofs", source, name, driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	return fn(mg)
}

func (m *Migrator) Up(ctx context.Context) error {
	return m.with(ctx, func(mg *migrate.Migrate) error {
		err := mg.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debug().Str("evt.name", "infra.migrate.up").Msg("schema is up to date")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to apply migrations")
		}
		log.Info().Str("evt.name", "infra.migrate.up").Msg("applied schema migrations")
		return nil
	})
}

// Down reverts the last applied migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.with(ctx, func(mg *migrate.Migrate) error {
		err := mg.Steps(-1)
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return errors.Wrap(err, "failed to revert migration")
		}
		return nil
	})
}

func (m *Migrator) Status(ctx context.Context) (*MigrationStatus, error) {
	var status MigrationStatus
	err := m.with(ctx, func(mg *migrate.Migrate) error {
		version, dirty, err := mg.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return err
		}
		status = MigrationStatus{Version: version, Dirty: dirty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// AutoMigrate brings the schema up to date before anything else touches the database.
func AutoMigrate(m *Migrator) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return m.Up(ctx)
}
