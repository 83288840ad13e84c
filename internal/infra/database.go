package infra

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"github.com/uptrace/bun/extra/bunotel"
	"go.uber.org/fx"

	"tasklog.dev/backend/internal/app/appconfig"
)

// sqliteParams turns on foreign keys (needed for ON DELETE CASCADE), waits on a locked
// database instead of failing, and takes the write lock when a transaction begins.
const sqliteParams = "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"

func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func Database(conf *appconfig.Config, lc fx.Lifecycle) (*bun.DB, error) {
	var db *bun.DB
	if IsPostgresDSN(conf.DatabaseDSN) {
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(conf.DatabaseDSN)))
		sqldb.SetMaxOpenConns(conf.DatabaseMaxOpenConns)
		sqldb.SetMaxIdleConns(conf.DatabaseMaxIdleConns)
		sqldb.SetConnMaxLifetime(conf.DatabaseConnMaxLifeTime)

		db = bun.NewDB(sqldb, pgdialect.New())
	} else {
		dsn, err := sqliteDSN(conf.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		sqldb, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open sqlite database")
		}
		// a single writer connection serializes every transaction on the database file
		sqldb.SetMaxOpenConns(1)

		db = bun.NewDB(sqldb, sqlitedialect.New())
	}

	if conf.DevMode {
		db.AddQueryHook(bundebug.NewQueryHook(
			bundebug.WithVerbose(conf.BunDebugVerbose),
		))
	}
	if conf.TracingEnabled {
		db.AddQueryHook(bunotel.NewQueryHook(bunotel.WithDBName("tasklog")))
	}

	err := retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			return db.PingContext(ctx)
		},
		retry.Attempts(conf.DatabaseConnectAttempts),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Str("evt.name", "infra.database.ping").
				Err(err).
				Uint("attempt", n+1).
				Msg("database is not reachable yet, retrying")
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	log.Info().
		Str("evt.name", "infra.database.connected").
		Str("dialect", db.Dialect().Name().String()).
		Msg("connected to database")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

// sqliteDSN appends connection parameters to a SQLite path and creates its parent
// directory when it points at a plain file.
func sqliteDSN(dsn string) (string, error) {
	if dsn == "" {
		return "", errors.New("database dsn is empty")
	}

	path := dsn
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimPrefix(path, "file:")
	if path != ":memory:" && path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", errors.Wrap(err, "failed to create database directory")
			}
		}
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteParams, nil
	}
	return dsn + "?" + sqliteParams, nil
}
