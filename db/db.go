package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/padraicbc/f1analytics/config"
)

// ErrStoreNotFound is returned when the configured SQLite file does not exist.
var ErrStoreNotFound = errors.New("store not found")

// Mode selects how the store is opened.
type Mode int

const (
	// ReadOnly is used by the analytics API and report tools.
	ReadOnly Mode = iota
	// ReadWrite is used by the import tool; a missing SQLite file is created.
	ReadWrite
)

// Open connects to the store described by cfg. DATABASE_URL selects PostgreSQL,
// otherwise DB_PATH is opened as a SQLite file. Extra hooks (e.g. metrics) are
// attached to the returned handle.
func Open(cfg *config.Config, mode Mode, hooks ...bun.QueryHook) (*bun.DB, error) {
	var db *bun.DB

	if cfg.IsPostgres() {
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DatabaseURL)))
		db = bun.NewDB(sqldb, pgdialect.New())
	} else {
		if mode == ReadOnly {
			if _, err := os.Stat(cfg.DBPath); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return nil, fmt.Errorf("%w at %s", ErrStoreNotFound, cfg.DBPath)
				}
				return nil, fmt.Errorf("stat store: %w", err)
			}
		}
		sqldb, err := sql.Open("sqlite3", cfg.SQLiteDSN(mode == ReadOnly))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if mode == ReadWrite {
			// SQLite allows a single writer.
			sqldb.SetMaxOpenConns(1)
		}
		db = bun.NewDB(sqldb, sqlitedialect.New())
	}

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	for _, h := range hooks {
		db.AddQueryHook(h)
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
