// cmd/migrate/main.go
// Imports an Ergast MySQL dump into the analytics store (SQLite file or PostgreSQL).
// Re-running is safe: rows are inserted or replaced on their natural keys.
//
// Usage:
//
//	MYSQL_DSN="user:pass@tcp(host:3306)/ergast?parseTime=true" \
//	DB_PATH=data/f1_database.db \
//	go run ./cmd/migrate
package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/padraicbc/f1analytics/config"
	bundb "github.com/padraicbc/f1analytics/db"
	applog "github.com/padraicbc/f1analytics/logger"
)

const batchSize = 500

func main() {
	ctx := context.Background()

	cfg := config.Load()
	logger, err := applog.NewConsole(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	// --- MySQL ---
	if cfg.MySQLDSN == "" {
		logger.Fatal("MYSQL_DSN required, e.g.: user:pass@tcp(host:3306)/ergast?parseTime=true")
	}
	myDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("open mysql", zap.Error(err))
	}
	defer myDB.Close()
	myDB.SetMaxOpenConns(4)
	if err := myDB.PingContext(ctx); err != nil {
		logger.Fatal("ping mysql", zap.Error(err))
	}
	logger.Info("connected to MySQL")

	// --- Store ---
	store, err := bundb.Open(cfg, bundb.ReadWrite)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer store.Close()
	logger.Info("connected to store", zap.Bool("postgres", cfg.IsPostgres()))

	if err := bundb.CreateTables(ctx, store); err != nil {
		logger.Fatal("create tables", zap.Error(err))
	}

	for _, s := range steps {
		start := time.Now()
		var n int
		err := store.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			var err error
			n, err = s.fn(ctx, myDB, tx)
			return err
		})
		if err != nil {
			logger.Fatal("import failed", zap.String("table", s.name), zap.Error(err))
		}
		logger.Info("imported", zap.String("table", s.name), zap.Int("rows", n), zap.Duration("took", time.Since(start)))
	}

	if cfg.IsPostgres() {
		resetSequences(ctx, store, logger)
	}
	logger.Info("import complete")
}

type step struct {
	name string
	fn   func(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error)
}

// Reference tables first so a partial run still leaves joinable data.
var steps = []step{
	{"status", importStatus},
	{"seasons", importSeasons},
	{"circuits", importCircuits},
	{"drivers", importDrivers},
	{"constructors", importConstructors},
	{"races", importRaces},
	{"race_results", importResults},
	{"qualifying_results", importQualifying},
	{"driver_standings", importDriverStandings},
	{"constructor_standings", importConstructorStandings},
	{"lap_times", importLapTimes},
	{"pit_stops", importPitStops},
}

// --- helpers ---

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return &n.Int64
}

// nullStr also maps Ergast's "\N" placeholder to nil.
func nullStr(n sql.NullString) *string {
	if !n.Valid || n.String == `\N` || n.String == "" {
		return nil
	}
	return &n.String
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	return &n.Float64
}

func nullDate(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	return &n.Time
}

// upsert inserts a batch, replacing the listed columns of rows that already
// exist on the conflict key.
func upsert[T any](ctx context.Context, dst bun.IDB, rows []T, conflict string, cols []string) error {
	if len(rows) == 0 {
		return nil
	}
	q := dst.NewInsert().Model(&rows).On(fmt.Sprintf("CONFLICT (%s) DO UPDATE", conflict))
	for _, c := range cols {
		q = q.Set(c + " = EXCLUDED." + c)
	}
	_, err := q.Exec(ctx)
	return err
}

// copyRows streams query results from src through scan and upserts them in batches.
func copyRows[T any](
	ctx context.Context, src *sql.DB, dst bun.IDB,
	query, conflict string, cols []string,
	scan func(*sql.Rows) (T, error),
) (int, error) {
	rows, err := src.QueryContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	batch := make([]T, 0, batchSize)
	total := 0
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return total, err
		}
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := upsert(ctx, dst, batch, conflict, cols); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := rows.Err(); err != nil {
		return total, err
	}
	if err := upsert(ctx, dst, batch, conflict, cols); err != nil {
		return total, err
	}
	return total + len(batch), nil
}

func columns(s string) []string {
	return strings.Fields(strings.ReplaceAll(s, ",", " "))
}

// resetSequences advances each PG sequence to MAX(id) so new inserts don't conflict.
func resetSequences(ctx context.Context, dst *bun.DB, logger *zap.Logger) {
	seqs := []struct{ seq, table, col string }{
		{"lap_times_lap_time_id_seq", "lap_times", "lap_time_id"},
		{"pit_stops_pit_stop_id_seq", "pit_stops", "pit_stop_id"},
	}
	for _, s := range seqs {
		q := fmt.Sprintf(
			"SELECT setval('%s', COALESCE((SELECT MAX(%s) FROM %s), 1))",
			s.seq, s.col, s.table,
		)
		if _, err := dst.ExecContext(ctx, q); err != nil {
			logger.Warn("reset sequence", zap.String("seq", s.seq), zap.Error(err))
		}
	}
	logger.Info("sequences reset")
}
