// Package analytics computes the derived race reports served to the dashboard:
// driver and constructor performance, race summaries, head-to-head records,
// championship progression and circuit performance.
//
// Every report is one or more read-only SQL statements against the results
// store, optionally followed by computed columns filled in Go. Reports either
// return a complete table or fail with an error matching ErrDataAccess.
package analytics

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Observer is notified once per report call.
type Observer interface {
	ObserveReport(report string, start time.Time, err error)
}

// Engine runs reports against a results store. It is safe for concurrent use.
type Engine struct {
	db       *bun.DB
	log      *zap.Logger
	observer Observer
}

// New creates an Engine over db. The handle should be read-only.
func New(db *bun.DB, opts ...Option) *Engine {
	e := &Engine{
		db:  db,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// scan runs a raw query into dest. No rows is not an error.
func (e *Engine) scan(ctx context.Context, report string, dest interface{}, query string, args ...interface{}) error {
	err := e.db.NewRaw(query, args...).Scan(ctx, dest)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return &QueryError{Report: report, Err: err}
	}
	return nil
}

// track logs and reports the outcome of a report call. Use with defer.
func (e *Engine) track(report string, start time.Time, rows *int, err *error) {
	if *err != nil {
		e.log.Error("report failed", zap.String("report", report), zap.Error(*err))
	} else {
		e.log.Debug("report done",
			zap.String("report", report),
			zap.Int("rows", *rows),
			zap.Duration("took", time.Since(start)),
		)
	}
	if e.observer != nil {
		e.observer.ObserveReport(report, start, *err)
	}
}
