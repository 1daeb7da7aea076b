// Package dbtest builds throwaway SQLite stores populated with race fixtures.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"github.com/padraicbc/f1analytics/config"
	"github.com/padraicbc/f1analytics/db"
	"github.com/padraicbc/f1analytics/models"
)

// Store is a schema-initialised SQLite file plus a writable handle for fixtures.
type Store struct {
	Path string
	DB   *bun.DB

	t            testing.TB
	nextResultID int64
	nextQualiID  int64
}

// New creates an empty store under t.TempDir().
func New(t testing.TB) *Store {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "f1.db")}
	w, err := db.Open(cfg, db.ReadWrite)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	if err := db.CreateTables(context.Background(), w); err != nil {
		t.Fatalf("create tables: %v", err)
	}

	return &Store{Path: cfg.DBPath, DB: w, t: t}
}

// Config points at the store file.
func (s *Store) Config() *config.Config {
	return &config.Config{DBPath: s.Path}
}

// ReadOnly opens a second, read-only handle the way the API does.
func (s *Store) ReadOnly() *bun.DB {
	s.t.Helper()

	r, err := db.Open(s.Config(), db.ReadOnly)
	if err != nil {
		s.t.Fatalf("open read-only store: %v", err)
	}
	s.t.Cleanup(func() { _ = r.Close() })
	return r
}

// Pos returns a pointer to a finishing or grid position.
func Pos(p int) *int {
	return &p
}

// Date parses a YYYY-MM-DD date.
func Date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func (s *Store) insert(model interface{}) {
	s.t.Helper()
	if _, err := s.DB.NewInsert().Model(model).Exec(context.Background()); err != nil {
		s.t.Fatalf("insert %T: %v", model, err)
	}
}

// Circuit adds a circuit.
func (s *Store) Circuit(id int64, name, country string) *Store {
	s.insert(&models.Circuit{
		CircuitID:  id,
		CircuitRef: name,
		Name:       name,
		Country:    &country,
	})
	return s
}

// Driver adds a driver; ref doubles as the three-letter code when it has length 3.
func (s *Store) Driver(id int64, ref, forename, surname string) *Store {
	d := &models.Driver{
		DriverID:  id,
		DriverRef: ref,
		Forename:  forename,
		Surname:   surname,
	}
	if len(ref) == 3 {
		d.Code = &ref
	}
	s.insert(d)
	return s
}

// Constructor adds a constructor.
func (s *Store) Constructor(id int64, name string) *Store {
	s.insert(&models.Constructor{
		ConstructorID:  id,
		ConstructorRef: name,
		Name:           name,
	})
	return s
}

// Race adds a race on the given YYYY-MM-DD date.
func (s *Store) Race(id int64, year, round int, circuitID int64, name, date string) *Store {
	s.insert(&models.Race{
		RaceID:    id,
		Year:      year,
		Round:     round,
		CircuitID: circuitID,
		Name:      name,
		Date:      Date(date),
	})
	return s
}

// Result describes a race result fixture.
type Result struct {
	Race, Driver, Constructor int64
	Position                  *int
	Grid                      *int
	Points                    float64
	FastestLap                *int
}

// Results adds race results with sequential ids.
func (s *Store) Results(rs ...Result) *Store {
	for _, r := range rs {
		s.nextResultID++
		s.insert(&models.RaceResult{
			ResultID:      s.nextResultID,
			RaceID:        r.Race,
			DriverID:      r.Driver,
			ConstructorID: r.Constructor,
			Grid:          r.Grid,
			Position:      r.Position,
			Points:        r.Points,
			FastestLap:    r.FastestLap,
		})
	}
	return s
}

// Qualified records a qualifying session for the driver.
func (s *Store) Qualified(raceID, driverID, constructorID int64, position int) *Store {
	s.nextQualiID++
	s.insert(&models.QualifyingResult{
		QualifyID:     s.nextQualiID,
		RaceID:        raceID,
		DriverID:      driverID,
		ConstructorID: constructorID,
		Position:      Pos(position),
	})
	return s
}
