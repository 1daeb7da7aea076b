package main

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/padraicbc/f1analytics/db/dbtest"
	"github.com/padraicbc/f1analytics/models"
)

// ergastSource creates a SQLite stand-in for the Ergast lapTimes table with
// laps 1..n for one driver.
func ergastSource(t *testing.T, n int) *sql.DB {
	t.Helper()

	src, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "ergast.db"))
	if err != nil {
		t.Fatalf("open source: %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })

	if _, err := src.Exec(`CREATE TABLE lapTimes (
		raceId INTEGER, driverId INTEGER, lap INTEGER,
		position INTEGER, time TEXT, milliseconds INTEGER)`); err != nil {
		t.Fatalf("create lapTimes: %v", err)
	}

	tx, err := src.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	for lap := 1; lap <= n; lap++ {
		if _, err := tx.Exec(`INSERT INTO lapTimes VALUES (1, 1, ?, 1, '1:30.000', 90000)`, lap); err != nil {
			t.Fatalf("insert lap %d: %v", lap, err)
		}
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	return src
}

func countLaps(ctx context.Context, s *dbtest.Store) int {
	n, err := s.DB.NewSelect().Model((*models.LapTime)(nil)).Count(ctx)
	So(err, ShouldBeNil)
	return n
}

func TestUpsertResults(t *testing.T) {
	ctx := context.Background()

	Convey("Given a result already imported", t, func() {
		store := dbtest.New(t)
		first := []models.RaceResult{{ResultID: 1, RaceID: 1, DriverID: 1, ConstructorID: 1, Position: dbtest.Pos(2), Points: 18}}
		So(upsert(ctx, store.DB, first, resultConflict, resultColumns), ShouldBeNil)

		Convey("When the same race and driver are imported again with new points", func() {
			again := []models.RaceResult{{ResultID: 1, RaceID: 1, DriverID: 1, ConstructorID: 1, Position: dbtest.Pos(1), Points: 25}}
			So(upsert(ctx, store.DB, again, resultConflict, resultColumns), ShouldBeNil)

			Convey("Then one row remains carrying the replacement values", func() {
				var rows []models.RaceResult
				So(store.DB.NewSelect().Model(&rows).Scan(ctx), ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Points, ShouldEqual, 25.0)
				So(*rows[0].Position, ShouldEqual, 1)
			})
		})
	})

	Convey("Given an empty batch", t, func() {
		store := dbtest.New(t)

		Convey("Then nothing is written", func() {
			So(upsert[models.RaceResult](ctx, store.DB, nil, resultConflict, resultColumns), ShouldBeNil)
		})
	})
}

func TestCopyRows(t *testing.T) {
	ctx := context.Background()

	Convey("Given a source smaller than one batch", t, func() {
		store := dbtest.New(t)
		src := ergastSource(t, 3)

		Convey("When lap times are imported", func() {
			n, err := importLapTimes(ctx, src, store.DB)

			Convey("Then the partial batch is flushed", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 3)
				So(countLaps(ctx, store), ShouldEqual, 3)
			})

			Convey("Then a second run replaces rather than duplicates", func() {
				n, err := importLapTimes(ctx, src, store.DB)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 3)
				So(countLaps(ctx, store), ShouldEqual, 3)
			})
		})
	})

	Convey("Given a source one row past a full batch", t, func() {
		store := dbtest.New(t)
		src := ergastSource(t, batchSize+1)

		Convey("Then both the full and the trailing batch land", func() {
			n, err := importLapTimes(ctx, src, store.DB)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, batchSize+1)
			So(countLaps(ctx, store), ShouldEqual, batchSize+1)
		})
	})
}
