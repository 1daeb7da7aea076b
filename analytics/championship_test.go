package analytics_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/padraicbc/f1analytics/analytics"
	"github.com/padraicbc/f1analytics/db/dbtest"
)

func TestChampionshipProgression(t *testing.T) {
	ctx := context.Background()

	Convey("Given the season fixture", t, func() {
		rows, err := engineFor(seasonFixture(t)).ChampionshipProgression(ctx, 0)
		So(err, ShouldBeNil)

		Convey("Then there is one row per race result", func() {
			So(rows, ShouldHaveLength, 10)
		})

		Convey("Then cumulative points are the running sum of race points", func() {
			sums := map[int64]float64{}
			last := map[int64]float64{}
			for _, r := range rows {
				sums[r.DriverID] += r.RacePoints
				So(r.CumulativePoints, ShouldEqual, sums[r.DriverID])
				So(r.CumulativePoints, ShouldBeGreaterThanOrEqualTo, last[r.DriverID])
				last[r.DriverID] = r.CumulativePoints
			}
			So(last[norris], ShouldEqual, 58.0)
			So(last[verstappen], ShouldEqual, 43.0)
		})

		Convey("Then rows within a round lead with the championship leader", func() {
			So(rows[0].Round, ShouldEqual, 1)
			So(rows[0].DriverID, ShouldEqual, verstappen)
			final := rows[len(rows)-1]
			So(final.Round, ShouldEqual, 3)
		})
	})

	Convey("Given two seasons", t, func() {
		s := dbtest.New(t)
		s.Circuit(1, "Silverstone", "UK").
			Driver(1, "RUS", "George", "Russell").
			Constructor(1, "Mercedes").
			Race(1, 2023, 1, 1, "2023 Round 1", "2023-07-09").
			Race(2, 2023, 2, 1, "2023 Round 2", "2023-07-16").
			Race(3, 2024, 1, 1, "2024 Round 1", "2024-07-07").
			Results(
				dbtest.Result{Race: 1, Driver: 1, Constructor: 1, Position: dbtest.Pos(2), Points: 18},
				dbtest.Result{Race: 2, Driver: 1, Constructor: 1, Position: dbtest.Pos(3), Points: 15},
				dbtest.Result{Race: 3, Driver: 1, Constructor: 1, Position: dbtest.Pos(1), Points: 25},
			)
		e := engineFor(s)

		Convey("Then the running total restarts each season", func() {
			rows, err := e.ChampionshipProgression(ctx, 0)
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 3)
			So(rows[1].CumulativePoints, ShouldEqual, 33.0)
			So(rows[2].Year, ShouldEqual, 2024)
			So(rows[2].CumulativePoints, ShouldEqual, 25.0)
		})

		Convey("Then a season filter keeps only that year", func() {
			rows, err := e.ChampionshipProgression(ctx, 2023)
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			for _, r := range rows {
				So(r.Year, ShouldEqual, 2023)
			}
		})

		Convey("Then an unknown season is empty", func() {
			rows, err := e.ChampionshipProgression(ctx, 1950)
			So(err, ShouldBeNil)
			So(rows, ShouldResemble, []analytics.ProgressionPoint{})
		})
	})
}
