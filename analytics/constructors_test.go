package analytics_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConstructorPerformance(t *testing.T) {
	ctx := context.Background()

	Convey("Given the season fixture", t, func() {
		rows, err := engineFor(seasonFixture(t)).ConstructorPerformance(ctx)
		So(err, ShouldBeNil)

		Convey("Then every constructor with a classified finish appears once", func() {
			So(rows, ShouldHaveLength, 3)
		})

		Convey("Then rows are ordered by total points", func() {
			So(rows[0].ConstructorName, ShouldEqual, "McLaren")
			So(rows[0].TotalPoints, ShouldEqual, 58.0)
			So(rows[1].ConstructorName, ShouldEqual, "Ferrari")
			So(rows[1].TotalPoints, ShouldEqual, 52.0)
			So(rows[2].ConstructorName, ShouldEqual, "Red Bull")
			So(rows[2].TotalPoints, ShouldEqual, 43.0)
		})

		Convey("Then a team running two drivers counts both", func() {
			ferrari := rows[1]
			So(ferrari.DriversUsed, ShouldEqual, 2)
			So(ferrari.TotalEntries, ShouldEqual, 3)
			So(ferrari.Wins, ShouldEqual, 1)
			So(ferrari.Podiums, ShouldEqual, 2)
			So(ferrari.PointsFinishes, ShouldEqual, 3)
			So(ferrari.AvgPosition, ShouldAlmostEqual, 8.0/3.0, 1e-9)
		})

		Convey("Then rates are percentages of entries", func() {
			ferrari := rows[1]
			So(ferrari.WinRate, ShouldAlmostEqual, 100.0/3.0, 1e-9)
			So(ferrari.PodiumRate, ShouldAlmostEqual, 200.0/3.0, 1e-9)
			So(ferrari.PointsRate, ShouldEqual, 100.0)
		})
	})
}
