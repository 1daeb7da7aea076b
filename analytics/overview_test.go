package analytics_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/padraicbc/f1analytics/analytics"
	"github.com/padraicbc/f1analytics/db/dbtest"
)

func TestOverview(t *testing.T) {
	ctx := context.Background()

	Convey("Given the season fixture", t, func() {
		ov, err := engineFor(seasonFixture(t)).Overview(ctx)

		Convey("Then classified participants and races are counted", func() {
			So(err, ShouldBeNil)
			So(ov, ShouldResemble, &analytics.Overview{
				Drivers:      3,
				Constructors: 3,
				Races:        3,
				TotalWins:    3,
			})
		})
	})

	Convey("Given the season fixture", t, func() {
		e := engineFor(seasonFixture(t))

		Convey("Then the driver card agrees with the driver performance table", func() {
			ov, err := e.Overview(ctx)
			So(err, ShouldBeNil)
			rows, err := e.DriverPerformance(ctx)
			So(err, ShouldBeNil)
			So(ov.Drivers, ShouldEqual, len(rows))
		})
	})

	Convey("Given an empty store", t, func() {
		ov, err := engineFor(dbtest.New(t)).Overview(ctx)

		Convey("Then every count is zero", func() {
			So(err, ShouldBeNil)
			So(*ov, ShouldResemble, analytics.Overview{})
		})
	})
}
