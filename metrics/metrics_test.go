package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/padraicbc/f1analytics/analytics"
	"github.com/padraicbc/f1analytics/db/dbtest"
)

func TestObserveReport(t *testing.T) {
	Convey("Given a recorder", t, func() {
		r := New()

		Convey("When a report succeeds and another fails", func() {
			r.ObserveReport("race_analysis", time.Now(), nil)
			r.ObserveReport("race_analysis", time.Now(), errors.New("boom"))

			Convey("Then both durations and one error are recorded", func() {
				So(testutil.CollectAndCount(r.reportDuration), ShouldEqual, 1)
				So(testutil.ToFloat64(r.reportErrors.WithLabelValues("race_analysis")), ShouldEqual, 1.0)
			})
		})

		Convey("When the registry is scraped", func() {
			r.ObserveReport("overview", time.Now(), nil)
			rec := httptest.NewRecorder()
			r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			Convey("Then report metrics are exposed", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(strings.Contains(rec.Body.String(), "f1analytics_report_duration_seconds"), ShouldBeTrue)
			})

			Convey("Then the registry gathers the report families", func() {
				n, err := testutil.GatherAndCount(r.Registry(), "f1analytics_report_duration_seconds")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
			})
		})
	})
}

func TestQueryHook(t *testing.T) {
	Convey("Given an engine whose store handle carries the query hook", t, func() {
		store := dbtest.New(t)
		r := New()
		ro := store.ReadOnly()
		ro.AddQueryHook(r.QueryHook())

		e := analytics.New(ro, analytics.WithObserver(r))

		Convey("When a report runs", func() {
			_, err := e.ConstructorPerformance(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the select is timed and the report observed", func() {
				So(testutil.CollectAndCount(r.queryDuration), ShouldEqual, 1)
				So(testutil.CollectAndCount(r.reportDuration), ShouldEqual, 1)
				So(testutil.ToFloat64(r.queryErrors.WithLabelValues("SELECT")), ShouldEqual, 0.0)
			})
		})
	})
}
