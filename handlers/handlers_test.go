package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/padraicbc/f1analytics/analytics"
	"github.com/padraicbc/f1analytics/db/dbtest"
)

func newServer(t *testing.T, reports Reports) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	New(reports, zaptest.NewLogger(t)).Register(e.Group("/api"))
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func fixture(t *testing.T) *dbtest.Store {
	s := dbtest.New(t)
	s.Circuit(1, "Spa-Francorchamps", "Belgium").
		Driver(1, "HAM", "Lewis", "Hamilton").
		Driver(2, "RUS", "George", "Russell").
		Constructor(1, "Mercedes").
		Race(1, 2024, 14, 1, "Belgian Grand Prix", "2024-07-28").
		Qualified(1, 1, 1, 3).
		Qualified(1, 2, 1, 6).
		Results(
			dbtest.Result{Race: 1, Driver: 1, Constructor: 1, Position: dbtest.Pos(1), Points: 25},
			dbtest.Result{Race: 1, Driver: 2, Constructor: 1, Position: dbtest.Pos(2), Points: 18},
		)
	return s
}

func TestReportRoutes(t *testing.T) {
	Convey("Given the API over a populated store", t, func() {
		e := newServer(t, analytics.New(fixture(t).ReadOnly()))

		Convey("Then every report route answers with JSON", func() {
			for _, path := range []string{
				"/api/overview",
				"/api/drivers",
				"/api/seasons",
				"/api/drivers/performance",
				"/api/constructors/performance",
				"/api/races",
				"/api/championship",
				"/api/circuits",
			} {
				rec := get(e, path)
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get(echo.HeaderContentType), ShouldStartWith, echo.MIMEApplicationJSON)
			}
		})

		Convey("Then driver performance carries the computed rates", func() {
			var rows []analytics.DriverPerformance
			rec := get(e, "/api/drivers/performance")
			So(json.Unmarshal(rec.Body.Bytes(), &rows), ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].DriverName, ShouldEqual, "Lewis Hamilton")
			So(rows[0].WinRate, ShouldEqual, 100.0)
		})

		Convey("Then head-to-head accepts codes", func() {
			var h2h analytics.HeadToHead
			rec := get(e, "/api/head-to-head?driver1=HAM&driver2=rus")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(json.Unmarshal(rec.Body.Bytes(), &h2h), ShouldBeNil)
			So(h2h.Driver1ID, ShouldEqual, int64(1))
			So(h2h.Driver2ID, ShouldEqual, int64(2))
			So(h2h.Summary.Driver1Wins, ShouldEqual, 1)
		})

		Convey("Then head-to-head without common races has a null summary", func() {
			rec := get(e, "/api/head-to-head?driver1=1&driver2=77")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"summary":null`)
			So(rec.Body.String(), ShouldContainSubstring, `"races":[]`)
		})

		Convey("Then a missing driver parameter is a bad request", func() {
			So(get(e, "/api/head-to-head?driver1=1").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Then an unknown driver ref is not found", func() {
			So(get(e, "/api/head-to-head?driver1=HAM&driver2=nobody").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Then the championship season is validated", func() {
			So(get(e, "/api/championship?season=2024").Code, ShouldEqual, http.StatusOK)
			So(get(e, "/api/championship?season=1800").Code, ShouldEqual, http.StatusBadRequest)
			So(get(e, "/api/championship?season=abc").Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

type failingReports struct {
	Reports
}

func (failingReports) RaceAnalysis(context.Context) ([]analytics.RaceSummary, error) {
	return nil, &analytics.QueryError{Report: "race_analysis", Err: errors.New("no such table: races")}
}

func (failingReports) ResolveDriver(context.Context, string) (int64, error) {
	return 0, analytics.ErrDriverNotFound
}

func TestReportErrors(t *testing.T) {
	Convey("Given a store that cannot answer", t, func() {
		e := newServer(t, failingReports{})

		Convey("Then the data access error surfaces as a server error", func() {
			rec := get(e, "/api/races")
			So(rec.Code, ShouldEqual, http.StatusInternalServerError)
			So(rec.Body.String(), ShouldContainSubstring, "no such table")
		})
	})
}

func TestReportErrorsLogged(t *testing.T) {
	Convey("Given a handler logging into an observed core", t, func() {
		core, logs := observer.New(zapcore.InfoLevel)
		e := echo.New()
		e.Validator = NewValidator()
		New(failingReports{}, zap.New(core)).Register(e.Group("/api"))

		Convey("When a report fails with a data access error", func() {
			So(get(e, "/api/races").Code, ShouldEqual, http.StatusInternalServerError)

			Convey("Then the failure is logged at error level", func() {
				entries := logs.FilterMessage("report request failed").All()
				So(entries, ShouldHaveLength, 1)
				So(entries[0].Level, ShouldEqual, zapcore.ErrorLevel)
			})
		})

		Convey("When a driver key is unknown", func() {
			So(get(e, "/api/head-to-head?driver1=nobody&driver2=1").Code, ShouldEqual, http.StatusNotFound)

			Convey("Then nothing is logged", func() {
				So(logs.Len(), ShouldEqual, 0)
			})
		})
	})
}
