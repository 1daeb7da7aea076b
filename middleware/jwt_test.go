package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	. "github.com/smartystreets/goconvey/convey"
)

func serve(key []byte, authorization string) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	var client string
	e.GET("/api/overview", func(c echo.Context) error {
		client, _ = c.Get("client").(string)
		return c.NoContent(http.StatusOK)
	}, JWT(key))

	req := httptest.NewRequest(http.MethodGet, "/api/overview", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, client
}

func TestJWT(t *testing.T) {
	key := []byte("test-secret")

	Convey("Given a token signed with the service key", t, func() {
		tok, err := NewToken(key, "dashboard", time.Hour)
		So(err, ShouldBeNil)

		Convey("Then a bearer request is let through", func() {
			rec, client := serve(key, "Bearer "+tok)
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(client, ShouldEqual, "dashboard")
		})

		Convey("Then the bare token is accepted too", func() {
			rec, _ := serve(key, tok)
			So(rec.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then a different key rejects it", func() {
			rec, _ := serve([]byte("other"), "Bearer "+tok)
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
		})
	})

	Convey("Given an expired token", t, func() {
		tok, err := NewToken(key, "dashboard", -time.Minute)
		So(err, ShouldBeNil)

		Convey("Then it is rejected", func() {
			rec, _ := serve(key, "Bearer "+tok)
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
		})
	})

	Convey("Given no authorization header", t, func() {
		rec, _ := serve(key, "")

		Convey("Then the request is unauthorized", func() {
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
		})
	})
}
