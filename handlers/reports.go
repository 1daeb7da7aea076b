package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type headToHeadQuery struct {
	Driver1 string `query:"driver1" validate:"required"`
	Driver2 string `query:"driver2" validate:"required"`
}

type championshipQuery struct {
	Season int `query:"season" validate:"omitempty,gte=1950,lte=2100"`
}

// Overview returns the headline counts.
func (h *Handler) Overview(c echo.Context) error {
	ov, err := h.reports.Overview(c.Request().Context())
	if err != nil {
		return h.reportError(err)
	}
	return c.JSON(http.StatusOK, ov)
}

// Drivers returns the driver selector list.
func (h *Handler) Drivers(c echo.Context) error {
	rows, err := h.reports.Drivers(c.Request().Context())
	if err != nil {
		return h.reportError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Seasons returns the years with races.
func (h *Handler) Seasons(c echo.Context) error {
	years, err := h.reports.Seasons(c.Request().Context())
	if err != nil {
		return h.reportError(err)
	}
	return c.JSON(http.StatusOK, years)
}

// DriverPerformance returns per-driver metrics.
func (h *Handler) DriverPerformance(c echo.Context) error {
	rows, err := h.reports.DriverPerformance(c.Request().Context())
	if err != nil {
		return h.reportError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// ConstructorPerformance returns per-constructor metrics.
func (h *Handler) ConstructorPerformance(c echo.Context) error {
	rows, err := h.reports.ConstructorPerformance(c.Request().Context())
	if err != nil {
		return h.reportError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Races returns one summary per race.
func (h *Handler) Races(c echo.Context) error {
	rows, err := h.reports.RaceAnalysis(c.Request().Context())
	if err != nil {
		return h.reportError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// HeadToHead compares two drivers given by id, ref or code.
func (h *Handler) HeadToHead(c echo.Context) error {
	var q headToHeadQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	ctx := c.Request().Context()
	d1, err := h.reports.ResolveDriver(ctx, q.Driver1)
	if err != nil {
		return h.reportError(err)
	}
	d2, err := h.reports.ResolveDriver(ctx, q.Driver2)
	if err != nil {
		return h.reportError(err)
	}

	h2h, err := h.reports.HeadToHead(ctx, d1, d2)
	if err != nil {
		return h.reportError(err)
	}
	return c.JSON(http.StatusOK, h2h)
}

// Championship returns cumulative points per round, optionally for one season.
func (h *Handler) Championship(c echo.Context) error {
	var q championshipQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	rows, err := h.reports.ChampionshipProgression(c.Request().Context(), q.Season)
	if err != nil {
		return h.reportError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Circuits returns per-circuit summaries.
func (h *Handler) Circuits(c echo.Context) error {
	rows, err := h.reports.CircuitPerformance(c.Request().Context())
	if err != nil {
		return h.reportError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
