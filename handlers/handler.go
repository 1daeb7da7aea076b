package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/f1analytics/analytics"
)

// Reports is the analytics surface the API serves.
type Reports interface {
	Overview(ctx context.Context) (*analytics.Overview, error)
	Drivers(ctx context.Context) ([]analytics.DriverInfo, error)
	Seasons(ctx context.Context) ([]int, error)
	DriverPerformance(ctx context.Context) ([]analytics.DriverPerformance, error)
	ConstructorPerformance(ctx context.Context) ([]analytics.ConstructorPerformance, error)
	RaceAnalysis(ctx context.Context) ([]analytics.RaceSummary, error)
	HeadToHead(ctx context.Context, driver1, driver2 int64) (*analytics.HeadToHead, error)
	ResolveDriver(ctx context.Context, key string) (int64, error)
	ChampionshipProgression(ctx context.Context, season int) ([]analytics.ProgressionPoint, error)
	CircuitPerformance(ctx context.Context) ([]analytics.CircuitPerformance, error)
}

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	reports Reports
	log     *zap.Logger
}

// New creates a Handler serving the given reports.
func New(reports Reports, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{reports: reports, log: log}
}

// Register mounts the report routes on g.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/overview", h.Overview)
	g.GET("/drivers", h.Drivers)
	g.GET("/seasons", h.Seasons)
	g.GET("/drivers/performance", h.DriverPerformance)
	g.GET("/constructors/performance", h.ConstructorPerformance)
	g.GET("/races", h.Races)
	g.GET("/head-to-head", h.HeadToHead)
	g.GET("/championship", h.Championship)
	g.GET("/circuits", h.Circuits)
}

// reportError maps an engine error onto an HTTP error.
func (h *Handler) reportError(err error) error {
	switch {
	case errors.Is(err, analytics.ErrDriverNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		h.log.Error("report request failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
