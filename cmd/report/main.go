// cmd/report/main.go
// Prints the analytics reports for the configured store.
//
// Usage:
//
//	DB_PATH=data/f1_database.db go run ./cmd/report -top 10 -season 2024
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/padraicbc/f1analytics/analytics"
	"github.com/padraicbc/f1analytics/config"
	"github.com/padraicbc/f1analytics/db"
	applog "github.com/padraicbc/f1analytics/logger"
)

func main() {
	top := flag.Int("top", 5, "rows per report")
	season := flag.Int("season", 0, "championship season (0 = all)")
	flag.Parse()

	cfg := config.Load()
	logger, err := applog.NewConsole(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	bdb, err := db.Open(cfg, db.ReadOnly)
	if err != nil {
		logger.Fatal("open store failed", zap.Error(err))
	}
	defer bdb.Close()

	logger.Info("using store", zap.String("path", cfg.DBPath), zap.Bool("postgres", cfg.IsPostgres()))

	e := analytics.New(bdb, analytics.WithLogger(logger))
	if err := run(context.Background(), e, os.Stdout, *top, *season); err != nil {
		logger.Fatal("report failed", zap.Error(err))
	}
}

func run(ctx context.Context, e *analytics.Engine, out io.Writer, top, season int) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	drivers, err := e.DriverPerformance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nDRIVER PERFORMANCE")
	fmt.Fprintln(w, "driver\tpoints\tavg pos\tpodium %\tconsistency")
	for _, d := range head(drivers, top) {
		fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%.1f\t%.2f\n", d.DriverName, d.TotalPoints, d.AvgPosition, d.PodiumRate, d.PositionConsistency)
	}

	teams, err := e.ConstructorPerformance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nCONSTRUCTOR PERFORMANCE")
	fmt.Fprintln(w, "constructor\tpoints\tavg pos\tpodium %")
	for _, c := range head(teams, top) {
		fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%.1f\n", c.ConstructorName, c.TotalPoints, c.AvgPosition, c.PodiumRate)
	}

	progression, err := e.ChampionshipProgression(ctx, season)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nCHAMPIONSHIP PROGRESSION")
	fmt.Fprintln(w, "year\tround\tdriver\trace pts\ttotal")
	for _, p := range head(progression, top*3) {
		fmt.Fprintf(w, "%d\t%d\t%s\t%.1f\t%.1f\n", p.Year, p.Round, p.DriverName, p.RacePoints, p.CumulativePoints)
	}

	circuits, err := e.CircuitPerformance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nCIRCUIT PERFORMANCE")
	fmt.Fprintln(w, "circuit\traces\ttop driver\twins")
	for _, c := range head(circuits, top) {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", c.CircuitName, c.TotalRaces, deref(c.MostSuccessfulDriver), derefInt(c.DriverWinsAtCircuit))
	}

	return nil
}

func head[T any](rows []T, n int) []T {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func derefInt(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(*n)
}
