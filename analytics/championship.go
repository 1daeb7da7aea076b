package analytics

import (
	"context"
	"time"
)

// ProgressionPoint is a driver's race score and season running total after a round.
type ProgressionPoint struct {
	Year             int       `bun:"year" json:"year"`
	Round            int       `bun:"round" json:"round"`
	RaceName         string    `bun:"race_name" json:"raceName"`
	Date             time.Time `bun:"date" json:"date"`
	DriverID         int64     `bun:"driver_id" json:"driverID"`
	DriverName       string    `bun:"driver_name" json:"driverName"`
	RacePoints       float64   `bun:"race_points" json:"racePoints"`
	CumulativePoints float64   `bun:"cumulative_points" json:"cumulativePoints"`
}

// The running total restarts every season.
const championshipProgressionSQL = `
SELECT
	r.year,
	r.round,
	r.name AS race_name,
	r.date,
	d.driver_id,
	d.forename || ' ' || d.surname AS driver_name,
	rr.points AS race_points,
	SUM(rr.points) OVER (
		PARTITION BY d.driver_id, r.year
		ORDER BY r.round
		ROWS UNBOUNDED PRECEDING
	) AS cumulative_points
FROM races r
JOIN race_results rr ON r.race_id = rr.race_id
JOIN drivers d ON rr.driver_id = d.driver_id
WHERE (? = 0 OR r.year = ?)
ORDER BY r.year, r.round, cumulative_points DESC, d.driver_id
`

// ChampionshipProgression returns one row per race and driver with the
// cumulative points up to that round. season 0 means every season.
func (e *Engine) ChampionshipProgression(ctx context.Context, season int) (rows []ProgressionPoint, err error) {
	const report = "championship_progression"
	start := time.Now()
	n := 0
	defer func() { e.track(report, start, &n, &err) }()

	if err = e.scan(ctx, report, &rows, championshipProgressionSQL, season, season); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []ProgressionPoint{}
	}
	n = len(rows)
	return rows, nil
}
