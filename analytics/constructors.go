package analytics

import (
	"context"
	"time"
)

// ConstructorPerformance is one team's line over classified finishes.
type ConstructorPerformance struct {
	ConstructorID     int64   `bun:"constructor_id" json:"constructorID"`
	ConstructorName   string  `bun:"constructor_name" json:"constructorName"`
	Nationality       *string `bun:"nationality" json:"nationality,omitempty"`
	DriversUsed       int     `bun:"drivers_used" json:"driversUsed"`
	TotalEntries      int     `bun:"total_entries" json:"totalEntries"`
	TotalPoints       float64 `bun:"total_points" json:"totalPoints"`
	AvgPointsPerEntry float64 `bun:"avg_points_per_entry" json:"avgPointsPerEntry"`
	AvgPosition       float64 `bun:"avg_position" json:"avgPosition"`
	Wins              int     `bun:"wins" json:"wins"`
	Podiums           int     `bun:"podiums" json:"podiums"`
	PointsFinishes    int     `bun:"points_finishes" json:"pointsFinishes"`
	FastestLaps       int     `bun:"fastest_laps" json:"fastestLaps"`

	PodiumRate float64 `bun:"-" json:"podiumRate"`
	WinRate    float64 `bun:"-" json:"winRate"`
	PointsRate float64 `bun:"-" json:"pointsRate"`
}

const constructorPerformanceSQL = `
SELECT
	c.constructor_id,
	c.name AS constructor_name,
	c.nationality,
	COUNT(DISTINCT rr.driver_id) AS drivers_used,
	COUNT(rr.race_id) AS total_entries,
	SUM(rr.points) AS total_points,
	AVG(rr.points) AS avg_points_per_entry,
	AVG(rr.position) AS avg_position,
	SUM(CASE WHEN rr.position = 1 THEN 1 ELSE 0 END) AS wins,
	SUM(CASE WHEN rr.position <= 3 THEN 1 ELSE 0 END) AS podiums,
	SUM(CASE WHEN rr.position <= 10 THEN 1 ELSE 0 END) AS points_finishes,
	COUNT(rr.fastest_lap) AS fastest_laps
FROM constructors c
JOIN race_results rr ON c.constructor_id = rr.constructor_id
WHERE rr.position IS NOT NULL
GROUP BY c.constructor_id, c.name, c.nationality
ORDER BY total_points DESC, c.constructor_id
`

// ConstructorPerformance returns one row per constructor with at least one
// classified finish, ordered by total points descending.
func (e *Engine) ConstructorPerformance(ctx context.Context) (rows []ConstructorPerformance, err error) {
	const report = "constructor_performance"
	start := time.Now()
	n := 0
	defer func() { e.track(report, start, &n, &err) }()

	if err = e.scan(ctx, report, &rows, constructorPerformanceSQL); err != nil {
		return nil, err
	}
	for i := range rows {
		r := &rows[i]
		r.PodiumRate = rate(r.Podiums, r.TotalEntries)
		r.WinRate = rate(r.Wins, r.TotalEntries)
		r.PointsRate = rate(r.PointsFinishes, r.TotalEntries)
	}

	if rows == nil {
		rows = []ConstructorPerformance{}
	}
	n = len(rows)
	return rows, nil
}
