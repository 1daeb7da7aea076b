package analytics

import (
	"context"
	"time"
)

// RaceSummary is one race with its field size and winner.
// Winner fields are nil when no classified winner was recorded.
type RaceSummary struct {
	RaceID               int64     `bun:"race_id" json:"raceID"`
	Year                 int       `bun:"year" json:"year"`
	Round                int       `bun:"round" json:"round"`
	RaceName             string    `bun:"race_name" json:"raceName"`
	Date                 time.Time `bun:"date" json:"date"`
	CircuitName          string    `bun:"circuit_name" json:"circuitName"`
	Country              *string   `bun:"country" json:"country,omitempty"`
	Participants         int       `bun:"participants" json:"participants"`
	AvgFinishingPosition *float64  `bun:"avg_finishing_position" json:"avgFinishingPosition,omitempty"`
	Winner               *string   `bun:"winner" json:"winner,omitempty"`
	WinningConstructor   *string   `bun:"winning_constructor" json:"winningConstructor,omitempty"`
	WinnerPoints         *float64  `bun:"winner_points" json:"winnerPoints,omitempty"`
}

const raceAnalysisSQL = `
SELECT
	r.race_id,
	r.year,
	r.round,
	r.name AS race_name,
	r.date,
	ci.name AS circuit_name,
	ci.country,
	COUNT(rr.driver_id) AS participants,
	AVG(rr.position) AS avg_finishing_position,
	d.forename || ' ' || d.surname AS winner,
	wc.name AS winning_constructor,
	w.points AS winner_points
FROM races r
JOIN circuits ci ON r.circuit_id = ci.circuit_id
LEFT JOIN race_results rr ON r.race_id = rr.race_id
LEFT JOIN race_results w ON w.race_id = r.race_id AND w.position = 1
LEFT JOIN drivers d ON w.driver_id = d.driver_id
LEFT JOIN constructors wc ON w.constructor_id = wc.constructor_id
GROUP BY r.race_id, r.year, r.round, r.name, r.date, ci.name, ci.country,
	d.forename, d.surname, wc.name, w.points
ORDER BY r.date DESC, r.race_id DESC
`

// RaceAnalysis returns one row per race, newest first.
func (e *Engine) RaceAnalysis(ctx context.Context) (rows []RaceSummary, err error) {
	const report = "race_analysis"
	start := time.Now()
	n := 0
	defer func() { e.track(report, start, &n, &err) }()

	if err = e.scan(ctx, report, &rows, raceAnalysisSQL); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []RaceSummary{}
	}
	n = len(rows)
	return rows, nil
}

// Seasons returns the years that have races, newest first.
func (e *Engine) Seasons(ctx context.Context) (years []int, err error) {
	const report = "seasons"
	start := time.Now()
	n := 0
	defer func() { e.track(report, start, &n, &err) }()

	if err = e.scan(ctx, report, &years, `SELECT DISTINCT year FROM races ORDER BY year DESC`); err != nil {
		return nil, err
	}
	if years == nil {
		years = []int{}
	}
	n = len(years)
	return years, nil
}
