package analytics

import (
	"context"
	"time"
)

// Overview backs the dashboard's headline cards.
type Overview struct {
	Drivers      int `json:"drivers"`
	Constructors int `json:"constructors"`
	Races        int `json:"races"`
	TotalWins    int `json:"totalWins"`
}

type overviewCounts struct {
	Drivers      int `bun:"drivers"`
	Constructors int `bun:"constructors"`
	Races        int `bun:"races"`
	TotalWins    int `bun:"total_wins"`
}

// drivers matches the DriverPerformance row set: only drivers that qualified.
const overviewSQL = `
SELECT
	COUNT(DISTINCT CASE
		WHEN driver_id IN (SELECT driver_id FROM qualifying_results) THEN driver_id
	END) AS drivers,
	COUNT(DISTINCT constructor_id) AS constructors,
	COUNT(DISTINCT race_id) AS races,
	COALESCE(SUM(CASE WHEN position = 1 THEN 1 ELSE 0 END), 0) AS total_wins
FROM race_results
WHERE position IS NOT NULL
`

// Overview counts drivers, constructors and races with classified finishes.
func (e *Engine) Overview(ctx context.Context) (ov *Overview, err error) {
	const report = "overview"
	start := time.Now()
	n := 0
	defer func() { e.track(report, start, &n, &err) }()

	var counts []overviewCounts
	if err = e.scan(ctx, report, &counts, overviewSQL); err != nil {
		return nil, err
	}
	ov = &Overview{}
	if len(counts) > 0 {
		c := counts[0]
		ov.Drivers, ov.Constructors, ov.Races, ov.TotalWins = c.Drivers, c.Constructors, c.Races, c.TotalWins
		n = 1
	}
	return ov, nil
}
