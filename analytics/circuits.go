package analytics

import (
	"context"
	"time"
)

// CircuitPerformance summarises the races held at one circuit.
type CircuitPerformance struct {
	CircuitID                 int64    `bun:"circuit_id" json:"circuitID"`
	CircuitName               string   `bun:"circuit_name" json:"circuitName"`
	Country                   *string  `bun:"country" json:"country,omitempty"`
	TotalRaces                int      `bun:"total_races" json:"totalRaces"`
	AvgPosition               *float64 `bun:"avg_position" json:"avgPosition,omitempty"`
	MostSuccessfulDriver      *string  `bun:"most_successful_driver" json:"mostSuccessfulDriver,omitempty"`
	DriverWinsAtCircuit       *int     `bun:"driver_wins_at_circuit" json:"driverWinsAtCircuit,omitempty"`
	MostSuccessfulConstructor *string  `bun:"most_successful_constructor" json:"mostSuccessfulConstructor,omitempty"`
	ConstructorWinsAtCircuit  *int     `bun:"constructor_wins_at_circuit" json:"constructorWinsAtCircuit,omitempty"`
}

// Equal win tallies go to the lowest driver/constructor id.
const circuitPerformanceSQL = `
SELECT
	ci.circuit_id,
	ci.name AS circuit_name,
	ci.country,
	cs.total_races,
	cs.avg_position,
	d.forename || ' ' || d.surname AS most_successful_driver,
	dw.wins AS driver_wins_at_circuit,
	k.name AS most_successful_constructor,
	kw.wins AS constructor_wins_at_circuit
FROM circuits ci
JOIN (
	SELECT r.circuit_id, COUNT(DISTINCT r.race_id) AS total_races, AVG(rr.position) AS avg_position
	FROM races r
	JOIN race_results rr ON r.race_id = rr.race_id
	GROUP BY r.circuit_id
) cs ON cs.circuit_id = ci.circuit_id
LEFT JOIN (
	SELECT
		r.circuit_id,
		rr.driver_id,
		COUNT(*) AS wins,
		ROW_NUMBER() OVER (PARTITION BY r.circuit_id ORDER BY COUNT(*) DESC, rr.driver_id) AS rn
	FROM races r
	JOIN race_results rr ON r.race_id = rr.race_id
	WHERE rr.position = 1
	GROUP BY r.circuit_id, rr.driver_id
) dw ON dw.circuit_id = ci.circuit_id AND dw.rn = 1
LEFT JOIN drivers d ON dw.driver_id = d.driver_id
LEFT JOIN (
	SELECT
		r.circuit_id,
		rr.constructor_id,
		COUNT(*) AS wins,
		ROW_NUMBER() OVER (PARTITION BY r.circuit_id ORDER BY COUNT(*) DESC, rr.constructor_id) AS rn
	FROM races r
	JOIN race_results rr ON r.race_id = rr.race_id
	WHERE rr.position = 1
	GROUP BY r.circuit_id, rr.constructor_id
) kw ON kw.circuit_id = ci.circuit_id AND kw.rn = 1
LEFT JOIN constructors k ON kw.constructor_id = k.constructor_id
ORDER BY cs.total_races DESC, ci.circuit_id
`

// CircuitPerformance returns one row per circuit that has results,
// busiest circuits first.
func (e *Engine) CircuitPerformance(ctx context.Context) (rows []CircuitPerformance, err error) {
	const report = "circuit_performance"
	start := time.Now()
	n := 0
	defer func() { e.track(report, start, &n, &err) }()

	if err = e.scan(ctx, report, &rows, circuitPerformanceSQL); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []CircuitPerformance{}
	}
	n = len(rows)
	return rows, nil
}
