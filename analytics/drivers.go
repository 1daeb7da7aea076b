package analytics

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// DriverPerformance is one driver's career line over classified finishes.
type DriverPerformance struct {
	DriverID         int64    `bun:"driver_id" json:"driverID"`
	DriverName       string   `bun:"driver_name" json:"driverName"`
	Code             *string  `bun:"code" json:"code,omitempty"`
	Nationality      *string  `bun:"nationality" json:"nationality,omitempty"`
	Constructor      *string  `bun:"constructor" json:"constructor,omitempty"`
	RacesCompleted   int      `bun:"races_completed" json:"racesCompleted"`
	TotalPoints      float64  `bun:"total_points" json:"totalPoints"`
	AvgPointsPerRace float64  `bun:"avg_points_per_race" json:"avgPointsPerRace"`
	AvgPosition      float64  `bun:"avg_position" json:"avgPosition"`
	BestPosition     int      `bun:"best_position" json:"bestPosition"`
	WorstPosition    int      `bun:"worst_position" json:"worstPosition"`
	Wins             int      `bun:"wins" json:"wins"`
	Podiums          int      `bun:"podiums" json:"podiums"`
	PointsFinishes   int      `bun:"points_finishes" json:"pointsFinishes"`
	AvgGridPosition  *float64 `bun:"avg_grid_position" json:"avgGridPosition,omitempty"`
	AvgGridGain      *float64 `bun:"avg_grid_gain" json:"avgGridGain,omitempty"`
	FastestLaps      int      `bun:"fastest_laps" json:"fastestLaps"`

	// Computed after the query.
	PodiumRate          float64 `bun:"-" json:"podiumRate"`
	WinRate             float64 `bun:"-" json:"winRate"`
	PointsRate          float64 `bun:"-" json:"pointsRate"`
	PositionConsistency float64 `bun:"-" json:"positionConsistency"`
}

// DriverInfo is a selector entry.
type DriverInfo struct {
	DriverID    int64   `bun:"driver_id" json:"driverID"`
	DriverRef   string  `bun:"driver_ref" json:"driverRef"`
	Code        *string `bun:"code" json:"code,omitempty"`
	Name        string  `bun:"name" json:"name"`
	Nationality *string `bun:"nationality" json:"nationality,omitempty"`
}

// Drivers without a qualifying row are left out by the inner join on q.
// constructor is the team of the driver's most recent race.
const driverPerformanceSQL = `
SELECT
	d.driver_id,
	d.forename || ' ' || d.surname AS driver_name,
	d.code,
	d.nationality,
	(SELECT lc.name
	   FROM race_results lr
	   JOIN races lrc ON lrc.race_id = lr.race_id
	   JOIN constructors lc ON lc.constructor_id = lr.constructor_id
	  WHERE lr.driver_id = d.driver_id
	  ORDER BY lrc.date DESC, lrc.race_id DESC
	  LIMIT 1) AS constructor,
	COUNT(rr.race_id) AS races_completed,
	SUM(rr.points) AS total_points,
	AVG(rr.points) AS avg_points_per_race,
	AVG(rr.position) AS avg_position,
	MIN(rr.position) AS best_position,
	MAX(rr.position) AS worst_position,
	SUM(CASE WHEN rr.position = 1 THEN 1 ELSE 0 END) AS wins,
	SUM(CASE WHEN rr.position <= 3 THEN 1 ELSE 0 END) AS podiums,
	SUM(CASE WHEN rr.position <= 10 THEN 1 ELSE 0 END) AS points_finishes,
	AVG(rr.grid) AS avg_grid_position,
	(AVG(rr.grid) - AVG(rr.position)) AS avg_grid_gain,
	COUNT(rr.fastest_lap) AS fastest_laps
FROM race_results rr
JOIN drivers d ON rr.driver_id = d.driver_id
JOIN constructors c ON rr.constructor_id = c.constructor_id
JOIN (SELECT DISTINCT driver_id FROM qualifying_results) q ON q.driver_id = d.driver_id
WHERE rr.position IS NOT NULL
GROUP BY d.driver_id, d.forename, d.surname, d.code, d.nationality
ORDER BY total_points DESC, d.driver_id
`

const driverPositionsSQL = `
SELECT driver_id, position
FROM race_results
WHERE position IS NOT NULL
ORDER BY driver_id
`

type driverPosition struct {
	DriverID int64 `bun:"driver_id"`
	Position int   `bun:"position"`
}

// DriverPerformance returns one row per driver with at least one classified
// finish, ordered by total points descending.
func (e *Engine) DriverPerformance(ctx context.Context) (rows []DriverPerformance, err error) {
	const report = "driver_performance"
	start := time.Now()
	n := 0
	defer func() { e.track(report, start, &n, &err) }()

	if err = e.scan(ctx, report, &rows, driverPerformanceSQL); err != nil {
		return nil, err
	}

	var positions []driverPosition
	if err = e.scan(ctx, report, &positions, driverPositionsSQL); err != nil {
		return nil, err
	}
	byDriver := make(map[int64][]int)
	for _, p := range positions {
		byDriver[p.DriverID] = append(byDriver[p.DriverID], p.Position)
	}

	for i := range rows {
		r := &rows[i]
		r.PodiumRate = rate(r.Podiums, r.RacesCompleted)
		r.WinRate = rate(r.Wins, r.RacesCompleted)
		r.PointsRate = rate(r.PointsFinishes, r.RacesCompleted)
		r.PositionConsistency = round2(populationStdDev(byDriver[r.DriverID]))
	}

	if rows == nil {
		rows = []DriverPerformance{}
	}
	n = len(rows)
	return rows, nil
}

// Drivers lists every driver for selection, ordered by surname.
func (e *Engine) Drivers(ctx context.Context) (rows []DriverInfo, err error) {
	const report = "drivers"
	start := time.Now()
	n := 0
	defer func() { e.track(report, start, &n, &err) }()

	q := `
SELECT driver_id, driver_ref, code, forename || ' ' || surname AS name, nationality
FROM drivers
ORDER BY surname, forename, driver_id`
	if err = e.scan(ctx, report, &rows, q); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []DriverInfo{}
	}
	n = len(rows)
	return rows, nil
}

// ResolveDriver maps a numeric id, driver ref or code to a driver id.
// Numeric keys are returned as-is.
func (e *Engine) ResolveDriver(ctx context.Context, key string) (int64, error) {
	key = strings.TrimSpace(key)
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		return id, nil
	}

	var ids []int64
	q := `SELECT driver_id FROM drivers WHERE driver_ref = ? OR UPPER(code) = UPPER(?) ORDER BY driver_id LIMIT 1`
	if err := e.scan(ctx, "resolve_driver", &ids, q, key, key); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, ErrDriverNotFound
	}
	return ids[0], nil
}
