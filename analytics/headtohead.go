package analytics

import (
	"context"
	"time"
)

// HeadToHeadRace is one race both drivers finished classified.
// Winner is 1 when driver 1 finished ahead, 2 for driver 2, 0 for the same position.
type HeadToHeadRace struct {
	RaceID          int64     `bun:"race_id" json:"raceID"`
	RaceName        string    `bun:"race_name" json:"raceName"`
	Date            time.Time `bun:"date" json:"date"`
	Driver1Name     string    `bun:"driver1_name" json:"driver1Name"`
	Driver1Position int       `bun:"driver1_position" json:"driver1Position"`
	Driver1Points   float64   `bun:"driver1_points" json:"driver1Points"`
	Driver2Name     string    `bun:"driver2_name" json:"driver2Name"`
	Driver2Position int       `bun:"driver2_position" json:"driver2Position"`
	Driver2Points   float64   `bun:"driver2_points" json:"driver2Points"`
	Winner          int       `bun:"winner" json:"winner"`
}

// HeadToHeadSummary totals a head-to-head table.
type HeadToHeadSummary struct {
	TotalRaces         int     `json:"totalRaces"`
	Driver1Wins        int     `json:"driver1Wins"`
	Driver2Wins        int     `json:"driver2Wins"`
	Ties               int     `json:"ties"`
	Driver1AvgPosition float64 `json:"driver1AvgPosition"`
	Driver2AvgPosition float64 `json:"driver2AvgPosition"`
	Driver1TotalPoints float64 `json:"driver1TotalPoints"`
	Driver2TotalPoints float64 `json:"driver2TotalPoints"`
}

// HeadToHead is the per-race comparison plus its summary.
// Summary is nil when the drivers share no classified race.
type HeadToHead struct {
	Driver1ID int64              `json:"driver1ID"`
	Driver2ID int64              `json:"driver2ID"`
	Races     []HeadToHeadRace   `json:"races"`
	Summary   *HeadToHeadSummary `json:"summary"`
}

const headToHeadSQL = `
SELECT
	r.race_id,
	r.name AS race_name,
	r.date,
	d1.forename || ' ' || d1.surname AS driver1_name,
	rr1.position AS driver1_position,
	rr1.points AS driver1_points,
	d2.forename || ' ' || d2.surname AS driver2_name,
	rr2.position AS driver2_position,
	rr2.points AS driver2_points,
	CASE
		WHEN rr1.position < rr2.position THEN 1
		WHEN rr1.position > rr2.position THEN 2
		ELSE 0
	END AS winner
FROM races r
JOIN race_results rr1 ON r.race_id = rr1.race_id AND rr1.driver_id = ?
JOIN race_results rr2 ON r.race_id = rr2.race_id AND rr2.driver_id = ?
JOIN drivers d1 ON rr1.driver_id = d1.driver_id
JOIN drivers d2 ON rr2.driver_id = d2.driver_id
WHERE rr1.position IS NOT NULL AND rr2.position IS NOT NULL
ORDER BY r.date, r.race_id
`

// HeadToHead compares two drivers over the races both finished classified.
func (e *Engine) HeadToHead(ctx context.Context, driver1, driver2 int64) (h2h *HeadToHead, err error) {
	const report = "head_to_head"
	start := time.Now()
	n := 0
	defer func() { e.track(report, start, &n, &err) }()

	var races []HeadToHeadRace
	if err = e.scan(ctx, report, &races, headToHeadSQL, driver1, driver2); err != nil {
		return nil, err
	}
	if races == nil {
		races = []HeadToHeadRace{}
	}
	n = len(races)

	return &HeadToHead{
		Driver1ID: driver1,
		Driver2ID: driver2,
		Races:     races,
		Summary:   summarize(races),
	}, nil
}

func summarize(races []HeadToHeadRace) *HeadToHeadSummary {
	if len(races) == 0 {
		return nil
	}

	s := &HeadToHeadSummary{TotalRaces: len(races)}
	p1 := make([]float64, 0, len(races))
	p2 := make([]float64, 0, len(races))
	for _, r := range races {
		switch r.Winner {
		case 1:
			s.Driver1Wins++
		case 2:
			s.Driver2Wins++
		default:
			s.Ties++
		}
		p1 = append(p1, float64(r.Driver1Position))
		p2 = append(p2, float64(r.Driver2Position))
		s.Driver1TotalPoints += r.Driver1Points
		s.Driver2TotalPoints += r.Driver2Points
	}
	s.Driver1AvgPosition = mean(p1)
	s.Driver2AvgPosition = mean(p2)
	return s
}
