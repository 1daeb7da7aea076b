package models

import (
	"time"

	"github.com/uptrace/bun"
)

// RaceResult holds one driver's classification in one race.
// Position is nil when the driver was not classified.
type RaceResult struct {
	bun.BaseModel `bun:"table:race_results,alias:rr"`

	ResultID         int64    `bun:"result_id,pk" json:"resultID"`
	RaceID           int64    `bun:"race_id,notnull,unique:race_results_race_driver" json:"raceID"`
	DriverID         int64    `bun:"driver_id,notnull,unique:race_results_race_driver" json:"driverID"`
	ConstructorID    int64    `bun:"constructor_id,notnull" json:"constructorID"`
	Number           *int     `bun:"number" json:"number,omitempty"`
	Grid             *int     `bun:"grid" json:"grid,omitempty"`
	Position         *int     `bun:"position" json:"position,omitempty"`
	PositionText     *string  `bun:"position_text" json:"positionText,omitempty"`
	PositionOrder    *int     `bun:"position_order" json:"positionOrder,omitempty"`
	Points           float64  `bun:"points,notnull,default:0" json:"points"`
	Laps             *int     `bun:"laps" json:"laps,omitempty"`
	TimeMilliseconds *int64   `bun:"time_milliseconds" json:"timeMilliseconds,omitempty"`
	FastestLap       *int     `bun:"fastest_lap" json:"fastestLap,omitempty"`
	FastestLapRank   *int     `bun:"fastest_lap_rank" json:"fastestLapRank,omitempty"`
	FastestLapTime   *string  `bun:"fastest_lap_time" json:"fastestLapTime,omitempty"`
	FastestLapSpeed  *float64 `bun:"fastest_lap_speed" json:"fastestLapSpeed,omitempty"`
	StatusID         *int64   `bun:"status_id" json:"statusID,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
}

// QualifyingResult holds one driver's qualifying session.
type QualifyingResult struct {
	bun.BaseModel `bun:"table:qualifying_results,alias:q"`

	QualifyID      int64   `bun:"qualify_id,pk" json:"qualifyID"`
	RaceID         int64   `bun:"race_id,notnull,unique:qualifying_results_race_driver" json:"raceID"`
	DriverID       int64   `bun:"driver_id,notnull,unique:qualifying_results_race_driver" json:"driverID"`
	ConstructorID  int64   `bun:"constructor_id,notnull" json:"constructorID"`
	Number         *int    `bun:"number" json:"number,omitempty"`
	Position       *int    `bun:"position" json:"position,omitempty"`
	Q1Time         *string `bun:"q1_time" json:"q1Time,omitempty"`
	Q1Milliseconds *int64  `bun:"q1_milliseconds" json:"q1Milliseconds,omitempty"`
	Q2Time         *string `bun:"q2_time" json:"q2Time,omitempty"`
	Q2Milliseconds *int64  `bun:"q2_milliseconds" json:"q2Milliseconds,omitempty"`
	Q3Time         *string `bun:"q3_time" json:"q3Time,omitempty"`
	Q3Milliseconds *int64  `bun:"q3_milliseconds" json:"q3Milliseconds,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
}
