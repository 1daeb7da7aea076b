package models

import (
	"time"

	"github.com/uptrace/bun"
)

// LapTime is a single lap by a driver in a race.
type LapTime struct {
	bun.BaseModel `bun:"table:lap_times,alias:lt"`

	LapTimeID    int64   `bun:"lap_time_id,pk,autoincrement" json:"lapTimeID"`
	RaceID       int64   `bun:"race_id,notnull,unique:lap_times_race_driver_lap" json:"raceID"`
	DriverID     int64   `bun:"driver_id,notnull,unique:lap_times_race_driver_lap" json:"driverID"`
	Lap          int     `bun:"lap,notnull,unique:lap_times_race_driver_lap" json:"lap"`
	Position     *int    `bun:"position" json:"position,omitempty"`
	TimeString   *string `bun:"time_string" json:"timeString,omitempty"`
	Milliseconds *int64  `bun:"milliseconds" json:"milliseconds,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
}

// PitStop is a single stop by a driver in a race.
type PitStop struct {
	bun.BaseModel `bun:"table:pit_stops,alias:ps"`

	PitStopID            int64   `bun:"pit_stop_id,pk,autoincrement" json:"pitStopID"`
	RaceID               int64   `bun:"race_id,notnull,unique:pit_stops_race_driver_stop" json:"raceID"`
	DriverID             int64   `bun:"driver_id,notnull,unique:pit_stops_race_driver_stop" json:"driverID"`
	Stop                 int     `bun:"stop,notnull,unique:pit_stops_race_driver_stop" json:"stop"`
	Lap                  int     `bun:"lap,notnull" json:"lap"`
	TimeString           *string `bun:"time_string" json:"timeString,omitempty"`
	DurationString       *string `bun:"duration_string" json:"durationString,omitempty"`
	DurationMilliseconds *int64  `bun:"duration_milliseconds" json:"durationMilliseconds,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
}
