package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DriverStanding is the drivers' championship table after a race.
type DriverStanding struct {
	bun.BaseModel `bun:"table:driver_standings,alias:ds"`

	StandingID   int64   `bun:"standing_id,pk" json:"standingID"`
	RaceID       int64   `bun:"race_id,notnull,unique:driver_standings_race_driver" json:"raceID"`
	DriverID     int64   `bun:"driver_id,notnull,unique:driver_standings_race_driver" json:"driverID"`
	Points       float64 `bun:"points,notnull,default:0" json:"points"`
	Position     *int    `bun:"position" json:"position,omitempty"`
	PositionText *string `bun:"position_text" json:"positionText,omitempty"`
	Wins         int     `bun:"wins,notnull,default:0" json:"wins"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
}

// ConstructorStanding is the constructors' championship table after a race.
type ConstructorStanding struct {
	bun.BaseModel `bun:"table:constructor_standings,alias:cs"`

	StandingID    int64   `bun:"standing_id,pk" json:"standingID"`
	RaceID        int64   `bun:"race_id,notnull,unique:constructor_standings_race_constructor" json:"raceID"`
	ConstructorID int64   `bun:"constructor_id,notnull,unique:constructor_standings_race_constructor" json:"constructorID"`
	Points        float64 `bun:"points,notnull,default:0" json:"points"`
	Position      *int    `bun:"position" json:"position,omitempty"`
	PositionText  *string `bun:"position_text" json:"positionText,omitempty"`
	Wins          int     `bun:"wins,notnull,default:0" json:"wins"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
}
