package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Race is a grand prix. (year, round) is unique.
type Race struct {
	bun.BaseModel `bun:"table:races,alias:r"`

	RaceID    int64     `bun:"race_id,pk" json:"raceID"`
	Year      int       `bun:"year,notnull,unique:races_year_round" json:"year"`
	Round     int       `bun:"round,notnull,unique:races_year_round" json:"round"`
	CircuitID int64     `bun:"circuit_id,notnull" json:"circuitID"`
	Name      string    `bun:"name,notnull" json:"name"`
	Date      time.Time `bun:"date,notnull,type:date" json:"date"`
	Time      *string   `bun:"time" json:"time,omitempty"`
	URL       *string   `bun:"url" json:"url,omitempty"`

	FP1Date    *time.Time `bun:"fp1_date,type:date" json:"fp1Date,omitempty"`
	FP1Time    *string    `bun:"fp1_time" json:"fp1Time,omitempty"`
	FP2Date    *time.Time `bun:"fp2_date,type:date" json:"fp2Date,omitempty"`
	FP2Time    *string    `bun:"fp2_time" json:"fp2Time,omitempty"`
	FP3Date    *time.Time `bun:"fp3_date,type:date" json:"fp3Date,omitempty"`
	FP3Time    *string    `bun:"fp3_time" json:"fp3Time,omitempty"`
	QualiDate  *time.Time `bun:"quali_date,type:date" json:"qualiDate,omitempty"`
	QualiTime  *string    `bun:"quali_time" json:"qualiTime,omitempty"`
	SprintDate *time.Time `bun:"sprint_date,type:date" json:"sprintDate,omitempty"`
	SprintTime *string    `bun:"sprint_time" json:"sprintTime,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`

	Circuit *Circuit `bun:"rel:belongs-to,join:circuit_id=circuit_id" json:"-"`
}
