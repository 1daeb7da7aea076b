package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Circuit is a venue races are held at.
type Circuit struct {
	bun.BaseModel `bun:"table:circuits,alias:ci"`

	CircuitID  int64    `bun:"circuit_id,pk" json:"circuitID"`
	CircuitRef string   `bun:"circuit_ref,notnull,unique" json:"circuitRef"`
	Name       string   `bun:"name,notnull" json:"name"`
	Location   *string  `bun:"location" json:"location,omitempty"`
	Country    *string  `bun:"country" json:"country,omitempty"`
	Lat        *float64 `bun:"lat" json:"lat,omitempty"`
	Lng        *float64 `bun:"lng" json:"lng,omitempty"`
	Alt        *int     `bun:"alt" json:"alt,omitempty"`
	URL        *string  `bun:"url" json:"url,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
}
