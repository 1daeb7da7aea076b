package models

import "github.com/uptrace/bun"

// Season is a championship year.
type Season struct {
	bun.BaseModel `bun:"table:seasons,alias:s"`

	Year int     `bun:"year,pk" json:"year"`
	URL  *string `bun:"url" json:"url,omitempty"`
}
