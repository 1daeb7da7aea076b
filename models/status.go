package models

import "github.com/uptrace/bun"

// Status maps a finish/retirement code to its description.
type Status struct {
	bun.BaseModel `bun:"table:status,alias:st"`

	StatusID int64  `bun:"status_id,pk" json:"statusID"`
	Status   string `bun:"status,notnull,unique" json:"status"`
}
