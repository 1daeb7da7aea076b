package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Driver holds driver identity. Reference data, never changed once imported.
type Driver struct {
	bun.BaseModel `bun:"table:drivers,alias:d"`

	DriverID    int64      `bun:"driver_id,pk" json:"driverID"`
	DriverRef   string     `bun:"driver_ref,notnull,unique" json:"driverRef"`
	Number      *int       `bun:"number" json:"number,omitempty"`
	Code        *string    `bun:"code" json:"code,omitempty"`
	Forename    string     `bun:"forename,notnull" json:"forename"`
	Surname     string     `bun:"surname,notnull" json:"surname"`
	DOB         *time.Time `bun:"dob,type:date" json:"dob,omitempty"`
	Nationality *string    `bun:"nationality" json:"nationality,omitempty"`
	URL         *string    `bun:"url" json:"url,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
}

// Name returns "Forename Surname".
func (d *Driver) Name() string {
	return d.Forename + " " + d.Surname
}
