package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Constructor is a team entering cars.
type Constructor struct {
	bun.BaseModel `bun:"table:constructors,alias:c"`

	ConstructorID  int64   `bun:"constructor_id,pk" json:"constructorID"`
	ConstructorRef string  `bun:"constructor_ref,notnull,unique" json:"constructorRef"`
	Name           string  `bun:"name,notnull" json:"name"`
	Nationality    *string `bun:"nationality" json:"nationality,omitempty"`
	URL            *string `bun:"url" json:"url,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
}
