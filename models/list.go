package models

import (
	"time"

	"github.com/uptrace/bun"
)

// List is a resale listing over one or more of an owner's bookings.
// ListPrice is per golfer in major units.
type List struct {
	bun.BaseModel `bun:"table:lists,alias:l"`

	ID        string    `bun:"id,pk" json:"id"`
	UserID    string    `bun:"user_id,notnull" json:"userId"`
	ListPrice float64   `bun:"list_price,notnull" json:"listPrice"`
	Slots     int       `bun:"slots,notnull" json:"slots"`
	EndTime   time.Time `bun:"end_time,notnull" json:"endTime"`
}
