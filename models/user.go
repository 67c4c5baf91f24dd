package models

import "github.com/uptrace/bun"

// User is a golfer who can own and resell bookings.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID      string  `bun:"id,pk" json:"id"`
	Name    string  `bun:"name,notnull" json:"name"`
	Handle  *string `bun:"handle" json:"handle,omitempty"`
	ImageID *string `bun:"image_id" json:"imageId,omitempty"`

	Image *Asset `bun:"rel:belongs-to,join:image_id=id" json:"-"`
}
