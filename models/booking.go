package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Booking is a single golfer's purchased spot on a tee time.
type Booking struct {
	bun.BaseModel `bun:"table:bookings,alias:b"`

	ID                string    `bun:"id,pk" json:"id"`
	TeeTimeID         string    `bun:"tee_time_id,notnull" json:"teeTimeId"`
	OwnerID           string    `bun:"owner_id,notnull" json:"ownerId"`
	PurchasedPrice    int       `bun:"purchased_price,notnull" json:"purchasedPrice"`
	IncludesCart      bool      `bun:"includes_cart,notnull,default:false" json:"includesCart"`
	IsListed          bool      `bun:"is_listed,notnull,default:false" json:"isListed"`
	ListID            *string   `bun:"list_id" json:"listId,omitempty"`
	MinimumOfferPrice int       `bun:"minimum_offer_price,notnull,default:0" json:"minimumOfferPrice"`
	CreatedAt         time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`

	TeeTime *TeeTime `bun:"rel:belongs-to,join:tee_time_id=id" json:"-"`
	List    *List    `bun:"rel:belongs-to,join:list_id=id" json:"-"`
}
