package models

import "github.com/uptrace/bun"

// Course is a tenant-scoped golf course with its marketplace fee settings.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID        string   `bun:"id,pk" json:"id"`
	EntityID  string   `bun:"entity_id,notnull,unique:courses_entity_name" json:"entityId"`
	Name      string   `bun:"name,notnull,unique:courses_entity_name" json:"name"`
	Markup    *int     `bun:"markup" json:"markup,omitempty"`
	BuyerFee  *float64 `bun:"buyer_fee" json:"buyerFee,omitempty"`
	SellerFee *float64 `bun:"seller_fee" json:"sellerFee,omitempty"`
	Latitude  float64  `bun:"latitude,notnull,default:0" json:"latitude"`
	Longitude float64  `bun:"longitude,notnull,default:0" json:"longitude"`
	Timezone  string   `bun:"timezone,notnull,default:'UTC'" json:"timezone"`
	LogoID    *string  `bun:"logo_id" json:"logoId,omitempty"`

	Logo *Asset `bun:"rel:belongs-to,join:logo_id=id" json:"-"`
}
