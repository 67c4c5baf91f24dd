// cmd/addcourse/main.go
// Creates a course or updates its marketplace fee settings.
//
// Usage:
//
//	go run ./cmd/addcourse -entity <uuid> -name "Pine Ridge" -markup 250 -buyer-fee 5 -seller-fee 3
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/padraicbc/teemarket/config"
	bundb "github.com/padraicbc/teemarket/db"
	"github.com/padraicbc/teemarket/models"
)

func main() {
	id := flag.String("id", "", "course id (generated when empty)")
	entity := flag.String("entity", "", "owning entity id (required)")
	name := flag.String("name", "", "course name (required)")
	markup := flag.Int("markup", -1, "first-hand markup in cents, -1 to leave unset")
	buyerFee := flag.Float64("buyer-fee", -1, "buyer fee percent, -1 for the default")
	sellerFee := flag.Float64("seller-fee", -1, "seller fee percent, -1 for the default")
	lat := flag.Float64("lat", 0, "latitude")
	lon := flag.Float64("lon", 0, "longitude")
	tz := flag.String("tz", "UTC", "IANA timezone")
	flag.Parse()

	if *entity == "" || *name == "" {
		log.Fatal("both -entity and -name are required")
	}
	if *id == "" {
		*id = uuid.NewString()
	}

	course := &models.Course{
		ID:        *id,
		EntityID:  *entity,
		Name:      *name,
		Markup:    optional(*markup),
		BuyerFee:  optional(*buyerFee),
		SellerFee: optional(*sellerFee),
		Latitude:  *lat,
		Longitude: *lon,
		Timezone:  *tz,
	}

	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	_, err := db.NewInsert().Model(course).
		On("CONFLICT (id) DO UPDATE").
		Set("markup = EXCLUDED.markup").
		Set("buyer_fee = EXCLUDED.buyer_fee").
		Set("seller_fee = EXCLUDED.seller_fee").
		Set("latitude = EXCLUDED.latitude").
		Set("longitude = EXCLUDED.longitude").
		Set("timezone = EXCLUDED.timezone").
		Exec(context.Background())
	if err != nil {
		log.Fatal("upsert course:", err)
	}

	fmt.Printf("course %q saved as %s\n", *name, *id)
}

func optional[T int | float64](v T) *T {
	if v < 0 {
		return nil
	}
	return &v
}
