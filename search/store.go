package search

import (
	"context"
	"time"

	"github.com/padraicbc/teemarket/weather"
)

// Store is the read-only storage the search core runs against.
type Store interface {
	CourseFees(ctx context.Context, courseID string) (CourseFees, error)
	FirstHandTeeTimes(ctx context.Context, f Filter) ([]TeeTimeRow, error)
	CountFirstHand(ctx context.Context, f Filter) (int, error)
	SecondHandBookings(ctx context.Context, f Filter) ([]BookingRow, error)

	// TeeTime returns nil when no tee time has the id.
	TeeTime(ctx context.Context, id string) (*TeeTimeRow, error)
	ListingBookings(ctx context.Context, listingID string) ([]BookingRow, error)
	OwnerUnlistedBookings(ctx context.Context, ownerID, teeTimeID string) ([]BookingRow, error)
	// TeeTimeDates returns the distinct calendar days in [from, to) that
	// have at least one tee time.
	TeeTimeDates(ctx context.Context, courseID string, from, to time.Time) ([]time.Time, error)
	// CourseTimezone returns the course's IANA zone name.
	CourseTimezone(ctx context.Context, courseID string) (string, error)
}

// Forecaster supplies forecast periods for a course; it never fails,
// returning no periods instead.
type Forecaster interface {
	Forecast(ctx context.Context, courseID string) []weather.Period
}

// CourseFees is a course's pricing configuration. Nil fields are unset.
type CourseFees struct {
	Markup    *int     `bun:"markup"`
	BuyerFee  *float64 `bun:"buyer_fee"`
	SellerFee *float64 `bun:"seller_fee"`
}

// Filter is the resolved row-level predicate shared by the first-hand and
// second-hand queries.
type Filter struct {
	CourseID string
	// NotBefore is the booking cutoff; qualifying tee times start strictly after it.
	NotBefore time.Time
	// From and To bound the tee time instant inclusively.
	From time.Time
	To   time.Time

	StartTime int
	EndTime   int
	// LowerPrice and UpperPrice are major units.
	LowerPrice float64
	UpperPrice float64

	Holes        int
	Golfers      int
	IncludesCart bool
	ShowUnlisted bool

	// Limit bounds the first-hand detail query; 0 means unbounded.
	Limit int
}

// TeeTimeRow is a tee time joined with its course for display.
type TeeTimeRow struct {
	ID                       string    `bun:"id"`
	CourseID                 string    `bun:"course_id"`
	CourseName               string    `bun:"course_name"`
	LogoCDN                  string    `bun:"logo_cdn"`
	LogoKey                  string    `bun:"logo_key"`
	LogoExtension            string    `bun:"logo_extension"`
	ProviderDate             time.Time `bun:"provider_date"`
	Time                     int       `bun:"time"`
	NumberOfHoles            int       `bun:"number_of_holes"`
	AvailableFirstHandSpots  int       `bun:"available_first_hand_spots"`
	AvailableSecondHandSpots int       `bun:"available_second_hand_spots"`
	GreenFee                 int       `bun:"green_fee"`
	CartFee                  int       `bun:"cart_fee"`
}

// BookingRow is one owned booking joined with its tee time, owner and
// optional listing.
type BookingRow struct {
	ID                string    `bun:"id"`
	TeeTimeID         string    `bun:"tee_time_id"`
	CourseID          string    `bun:"course_id"`
	OwnerID           string    `bun:"owner_id"`
	OwnerName         string    `bun:"owner_name"`
	OwnerImageCDN     string    `bun:"owner_image_cdn"`
	OwnerImageKey     string    `bun:"owner_image_key"`
	OwnerImageExt     string    `bun:"owner_image_extension"`
	PurchasedPrice    int       `bun:"purchased_price"`
	IncludesCart      bool      `bun:"includes_cart"`
	IsListed          bool      `bun:"is_listed"`
	MinimumOfferPrice int       `bun:"minimum_offer_price"`
	ListID            *string   `bun:"list_id"`
	ListPrice         *float64  `bun:"list_price"`
	ListSlots         *int      `bun:"list_slots"`
	ProviderDate      time.Time `bun:"provider_date"`
	Time              int       `bun:"time"`
	NumberOfHoles     int       `bun:"number_of_holes"`
	GreenFee          int       `bun:"green_fee"`
}
