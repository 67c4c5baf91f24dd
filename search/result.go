package search

import (
	"time"

	"github.com/padraicbc/teemarket/weather"
)

// Kind tags where a result's slots come from.
type Kind string

const (
	// FirstHand slots are sold directly by the course.
	FirstHand Kind = "FIRST_HAND"
	// SecondHand slots are listed for resale by their owner.
	SecondHand Kind = "SECOND_HAND"
	// Unlisted slots are owned but not for sale; buyers may make an offer.
	Unlisted Kind = "UNLISTED"
)

// Result is one row of a search page: a tee time from the course, or a
// group of owned bookings on the same tee time.
type Result struct {
	SoldByID               string           `json:"soldById"`
	SoldByName             string           `json:"soldByName"`
	SoldByImage            string           `json:"soldByImage"`
	AvailableSlots         int              `json:"availableSlots"`
	PricePerGolfer         float64          `json:"pricePerGolfer"`
	TeeTimeID              string           `json:"teeTimeId"`
	CourseID               string           `json:"courseId"`
	Date                   time.Time        `json:"date"`
	Time                   int              `json:"time"`
	NumberOfHoles          int              `json:"numberOfHoles"`
	IncludesCart           bool             `json:"includesCart"`
	Kind                   Kind             `json:"firstOrSecondHandTeeTime"`
	IsListed               bool             `json:"isListed"`
	MinimumOfferPrice      float64          `json:"minimumOfferPrice"`
	ListingID              string           `json:"listingId,omitempty"`
	BookingIDs             []string         `json:"bookingIds,omitempty"`
	FirstHandPurchasePrice *float64         `json:"firstHandPurchasePrice,omitempty"`
	SellerPayout           *float64         `json:"sellerPayout,omitempty"`
	IsOwner                bool             `json:"isOwner"`
	Weather                *weather.Summary `json:"weather,omitempty"`
}

// Page is the answer to a day search.
type Page struct {
	Results []Result `json:"results"`
	// Cursor is the page multiplier to request next, 0 when no more
	// first-hand tee times remain.
	Cursor int `json:"cursor"`
	Count  int `json:"count"`
	// Degraded is set when a storage read failed and the page may be
	// missing results.
	Degraded bool `json:"degraded"`
}
