package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var teeAt = time.Date(2026, 10, 20, 15, 0, 0, 0, time.UTC)

func booking(id, teeTimeID, owner string, listed bool) BookingRow {
	return BookingRow{
		ID:             id,
		TeeTimeID:      teeTimeID,
		CourseID:       "course-1",
		OwnerID:        owner,
		OwnerName:      "Owner " + owner,
		PurchasedPrice: 3000,
		IsListed:       listed,
		ProviderDate:   teeAt,
		Time:           900,
		NumberOfHoles:  18,
		GreenFee:       3000,
	}
}

func listedBooking(id, teeTimeID, owner, listID string, price float64) BookingRow {
	b := booking(id, teeTimeID, owner, true)
	b.ListID = ptr(listID)
	b.ListPrice = ptr(price)
	b.ListSlots = ptr(1)
	return b
}

func TestGroupBookingsSeedsFromFirstBooking(t *testing.T) {
	rows := []BookingRow{
		listedBooking("b1", "tt-1", "u1", "l1", 40),
		booking("b2", "tt-1", "u2", false),
		booking("b3", "tt-1", "u3", false),
	}

	got := groupBookings(rows, CourseFees{BuyerFee: ptr(5.0)}, 1, "")

	require.Len(t, got, 1)
	g := got[0]
	assert.Equal(t, 3, g.AvailableSlots)
	assert.Equal(t, 42.00, g.PricePerGolfer)
	assert.Equal(t, []string{"b1", "b2", "b3"}, g.BookingIDs)
	assert.Equal(t, SecondHand, g.Kind)
	assert.True(t, g.IsListed)
	assert.Equal(t, "l1", g.ListingID)
	assert.Equal(t, "u1", g.SoldByID)
	assert.Equal(t, "Owner u1", g.SoldByName)
	require.NotNil(t, g.FirstHandPurchasePrice)
	assert.Equal(t, 30.0, *g.FirstHandPurchasePrice)
}

func TestGroupBookingsUnlistedSuggestedPrice(t *testing.T) {
	got := groupBookings([]BookingRow{booking("b1", "tt-1", "u1", false)}, CourseFees{}, 1, "")

	require.Len(t, got, 1)
	assert.Equal(t, Unlisted, got[0].Kind)
	assert.False(t, got[0].IsListed)
	assert.Equal(t, 39.00, got[0].PricePerGolfer)
	assert.Empty(t, got[0].ListingID)
}

func TestGroupBookingsDropsGroupsSmallerThanParty(t *testing.T) {
	rows := []BookingRow{
		booking("b1", "tt-1", "u1", false),
		booking("b2", "tt-1", "u1", false),
		booking("b3", "tt-2", "u2", false),
		booking("b4", "tt-2", "u2", false),
		booking("b5", "tt-2", "u2", false),
		booking("b6", "tt-2", "u2", false),
	}

	got := groupBookings(rows, CourseFees{}, 4, "")
	require.Len(t, got, 1)
	assert.Equal(t, "tt-2", got[0].TeeTimeID)
	assert.Equal(t, 4, got[0].AvailableSlots)

	assert.Len(t, groupBookings(rows, CourseFees{}, 2, ""), 2)
}

func TestGroupBookingsKeepsFirstSeenOrder(t *testing.T) {
	rows := []BookingRow{
		booking("b1", "tt-3", "u1", false),
		booking("b2", "tt-1", "u1", false),
		booking("b3", "tt-3", "u2", false),
		booking("b4", "tt-2", "u1", false),
	}

	got := groupBookings(rows, CourseFees{}, 1, "")
	require.Len(t, got, 3)
	assert.Equal(t, "tt-3", got[0].TeeTimeID)
	assert.Equal(t, "tt-1", got[1].TeeTimeID)
	assert.Equal(t, "tt-2", got[2].TeeTimeID)
	assert.Equal(t, 2, got[0].AvailableSlots)
}

func TestGroupBookingsMarksViewerListings(t *testing.T) {
	rows := []BookingRow{listedBooking("b1", "tt-1", "u1", "l1", 40)}
	fees := CourseFees{BuyerFee: ptr(5.0), SellerFee: ptr(5.0)}

	mine := groupBookings(rows, fees, 1, "u1")
	require.Len(t, mine, 1)
	assert.True(t, mine[0].IsOwner)
	require.NotNil(t, mine[0].SellerPayout)
	assert.Equal(t, 38.00, *mine[0].SellerPayout)

	theirs := groupBookings(rows, fees, 1, "u2")
	assert.False(t, theirs[0].IsOwner)
	assert.Nil(t, theirs[0].SellerPayout)
}

func TestFirstHandResult(t *testing.T) {
	row := TeeTimeRow{
		ID:                      "tt-1",
		CourseID:                "course-1",
		CourseName:              "Murphy Creek",
		LogoCDN:                 "cdn.teemarket.app",
		LogoKey:                 "logos/murphy",
		LogoExtension:           "png",
		ProviderDate:            teeAt,
		Time:                    900,
		NumberOfHoles:           18,
		AvailableFirstHandSpots: 3,
		GreenFee:                5000,
		CartFee:                 1500,
	}

	got := firstHandResult(row, CourseFees{Markup: ptr(250)})

	assert.Equal(t, 52.50, got.PricePerGolfer)
	assert.Equal(t, 50.0, got.MinimumOfferPrice)
	assert.Equal(t, 3, got.AvailableSlots)
	assert.Equal(t, FirstHand, got.Kind)
	assert.False(t, got.IsListed)
	assert.True(t, got.IncludesCart)
	assert.Equal(t, "course-1", got.SoldByID)
	assert.Equal(t, "https://cdn.teemarket.app/logos/murphy.png", got.SoldByImage)
	assert.Nil(t, got.BookingIDs)
}
