package search

import (
	"github.com/padraicbc/teemarket/models"
	"github.com/padraicbc/teemarket/pricing"
)

// resaleResult seeds a group from the first booking seen on a tee time.
func resaleResult(row BookingRow, fees CourseFees, userID string) Result {
	kind := Unlisted
	if row.IsListed {
		kind = SecondHand
	}

	price := pricing.Unlisted(row.GreenFee)
	listingID := ""
	if row.ListID != nil {
		listingID = *row.ListID
		if row.ListPrice != nil {
			price = pricing.Listed(*row.ListPrice, fees.BuyerFee)
		}
	}

	purchased := pricing.Minor(row.PurchasedPrice)
	res := Result{
		SoldByID:               row.OwnerID,
		SoldByName:             row.OwnerName,
		SoldByImage:            models.AssetURL(row.OwnerImageCDN, row.OwnerImageKey, row.OwnerImageExt),
		AvailableSlots:         1,
		PricePerGolfer:         price,
		TeeTimeID:              row.TeeTimeID,
		CourseID:               row.CourseID,
		Date:                   row.ProviderDate,
		Time:                   row.Time,
		NumberOfHoles:          row.NumberOfHoles,
		IncludesCart:           row.IncludesCart,
		Kind:                   kind,
		IsListed:               row.IsListed,
		MinimumOfferPrice:      pricing.Minor(row.MinimumOfferPrice),
		ListingID:              listingID,
		BookingIDs:             []string{row.ID},
		FirstHandPurchasePrice: &purchased,
		IsOwner:                userID != "" && userID == row.OwnerID,
	}
	if res.IsOwner && row.IsListed && row.ListPrice != nil {
		payout := pricing.SellerPayout(*row.ListPrice, fees.SellerFee)
		res.SellerPayout = &payout
	}
	return res
}

// groupBookings folds bookings into one result per tee time in the order
// tee times are first seen. Later bookings on a tee time only add a slot
// and their id. Groups with fewer than golfers slots are dropped.
func groupBookings(rows []BookingRow, fees CourseFees, golfers int, userID string) []Result {
	order := []string{}
	groups := map[string]*Result{}

	for _, row := range rows {
		if g, ok := groups[row.TeeTimeID]; ok {
			g.AvailableSlots++
			g.BookingIDs = append(g.BookingIDs, row.ID)
			continue
		}
		res := resaleResult(row, fees, userID)
		order = append(order, row.TeeTimeID)
		groups[row.TeeTimeID] = &res
	}

	out := make([]Result, 0, len(order))
	for _, id := range order {
		if g := groups[id]; g.AvailableSlots >= golfers {
			out = append(out, *g)
		}
	}
	return out
}
