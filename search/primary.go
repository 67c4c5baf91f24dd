package search

import (
	"github.com/padraicbc/teemarket/models"
	"github.com/padraicbc/teemarket/pricing"
)

// firstHandResult projects a course-sold tee time.
func firstHandResult(row TeeTimeRow, fees CourseFees) Result {
	return Result{
		SoldByID:          row.CourseID,
		SoldByName:        row.CourseName,
		SoldByImage:       models.AssetURL(row.LogoCDN, row.LogoKey, row.LogoExtension),
		AvailableSlots:    row.AvailableFirstHandSpots,
		PricePerGolfer:    pricing.FirstHand(row.GreenFee, fees.Markup),
		TeeTimeID:         row.ID,
		CourseID:          row.CourseID,
		Date:              row.ProviderDate,
		Time:              row.Time,
		NumberOfHoles:     row.NumberOfHoles,
		IncludesCart:      row.CartFee >= 1,
		Kind:              FirstHand,
		IsListed:          false,
		MinimumOfferPrice: pricing.Minor(row.GreenFee),
	}
}

func firstHandResults(rows []TeeTimeRow, fees CourseFees) []Result {
	out := make([]Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, firstHandResult(row, fees))
	}
	return out
}
