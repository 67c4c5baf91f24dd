package search

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/padraicbc/teemarket/weather"
)

// TeeTimeByID returns the course-sold view of one tee time with its
// forecast, or nil if it does not exist.
func (s *Service) TeeTimeByID(ctx context.Context, teeTimeID, userID string) *Result {
	ctx, done := s.start(ctx, "tee_time_by_id")
	defer done()

	row, err := s.store.TeeTime(ctx, teeTimeID)
	if err != nil {
		s.failed("tee_time", err, zap.String("teeTimeId", teeTimeID))
		return nil
	}
	if row == nil {
		return nil
	}

	fees, periods, err := s.feesAndForecast(ctx, row.CourseID)
	if err != nil {
		s.failed("course_fees", err, zap.String("courseId", row.CourseID))
		return nil
	}

	res := firstHandResult(*row, fees)
	summary := weather.MatchForecast(row.ProviderDate, periods)
	res.Weather = &summary
	return &res
}

// ListingByID returns a resale listing as one result, or nil.
func (s *Service) ListingByID(ctx context.Context, listingID, userID string) *Result {
	ctx, done := s.start(ctx, "listing_by_id")
	defer done()

	rows, err := s.store.ListingBookings(ctx, listingID)
	if err != nil {
		s.failed("listing_bookings", err, zap.String("listingId", listingID))
		return nil
	}
	res := s.singleGroup(ctx, rows, userID)
	if res == nil {
		return nil
	}
	if rows[0].ListSlots != nil {
		res.AvailableSlots = *rows[0].ListSlots
	}
	return res
}

// UnlistedTeeTime returns an owner's not-for-sale bookings on a tee time
// as one make-an-offer result, or nil.
func (s *Service) UnlistedTeeTime(ctx context.Context, ownerID, teeTimeID, userID string) *Result {
	ctx, done := s.start(ctx, "unlisted_tee_time")
	defer done()

	rows, err := s.store.OwnerUnlistedBookings(ctx, ownerID, teeTimeID)
	if err != nil {
		s.failed("owner_unlisted_bookings", err,
			zap.String("ownerId", ownerID), zap.String("teeTimeId", teeTimeID))
		return nil
	}
	return s.singleGroup(ctx, rows, userID)
}

// singleGroup folds rows that share one tee time into a forecast-enriched result.
func (s *Service) singleGroup(ctx context.Context, rows []BookingRow, userID string) *Result {
	if len(rows) == 0 {
		return nil
	}
	courseID := rows[0].CourseID

	fees, periods, err := s.feesAndForecast(ctx, courseID)
	if err != nil {
		s.failed("course_fees", err, zap.String("courseId", courseID))
		return nil
	}

	groups := groupBookings(rows, fees, 0, userID)
	if len(groups) == 0 {
		return nil
	}
	res := groups[0]
	summary := weather.MatchForecast(res.Date, periods)
	res.Weather = &summary
	return &res
}

func (s *Service) feesAndForecast(ctx context.Context, courseID string) (CourseFees, []weather.Period, error) {
	var (
		fees    CourseFees
		periods []weather.Period
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fees, err = s.store.CourseFees(gctx, courseID)
		return err
	})
	g.Go(func() error {
		periods = s.forecaster.Forecast(gctx, courseID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return CourseFees{}, nil, err
	}
	return fees, periods, nil
}
