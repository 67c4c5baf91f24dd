package search

import (
	"context"
	"time"
	_ "time/tzdata"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// BlackoutHorizon is how many days ahead BlackoutDates looks.
const BlackoutHorizon = 365

// BlackoutDates returns the days from the course's local today through the
// horizon on which the course has no tee times, ascending. Storage failures
// give no days.
func (s *Service) BlackoutDates(ctx context.Context, courseID string) []time.Time {
	ctx, done := s.start(ctx, "blackout_dates")
	defer done()

	today := s.courseToday(ctx, courseID)
	end := today.AddDate(0, 0, BlackoutHorizon)

	dates, err := s.store.TeeTimeDates(ctx, courseID, today, end)
	if err != nil {
		s.failed("tee_time_dates", err, zap.String("courseId", courseID))
		return []time.Time{}
	}
	return blackoutDays(today, BlackoutHorizon, dates)
}

// courseToday is the course's current calendar day as a UTC date, matching
// how tee_times.date values are read. Unknown zones fall back to UTC.
func (s *Service) courseToday(ctx context.Context, courseID string) time.Time {
	now := s.clock.Now()

	tz, err := s.store.CourseTimezone(ctx, courseID)
	if err != nil {
		s.failed("course_timezone", err, zap.String("courseId", courseID))
		return dayStart(now)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		s.log.Warn("unknown course timezone", zap.String("courseId", courseID), zap.String("timezone", tz))
		return dayStart(now)
	}

	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// blackoutDays lists the days in [start, start+days) absent from present.
func blackoutDays(start time.Time, days int, present []time.Time) []time.Time {
	have := lo.SliceToMap(present, func(d time.Time) (string, struct{}) {
		return dayStart(d).Format(time.DateOnly), struct{}{}
	})

	out := []time.Time{}
	for i := 0; i < days; i++ {
		d := dayStart(start).AddDate(0, 0, i)
		if _, ok := have[d.Format(time.DateOnly)]; !ok {
			out = append(out, d)
		}
	}
	return out
}
