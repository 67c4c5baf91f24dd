package search

import (
	"context"
	"sync"
	"time"

	"github.com/padraicbc/teemarket/weather"
)

type fakeStore struct {
	mu      sync.Mutex
	filters []Filter

	fees      CourseFees
	feesErr   error
	first     []TeeTimeRow
	firstErr  error
	count     int
	countErr  error
	second    []BookingRow
	secondErr error

	teeTime    *TeeTimeRow
	teeTimeErr error
	listing    []BookingRow
	unlisted   []BookingRow
	dates      []time.Time
	datesErr   error
	datesFrom  time.Time
	timezone   string
	tzErr      error
}

func (f *fakeStore) record(filter Filter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
}

func (f *fakeStore) CourseFees(context.Context, string) (CourseFees, error) {
	return f.fees, f.feesErr
}

func (f *fakeStore) FirstHandTeeTimes(_ context.Context, filter Filter) ([]TeeTimeRow, error) {
	f.record(filter)
	return f.first, f.firstErr
}

func (f *fakeStore) CountFirstHand(_ context.Context, filter Filter) (int, error) {
	f.record(filter)
	return f.count, f.countErr
}

func (f *fakeStore) SecondHandBookings(_ context.Context, filter Filter) ([]BookingRow, error) {
	f.record(filter)
	return f.second, f.secondErr
}

func (f *fakeStore) TeeTime(context.Context, string) (*TeeTimeRow, error) {
	return f.teeTime, f.teeTimeErr
}

func (f *fakeStore) ListingBookings(context.Context, string) ([]BookingRow, error) {
	return f.listing, nil
}

func (f *fakeStore) OwnerUnlistedBookings(context.Context, string, string) ([]BookingRow, error) {
	return f.unlisted, nil
}

func (f *fakeStore) TeeTimeDates(_ context.Context, _ string, from, _ time.Time) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.datesFrom = from
	return f.dates, f.datesErr
}

func (f *fakeStore) CourseTimezone(context.Context, string) (string, error) {
	return f.timezone, f.tzErr
}

type fakeForecaster struct {
	periods []weather.Period
}

func (f fakeForecaster) Forecast(context.Context, string) []weather.Period {
	return f.periods
}

func ptr[T any](v T) *T { return &v }
