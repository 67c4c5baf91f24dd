// Package search answers tee-time searches by merging tee times sold by
// the course with bookings resold by golfers.
package search

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/padraicbc/teemarket/metrics"
	"github.com/padraicbc/teemarket/weather"
)

const (
	DefaultCutoff = 30 * time.Minute
	DefaultTake   = 5
)

// Options tunes a Service. Zero fields take defaults.
type Options struct {
	Clock       Clock
	Cutoff      time.Duration
	DefaultTake int
}

// Service runs searches. It never writes to storage.
type Service struct {
	store      Store
	forecaster Forecaster
	log        *zap.Logger
	clock      Clock
	cutoff     time.Duration
	take       int
	tracer     trace.Tracer
}

func NewService(store Store, forecaster Forecaster, log *zap.Logger, opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Cutoff == 0 {
		opts.Cutoff = DefaultCutoff
	}
	if opts.DefaultTake <= 0 {
		opts.DefaultTake = DefaultTake
	}
	return &Service{
		store:      store,
		forecaster: forecaster,
		log:        log,
		clock:      opts.Clock,
		cutoff:     opts.Cutoff,
		take:       opts.DefaultTake,
		tracer:     otel.Tracer("github.com/padraicbc/teemarket/search"),
	}
}

func (s *Service) start(ctx context.Context, op string) (context.Context, func()) {
	metrics.SearchRequests.WithLabelValues(op).Inc()
	began := time.Now()
	ctx, span := s.tracer.Start(ctx, "search."+op)
	return ctx, func() {
		metrics.SearchDuration.WithLabelValues(op).Observe(time.Since(began).Seconds())
		span.End()
	}
}

// failed logs a swallowed storage error.
func (s *Service) failed(op string, err error, fields ...zap.Field) {
	metrics.UpstreamFailures.WithLabelValues("storage").Inc()
	s.log.Error("search query failed", append(fields, zap.String("op", op), zap.Error(err))...)
}

// TeeTimesForDay returns first-hand and resale results for one course day.
// Only the first-hand query is bounded by the cursor; resale groups are
// always read in full and the merged list is returned without truncation.
func (s *Service) TeeTimesForDay(ctx context.Context, q Query) Page {
	ctx, done := s.start(ctx, "tee_times_for_day")
	defer done()

	take := q.Take
	if take <= 0 {
		take = s.take
	}
	cursor := q.Cursor
	if cursor < 1 {
		cursor = 1
	}
	f := q.filter(s.clock.Now(), s.cutoff, cursor, take)

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("course.id", q.CourseID),
		attribute.Int("search.cursor", cursor),
		attribute.Int("search.take", take),
	)

	var (
		fees                                   CourseFees
		firstRows                              []TeeTimeRow
		secondRows                             []BookingRow
		firstCount                             int
		feesErr, countErr, firstErr, secondErr error
	)

	// Each read swallows its own failure so the others still complete.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fees, feesErr = s.store.CourseFees(gctx, q.CourseID)
		return nil
	})
	g.Go(func() error {
		firstCount, countErr = s.store.CountFirstHand(gctx, f)
		return nil
	})
	g.Go(func() error {
		firstRows, firstErr = s.store.FirstHandTeeTimes(gctx, f)
		return nil
	})
	g.Go(func() error {
		secondRows, secondErr = s.store.SecondHandBookings(gctx, f)
		return nil
	})
	_ = g.Wait()

	page := Page{Results: []Result{}}
	courseField := zap.String("courseId", q.CourseID)
	if feesErr != nil {
		s.failed("course_fees", feesErr, courseField)
		page.Degraded = true
		fees = CourseFees{}
	}
	if countErr != nil {
		s.failed("count_first_hand", countErr, courseField)
		page.Degraded = true
		firstCount = 0
	}
	if firstErr != nil {
		s.failed("first_hand", firstErr, courseField)
		page.Degraded = true
		firstRows = nil
	}
	if secondErr != nil {
		s.failed("second_hand", secondErr, courseField)
		page.Degraded = true
		secondRows = nil
	}

	first := firstHandResults(firstRows, fees)
	second := groupBookings(secondRows, fees, q.Golfers, q.UserID)

	page.Results = append(page.Results, first...)
	page.Results = append(page.Results, second...)
	rank(page.Results, q.SortPrice, q.SortTime)

	page.Count = firstCount + len(second)
	more := f.Limit < firstCount
	if countErr != nil {
		// without a count, a full page is the only sign of more rows
		more = f.Limit > 0 && len(firstRows) >= f.Limit
	}
	if more {
		page.Cursor = cursor + 1
	}

	metrics.SearchResults.WithLabelValues(string(FirstHand)).Add(float64(len(first)))
	for _, r := range second {
		metrics.SearchResults.WithLabelValues(string(r.Kind)).Inc()
	}
	return page
}

// Forecast returns the course forecast periods.
func (s *Service) Forecast(ctx context.Context, courseID string) []weather.Period {
	ctx, done := s.start(ctx, "forecast")
	defer done()
	return s.forecaster.Forecast(ctx, courseID)
}
