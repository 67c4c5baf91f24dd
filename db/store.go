package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/uptrace/bun"

	"github.com/padraicbc/teemarket/models"
	"github.com/padraicbc/teemarket/search"
)

// Store runs the search queries against PostgreSQL.
type Store struct {
	db *bun.DB
}

func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

var _ search.Store = (*Store)(nil)

const teeTimeColumns = `
	tt.id, tt.course_id, c.name AS course_name,
	COALESCE(a.cdn, '') AS logo_cdn, COALESCE(a.key, '') AS logo_key,
	COALESCE(a.extension, '') AS logo_extension,
	tt.provider_date, tt.time, tt.number_of_holes,
	tt.available_first_hand_spots, tt.available_second_hand_spots,
	tt.green_fee, tt.cart_fee`

const bookingColumns = `
	b.id, b.tee_time_id, tt.course_id, b.owner_id, u.name AS owner_name,
	COALESCE(a.cdn, '') AS owner_image_cdn, COALESCE(a.key, '') AS owner_image_key,
	COALESCE(a.extension, '') AS owner_image_extension,
	b.purchased_price, b.includes_cart, b.is_listed, b.minimum_offer_price,
	b.list_id, l.list_price, l.slots AS list_slots,
	tt.provider_date, tt.time, tt.number_of_holes, tt.green_fee`

// minor converts a major-unit price bound to stored cents.
func minor(v float64) int {
	return int(math.Round(v * 100))
}

func (s *Store) teeTimes() *bun.SelectQuery {
	return s.db.NewSelect().
		TableExpr("tee_times AS tt").
		Join("INNER JOIN courses AS c ON c.id = tt.course_id").
		Join("LEFT JOIN assets AS a ON a.id = c.logo_id")
}

func (s *Store) bookings() *bun.SelectQuery {
	return s.db.NewSelect().
		TableExpr("bookings AS b").
		Join("INNER JOIN tee_times AS tt ON tt.id = b.tee_time_id").
		Join("INNER JOIN users AS u ON u.id = b.owner_id").
		Join("LEFT JOIN assets AS a ON a.id = u.image_id").
		Join("LEFT JOIN lists AS l ON l.id = b.list_id")
}

// whereWindow applies the course, time-of-day and instant bounds shared by
// both markets. Tee times at or before the cutoff never qualify.
func whereWindow(q *bun.SelectQuery, f search.Filter) *bun.SelectQuery {
	return q.
		Where("tt.course_id = ?", f.CourseID).
		Where("tt.time BETWEEN ? AND ?", f.StartTime, f.EndTime).
		Where("tt.provider_date > ?", f.NotBefore).
		Where("tt.provider_date BETWEEN ? AND ?", f.From, f.To).
		Where("tt.number_of_holes = ?", f.Holes)
}

func (s *Store) firstHand(f search.Filter) *bun.SelectQuery {
	q := whereWindow(s.teeTimes(), f).
		Where("tt.green_fee BETWEEN ? AND ?", minor(f.LowerPrice), minor(f.UpperPrice)).
		Where("tt.available_first_hand_spots > 0").
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("tt.available_first_hand_spots >= ?", f.Golfers).
				WhereOr("tt.available_second_hand_spots >= ?", f.Golfers)
		})

	if f.IncludesCart {
		q = q.Where("tt.cart_fee >= 1")
	} else {
		q = q.Where("tt.cart_fee = 0")
	}
	return q
}

// FirstHandTeeTimes returns course-sold tee times matching f, at most f.Limit.
func (s *Store) FirstHandTeeTimes(ctx context.Context, f search.Filter) ([]search.TeeTimeRow, error) {
	var rows []search.TeeTimeRow
	err := s.firstHand(f).
		ColumnExpr(teeTimeColumns).
		OrderExpr("tt.provider_date ASC, tt.time ASC, tt.id ASC").
		Limit(f.Limit).
		Scan(ctx, &rows)
	return rows, err
}

// CountFirstHand counts every tee time matching f, ignoring f.Limit.
func (s *Store) CountFirstHand(ctx context.Context, f search.Filter) (int, error) {
	var n int
	err := s.firstHand(f).ColumnExpr("count(*)").Scan(ctx, &n)
	return n, err
}

// SecondHandBookings returns every owned booking matching f. Bookings on
// the same tee time are adjacent, listed ones first.
func (s *Store) SecondHandBookings(ctx context.Context, f search.Filter) ([]search.BookingRow, error) {
	q := whereWindow(s.bookings(), f).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("l.list_price BETWEEN ? AND ?", f.LowerPrice, f.UpperPrice).
				WhereOr("b.purchased_price BETWEEN ? AND ?", minor(f.LowerPrice), minor(f.UpperPrice))
		}).
		Where("b.includes_cart = ?", f.IncludesCart)

	if !f.ShowUnlisted {
		q = q.Where("b.is_listed = TRUE")
	}

	var rows []search.BookingRow
	err := q.
		ColumnExpr(bookingColumns).
		OrderExpr("tt.provider_date ASC, b.tee_time_id ASC, b.is_listed DESC, b.id ASC").
		Scan(ctx, &rows)
	return rows, err
}

func (s *Store) TeeTime(ctx context.Context, id string) (*search.TeeTimeRow, error) {
	var rows []search.TeeTimeRow
	err := s.teeTimes().
		ColumnExpr(teeTimeColumns).
		Where("tt.id = ?", id).
		Limit(1).
		Scan(ctx, &rows)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (s *Store) ListingBookings(ctx context.Context, listingID string) ([]search.BookingRow, error) {
	var rows []search.BookingRow
	err := s.bookings().
		ColumnExpr(bookingColumns).
		Where("b.list_id = ?", listingID).
		Where("b.is_listed = TRUE").
		OrderExpr("b.id ASC").
		Scan(ctx, &rows)
	return rows, err
}

func (s *Store) OwnerUnlistedBookings(ctx context.Context, ownerID, teeTimeID string) ([]search.BookingRow, error) {
	var rows []search.BookingRow
	err := s.bookings().
		ColumnExpr(bookingColumns).
		Where("b.owner_id = ?", ownerID).
		Where("b.tee_time_id = ?", teeTimeID).
		Where("b.is_listed = FALSE").
		OrderExpr("b.id ASC").
		Scan(ctx, &rows)
	return rows, err
}

// CourseFees returns the course's markup and fee settings. An unknown
// course has none set.
func (s *Store) CourseFees(ctx context.Context, courseID string) (search.CourseFees, error) {
	var fees search.CourseFees
	err := s.db.NewSelect().
		Model((*models.Course)(nil)).
		ColumnExpr("c.markup, c.buyer_fee, c.seller_fee").
		Where("c.id = ?", courseID).
		Scan(ctx, &fees)
	if errors.Is(err, sql.ErrNoRows) {
		return search.CourseFees{}, nil
	}
	return fees, err
}

func (s *Store) TeeTimeDates(ctx context.Context, courseID string, from, to time.Time) ([]time.Time, error) {
	var days []string
	err := s.db.NewSelect().
		TableExpr("tee_times").
		ColumnExpr("DISTINCT date::text AS date").
		Where("course_id = ?", courseID).
		Where("date >= ?::date", from.Format(time.DateOnly)).
		Where("date < ?::date", to.Format(time.DateOnly)).
		OrderExpr("date ASC").
		Scan(ctx, &days)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(days))
	for _, d := range days {
		t, err := time.Parse(time.DateOnly, d)
		if err != nil {
			return nil, fmt.Errorf("parsing tee time date %q: %w", d, err)
		}
		dates = append(dates, t)
	}
	return dates, nil
}

func (s *Store) CourseTimezone(ctx context.Context, courseID string) (string, error) {
	var tz string
	err := s.db.NewSelect().
		Model((*models.Course)(nil)).
		ColumnExpr("c.timezone").
		Where("c.id = ?", courseID).
		Scan(ctx, &tz)
	return tz, err
}

// CourseLocation resolves a course's coordinates for forecast lookups.
func (s *Store) CourseLocation(ctx context.Context, courseID string) (float64, float64, error) {
	var lat, lon float64
	err := s.db.NewSelect().
		Model((*models.Course)(nil)).
		ColumnExpr("c.latitude, c.longitude").
		Where("c.id = ?", courseID).
		Scan(ctx, &lat, &lon)
	return lat, lon, err
}
