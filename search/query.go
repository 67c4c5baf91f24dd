package search

import "time"

// Sort directions accepted for SortTime and SortPrice.
const (
	Asc  = "asc"
	Desc = "desc"
)

// Query is a day search as issued by a caller.
type Query struct {
	CourseID string
	// Date is the calendar day searched. Only year, month and day are used.
	Date time.Time
	// MinDate and MaxDate optionally narrow the searchable range to whole
	// days. Zero values are ignored.
	MinDate time.Time
	MaxDate time.Time

	// StartTime and EndTime are military times, e.g. 730 and 1800.
	StartTime int
	EndTime   int

	Holes        int
	Golfers      int
	ShowUnlisted bool
	IncludesCart bool
	LowerPrice   float64
	UpperPrice   float64

	Take      int
	SortTime  string
	SortPrice string
	// TimezoneCorrection is the number of hours added to UTC midnight to
	// reach the course's local midnight, e.g. 6 for a course at UTC-6.
	TimezoneCorrection int
	// Cursor is the page multiplier; the first-hand query returns at most
	// Cursor*Take rows.
	Cursor int
	UserID string
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayEnd(t time.Time) time.Time {
	return dayStart(t).Add(24*time.Hour - time.Millisecond)
}

// filter resolves q against now into the row predicate. take must already
// be defaulted.
func (q Query) filter(now time.Time, cutoff time.Duration, cursor, take int) Filter {
	shift := time.Duration(q.TimezoneCorrection) * time.Hour

	from := dayStart(q.Date).Add(shift)
	to := dayEnd(q.Date).Add(shift)
	if !q.MinDate.IsZero() {
		if m := dayStart(q.MinDate).Add(shift); m.After(from) {
			from = m
		}
	}
	if !q.MaxDate.IsZero() {
		if m := dayEnd(q.MaxDate).Add(shift); m.Before(to) {
			to = m
		}
	}

	return Filter{
		CourseID:     q.CourseID,
		NotBefore:    now.Add(cutoff),
		From:         from,
		To:           to,
		StartTime:    q.StartTime,
		EndTime:      q.EndTime,
		LowerPrice:   q.LowerPrice,
		UpperPrice:   q.UpperPrice,
		Holes:        q.Holes,
		Golfers:      q.Golfers,
		IncludesCart: q.IncludesCart,
		ShowUnlisted: q.ShowUnlisted,
		Limit:        cursor * take,
	}
}
