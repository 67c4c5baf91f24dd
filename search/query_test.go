package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryFilterWindow(t *testing.T) {
	now := time.Date(2026, 10, 16, 14, 5, 0, 0, time.UTC)
	q := Query{
		CourseID:  "course-1",
		Date:      time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime: 600,
		EndTime:   1800,
		Holes:     18,
		Golfers:   2,
	}

	f := q.filter(now, 30*time.Minute, 2, 5)

	assert.Equal(t, now.Add(30*time.Minute), f.NotBefore)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), f.From)
	assert.Equal(t, time.Date(2026, 10, 20, 23, 59, 59, int(999*time.Millisecond), time.UTC), f.To)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, "course-1", f.CourseID)
	assert.Equal(t, 2, f.Golfers)
}

func TestQueryFilterTimezoneCorrection(t *testing.T) {
	q := Query{
		Date:               time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		TimezoneCorrection: 6,
	}

	f := q.filter(time.Time{}, 0, 1, 5)

	assert.Equal(t, time.Date(2026, 10, 20, 6, 0, 0, 0, time.UTC), f.From)
	assert.Equal(t, time.Date(2026, 10, 21, 5, 59, 59, int(999*time.Millisecond), time.UTC), f.To)
}

func TestQueryFilterMinMaxDates(t *testing.T) {
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	// range days that contain the searched day do not narrow it
	wide := Query{Date: day, MinDate: day.AddDate(0, 0, -3), MaxDate: day.AddDate(0, 0, 3)}.filter(time.Time{}, 0, 1, 5)
	assert.Equal(t, day, wide.From)
	assert.Equal(t, dayEnd(day), wide.To)

	// a max date before the searched day empties the window
	past := Query{Date: day, MaxDate: day.AddDate(0, 0, -1)}.filter(time.Time{}, 0, 1, 5)
	assert.True(t, past.To.Before(past.From))
}

func TestQueryDateIgnoresClockTime(t *testing.T) {
	q := Query{Date: time.Date(2026, 10, 20, 17, 45, 0, 0, time.UTC)}
	f := q.filter(time.Time{}, 0, 1, 5)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), f.From)
}
