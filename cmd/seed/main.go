// cmd/seed/main.go
// Loads a JSON fixture of courses, tee times and resale inventory into the
// PostgreSQL database. Rows whose id already exists are left alone.
//
// Usage:
//
//	go run ./cmd/seed -file cmd/seed/fixture.json -shift
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/padraicbc/teemarket/config"
	bundb "github.com/padraicbc/teemarket/db"
	"github.com/padraicbc/teemarket/models"
)

const batchSize = 500

type fixture struct {
	Assets   []models.Asset   `json:"assets"`
	Users    []models.User    `json:"users"`
	Courses  []models.Course  `json:"courses"`
	TeeTimes []models.TeeTime `json:"teeTimes"`
	Lists    []models.List    `json:"lists"`
	Bookings []models.Booking `json:"bookings"`
}

func main() {
	file := flag.String("file", "cmd/seed/fixture.json", "fixture path")
	shift := flag.Bool("shift", false, "move tee times so the earliest falls on today")
	flag.Parse()

	ctx := context.Background()

	fx, err := load(*file)
	if err != nil {
		log.Fatalf("load fixture: %v", err)
	}
	if *shift {
		days := shiftToToday(fx, time.Now().UTC())
		log.Printf("shifted tee times by %d days", days)
	}

	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()
	log.Println("connected to PostgreSQL")

	if err := bundb.CreateTables(ctx, db); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	err = db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		steps := []struct {
			name string
			fn   func() (int, error)
		}{
			{"assets", func() (int, error) { return insertBatches(ctx, tx, fx.Assets) }},
			{"users", func() (int, error) { return insertBatches(ctx, tx, fx.Users) }},
			{"courses", func() (int, error) { return insertBatches(ctx, tx, fx.Courses) }},
			{"tee_times", func() (int, error) { return insertBatches(ctx, tx, fx.TeeTimes) }},
			{"lists", func() (int, error) { return insertBatches(ctx, tx, fx.Lists) }},
			{"bookings", func() (int, error) { return insertBatches(ctx, tx, fx.Bookings) }},
		}
		for _, s := range steps {
			n, err := s.fn()
			if err != nil {
				return err
			}
			log.Printf("%-10s  %d rows seeded", s.name, n)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("seed complete")
}

func load(path string) (*fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fx fixture
	if err := json.Unmarshal(b, &fx); err != nil {
		return nil, err
	}
	for i := range fx.Bookings {
		if fx.Bookings[i].ID == "" {
			fx.Bookings[i].ID = uuid.NewString()
		}
	}
	return &fx, nil
}

// shiftToToday moves every tee time by whole days so the earliest one is on
// now's calendar day, returning the number of days moved.
func shiftToToday(fx *fixture, now time.Time) int {
	if len(fx.TeeTimes) == 0 {
		return 0
	}
	earliest := fx.TeeTimes[0].ProviderDate
	for _, tt := range fx.TeeTimes[1:] {
		if tt.ProviderDate.Before(earliest) {
			earliest = tt.ProviderDate
		}
	}

	day := func(t time.Time) time.Time { return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC) }
	days := int(day(now).Sub(day(earliest.UTC())).Hours() / 24)

	for i := range fx.TeeTimes {
		tt := &fx.TeeTimes[i]
		tt.ProviderDate = tt.ProviderDate.AddDate(0, 0, days)
		tt.Date = tt.ProviderDate.UTC().Format(time.DateOnly)
	}
	for i := range fx.Lists {
		fx.Lists[i].EndTime = fx.Lists[i].EndTime.AddDate(0, 0, days)
	}
	return days
}

func insertBatches[T any](ctx context.Context, db bun.IDB, rows []T) (int, error) {
	total := 0
	for start := 0; start < len(rows); start += batchSize {
		batch := rows[start:min(start+batchSize, len(rows))]
		res, err := db.NewInsert().Model(&batch).On("CONFLICT (id) DO NOTHING").Exec(ctx)
		if err != nil {
			return total, err
		}
		n, _ := res.RowsAffected()
		total += int(n)
	}
	return total, nil
}
