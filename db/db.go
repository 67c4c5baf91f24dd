package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/padraicbc/teemarket/config"
	"github.com/padraicbc/teemarket/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	db := Open(cfg.PostgresDSN(), cfg.Debug)

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// Open returns a bun handle for dsn without checking connectivity.
func Open(dsn string, debug bool) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db
}

// CreateTables creates all tables in dependency order. Schema ownership
// lives elsewhere; this exists for local development and tests.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.Asset)(nil),
		(*models.User)(nil),
		(*models.Course)(nil),
		(*models.TeeTime)(nil),
		(*models.List)(nil),
		(*models.Booking)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS tee_times_course_provider_date ON tee_times (course_id, provider_date)`,
		`CREATE INDEX IF NOT EXISTS tee_times_course_date ON tee_times (course_id, date)`,
		`CREATE INDEX IF NOT EXISTS bookings_tee_time ON bookings (tee_time_id)`,
		`CREATE INDEX IF NOT EXISTS bookings_list ON bookings (list_id)`,
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Printf("index: %v", err)
		}
	}

	return nil
}
