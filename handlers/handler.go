package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"

	mw "github.com/padraicbc/teemarket/middleware"
	"github.com/padraicbc/teemarket/search"
	"github.com/padraicbc/teemarket/weather"
)

// Searcher is the search core the handlers serve.
type Searcher interface {
	TeeTimesForDay(ctx context.Context, q search.Query) search.Page
	TeeTimeByID(ctx context.Context, teeTimeID, userID string) *search.Result
	ListingByID(ctx context.Context, listingID, userID string) *search.Result
	UnlistedTeeTime(ctx context.Context, ownerID, teeTimeID, userID string) *search.Result
	BlackoutDates(ctx context.Context, courseID string) []time.Time
	Forecast(ctx context.Context, courseID string) []weather.Period
}

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db     *bun.DB
	search Searcher
}

// New creates a Handler with the given database connection and search service.
func New(db *bun.DB, s Searcher) *Handler {
	return &Handler{db: db, search: s}
}

// Register mounts the API under /api. Searches are public and a bearer
// token only identifies the viewer; course administration requires one.
func (h *Handler) Register(e *echo.Echo, key []byte) {
	api := e.Group("/api", mw.OptionalJWT(key))
	api.GET("/courses/:courseID/tee-times", h.TeeTimes)
	api.GET("/courses/:courseID/blackout-dates", h.BlackoutDates)
	api.GET("/courses/:courseID/forecast", h.Forecast)
	api.GET("/tee-times/:teeTimeID", h.TeeTime)
	api.GET("/tee-times/:teeTimeID/unlisted/:ownerID", h.UnlistedTeeTime)
	api.GET("/listings/:listingID", h.Listing)

	admin := mw.JWT(key)
	api.GET("/courses", h.Courses, admin)
	api.POST("/courses", h.CreateCourse, admin)
}

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validator.New()}
}

func (cv *Validator) Validate(i interface{}) error {
	if err := cv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
