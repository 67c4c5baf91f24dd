package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	mw "github.com/padraicbc/teemarket/middleware"
	"github.com/padraicbc/teemarket/search"
)

type teeTimesRequest struct {
	CourseID           string  `param:"courseID" validate:"required"`
	Date               string  `query:"date" validate:"required,datetime=2006-01-02"`
	MinDate            string  `query:"minDate" validate:"omitempty,datetime=2006-01-02"`
	MaxDate            string  `query:"maxDate" validate:"omitempty,datetime=2006-01-02"`
	StartTime          int     `query:"startTime" validate:"min=0,max=2359"`
	EndTime            int     `query:"endTime" validate:"min=0,max=2359,gtefield=StartTime"`
	Holes              int     `query:"holes" validate:"oneof=9 18"`
	Golfers            int     `query:"golfers" validate:"min=1,max=4"`
	ShowUnlisted       bool    `query:"showUnlisted"`
	IncludesCart       bool    `query:"includesCart"`
	LowerPrice         float64 `query:"lowerPrice" validate:"min=0"`
	UpperPrice         float64 `query:"upperPrice" validate:"gtefield=LowerPrice"`
	Take               int     `query:"take" validate:"omitempty,min=1,max=100"`
	SortTime           string  `query:"sortTime" validate:"omitempty,oneof=asc desc"`
	SortPrice          string  `query:"sortPrice" validate:"omitempty,oneof=asc desc"`
	TimezoneCorrection int     `query:"timezoneCorrection" validate:"min=-14,max=14"`
	Cursor             int     `query:"cursor" validate:"omitempty,min=1"`
}

func parseDay(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

// TeeTimes returns first-hand and resale tee times for one course day.
func (h *Handler) TeeTimes(c echo.Context) error {
	req := teeTimesRequest{
		EndTime:    2359,
		Holes:      18,
		Golfers:    1,
		UpperPrice: 10000,
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	page := h.search.TeeTimesForDay(c.Request().Context(), search.Query{
		CourseID:           req.CourseID,
		Date:               parseDay(req.Date),
		MinDate:            parseDay(req.MinDate),
		MaxDate:            parseDay(req.MaxDate),
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		Holes:              req.Holes,
		Golfers:            req.Golfers,
		ShowUnlisted:       req.ShowUnlisted,
		IncludesCart:       req.IncludesCart,
		LowerPrice:         req.LowerPrice,
		UpperPrice:         req.UpperPrice,
		Take:               req.Take,
		SortTime:           req.SortTime,
		SortPrice:          req.SortPrice,
		TimezoneCorrection: req.TimezoneCorrection,
		Cursor:             req.Cursor,
		UserID:             mw.UserID(c),
	})

	return c.JSON(http.StatusOK, page)
}

// TeeTime returns a single course-sold tee time with its forecast.
func (h *Handler) TeeTime(c echo.Context) error {
	res := h.search.TeeTimeByID(c.Request().Context(), c.Param("teeTimeID"), mw.UserID(c))
	if res == nil {
		return echo.NewHTTPError(http.StatusNotFound, "tee time not found")
	}
	return c.JSON(http.StatusOK, res)
}

// Listing returns a resale listing with its forecast.
func (h *Handler) Listing(c echo.Context) error {
	res := h.search.ListingByID(c.Request().Context(), c.Param("listingID"), mw.UserID(c))
	if res == nil {
		return echo.NewHTTPError(http.StatusNotFound, "listing not found")
	}
	return c.JSON(http.StatusOK, res)
}

// UnlistedTeeTime returns an owner's unlisted bookings on a tee time.
func (h *Handler) UnlistedTeeTime(c echo.Context) error {
	res := h.search.UnlistedTeeTime(c.Request().Context(), c.Param("ownerID"), c.Param("teeTimeID"), mw.UserID(c))
	if res == nil {
		return echo.NewHTTPError(http.StatusNotFound, "unlisted tee time not found")
	}
	return c.JSON(http.StatusOK, res)
}

// BlackoutDates returns the days in the coming year without tee times.
func (h *Handler) BlackoutDates(c echo.Context) error {
	days := h.search.BlackoutDates(c.Request().Context(), c.Param("courseID"))
	return c.JSON(http.StatusOK, lo.Map(days, func(d time.Time, _ int) string {
		return d.Format(time.DateOnly)
	}))
}

// Forecast returns the forecast periods for a course.
func (h *Handler) Forecast(c echo.Context) error {
	return c.JSON(http.StatusOK, h.search.Forecast(c.Request().Context(), c.Param("courseID")))
}
