package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/padraicbc/teemarket/models"
)

type courseData struct {
	ID        string   `json:"id"`
	EntityID  string   `json:"entityId"`
	Name      string   `json:"name"`
	Markup    *int     `json:"markup,omitempty"`
	BuyerFee  *float64 `json:"buyerFee,omitempty"`
	SellerFee *float64 `json:"sellerFee,omitempty"`
	Timezone  string   `json:"timezone"`
}

type createCourseRequest struct {
	EntityID  string   `json:"entityId" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Markup    *int     `json:"markup" validate:"omitempty,min=0"`
	BuyerFee  *float64 `json:"buyerFee" validate:"omitempty,min=0,max=100"`
	SellerFee *float64 `json:"sellerFee" validate:"omitempty,min=0,max=100"`
	Latitude  float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64  `json:"longitude" validate:"min=-180,max=180"`
	Timezone  string   `json:"timezone"`
}

func toCourseData(cr models.Course) courseData {
	return courseData{
		ID:        cr.ID,
		EntityID:  cr.EntityID,
		Name:      cr.Name,
		Markup:    cr.Markup,
		BuyerFee:  cr.BuyerFee,
		SellerFee: cr.SellerFee,
		Timezone:  cr.Timezone,
	}
}

// Courses returns all courses, optionally filtered by tenant entity.
func (h *Handler) Courses(c echo.Context) error {
	entityID := c.QueryParam("entityID")

	var courses []models.Course
	q := h.db.NewSelect().
		Model(&courses).
		OrderExpr("c.name ASC")

	if entityID != "" {
		q = q.Where("c.entity_id = ?", entityID)
	}

	if err := q.Scan(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	result := make([]courseData, len(courses))
	for i, cr := range courses {
		result[i] = toCourseData(cr)
	}

	return c.JSON(http.StatusOK, result)
}

// CreateCourse inserts a new course with its marketplace fee settings.
func (h *Handler) CreateCourse(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.Name = strings.TrimSpace(req.Name)
	req.EntityID = strings.TrimSpace(req.EntityID)
	req.Timezone = strings.TrimSpace(req.Timezone)
	if req.Timezone == "" {
		req.Timezone = "UTC"
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	course := &models.Course{
		ID:        uuid.NewString(),
		EntityID:  req.EntityID,
		Name:      req.Name,
		Markup:    req.Markup,
		BuyerFee:  req.BuyerFee,
		SellerFee: req.SellerFee,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  req.Timezone,
	}

	if _, err := h.db.NewInsert().Model(course).Exec(c.Request().Context()); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
			return echo.NewHTTPError(http.StatusConflict, "course already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, toCourseData(*course))
}
