package schedule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/schedules/sections/:sectionId", h.GetSectionSchedule)
	api.PUT("/schedules/sections/:sectionId/days/:day", h.SetSectionDay)
	api.DELETE("/schedules/sections/:sectionId/days/:day", h.ClearSectionDay)
	api.GET("/schedules/locations/:location", h.GetLocationSchedule)
	api.PUT("/schedules/locations/:location/days/:day", h.SetLocationDay)
}

func (h *Handler) GetSectionSchedule(c echo.Context) error {
	sectionID, err := uuid.Parse(c.Param("sectionId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid section id")
	}
	location := c.QueryParam("location")
	if location == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "location is required")
	}
	sched, err := h.svc.GetSectionSchedule(c.Request().Context(), sectionID, location)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sched)
}

type setSectionDayRequest struct {
	Location     string `json:"location"`
	SlotInterval int    `json:"slot_interval"`
	DayInput
}

func (h *Handler) SetSectionDay(c echo.Context) error {
	sectionID, err := uuid.Parse(c.Param("sectionId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid section id")
	}
	day, err := ParseWeekday(c.Param("day"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req setSectionDayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	slots, err := h.svc.SetSectionDay(c.Request().Context(), sectionID, req.Location, day, req.SlotInterval, req.DayInput)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"day":   day,
		"slots": slots,
	})
}

func (h *Handler) ClearSectionDay(c echo.Context) error {
	sectionID, err := uuid.Parse(c.Param("sectionId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid section id")
	}
	day, err := ParseWeekday(c.Param("day"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	location := c.QueryParam("location")
	if location == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "location is required")
	}
	if err := h.svc.ClearSectionDay(c.Request().Context(), sectionID, location, day); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetLocationSchedule(c echo.Context) error {
	location := c.Param("location")
	sched, err := h.svc.GetLocationSchedule(c.Request().Context(), location)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sched)
}

func (h *Handler) SetLocationDay(c echo.Context) error {
	location := c.Param("location")
	day, err := ParseWeekday(c.Param("day"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req DayInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	slots, err := h.svc.SetLocationDay(c.Request().Context(), location, day, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"day":   day,
		"slots": slots,
	})
}
