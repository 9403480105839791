package availability

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Rogojang77/clinic-appointment-sub000/internal/domain/schedule"
	"github.com/Rogojang77/clinic-appointment-sub000/internal/domain/section"
)

// SectionDirectory resolves legacy test-type names to section records.
// Implemented by section.Service.
type SectionDirectory interface {
	ResolveName(ctx context.Context, name, location string) (*section.Section, error)
}

type Handler struct {
	resolver *Resolver
	sections SectionDirectory
}

func NewHandler(resolver *Resolver, sections SectionDirectory) *Handler {
	return &Handler{resolver: resolver, sections: sections}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/availability", h.GetAvailability)
	api.GET("/availability/default-count", h.GetDefaultCount)
}

func (h *Handler) GetAvailability(c echo.Context) error {
	req, err := h.buildRequest(c)
	if err != nil {
		return err
	}
	slots, err := h.resolver.Resolve(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"location": req.Location,
		"day":      req.Day,
		"slots":    slots,
	})
}

func (h *Handler) GetDefaultCount(c echo.Context) error {
	req, err := h.buildRequest(c)
	if err != nil {
		return err
	}
	count, err := h.resolver.CountDefaultSlots(c.Request().Context(), req.Location, req.Day, req.SectionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"location": req.Location,
		"day":      req.Day,
		"count":    count,
	})
}

// buildRequest validates the query and normalizes the section reference.
// Missing location or day is a caller contract violation, rejected here so
// the resolver never sees it.
func (h *Handler) buildRequest(c echo.Context) (Request, error) {
	location := c.QueryParam("location")
	if location == "" {
		return Request{}, echo.NewHTTPError(http.StatusBadRequest, "location is required")
	}
	dayName := c.QueryParam("day")
	if dayName == "" {
		return Request{}, echo.NewHTTPError(http.StatusBadRequest, "day is required")
	}
	day, err := schedule.ParseWeekday(dayName)
	if err != nil {
		return Request{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date := c.QueryParam("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return Request{}, echo.NewHTTPError(http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		}
	}

	sectionID, err := h.sectionRef(c, location)
	if err != nil {
		return Request{}, err
	}
	return Request{SectionID: sectionID, Location: location, Day: day, Date: date}, nil
}

// sectionRef picks up either a section_id or a legacy test_type name. An
// unknown test_type degrades to the location tiers instead of failing, the
// way old clients expect.
func (h *Handler) sectionRef(c echo.Context, location string) (*uuid.UUID, error) {
	if raw := c.QueryParam("section_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid section_id")
		}
		return &id, nil
	}
	if name := c.QueryParam("test_type"); name != "" {
		sec, err := h.sections.ResolveName(c.Request().Context(), name, location)
		if errors.Is(err, section.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return &sec.ID, nil
	}
	return nil, nil
}
