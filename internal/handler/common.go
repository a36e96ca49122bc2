// Package handler exposes the HTTP surface: authentication, public
// browsing, schedule and request management and superadmin venue
// administration. Handlers bind and sanity-check input, then delegate all
// domain decisions to the service layer and translate its error taxonomy
// to HTTP status codes.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/middleware"
	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/policy"
	"github.com/iliyamo/hall-reservation/internal/service"
)

// currentActor fetches the authenticated identity placed by the JWT
// middleware.
func currentActor(c echo.Context) (model.Actor, error) {
	return middleware.CurrentActor(c)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// writeServiceError maps the service and policy error taxonomy onto HTTP:
// validation 400, denial 403, missing target 404, slot conflict 409.
// Anything else is an internal error; the detail is not leaked.
func writeServiceError(c echo.Context, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "validation failed",
			"fields": vErr.FieldErrors,
		})
	}
	if errors.Is(err, policy.ErrDenied) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	}
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var conflict *service.ConflictError
	if errors.As(err, &conflict) {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":    conflict.Error(),
			"conflict": scheduleResponse(conflict.Entry),
		})
	}
	c.Logger().Errorf("handler: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// scheduleResponse is the wire shape of a schedule entry.
type scheduleEntryResp struct {
	ID         uint64  `json:"id"`
	HallID     uint64  `json:"hall_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Status     string  `json:"status"`
	CreatedBy  *uint64 `json:"created_by,omitempty"`
	EventType  *int    `json:"event_type,omitempty"`
	EventName  string  `json:"event_name,omitempty"`
	EventOwner string  `json:"event_owner,omitempty"`
}

func scheduleResponse(e model.ScheduleEntry) scheduleEntryResp {
	resp := scheduleEntryResp{
		ID:         e.ID,
		HallID:     e.HallID,
		Date:       e.Date,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		Status:     string(e.Status),
		CreatedBy:  e.CreatedBy,
		EventName:  e.EventName,
		EventOwner: e.EventOwner,
	}
	if e.EventType != nil {
		code := int(*e.EventType)
		resp.EventType = &code
	}
	return resp
}

func scheduleListResponse(entries []model.ScheduleEntry) []scheduleEntryResp {
	out := make([]scheduleEntryResp, 0, len(entries))
	for _, e := range entries {
		out = append(out, scheduleResponse(e))
	}
	return out
}
