package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/service"
)

// ScheduleHandler exposes the staff-facing schedule lifecycle endpoints.
type ScheduleHandler struct {
	Schedules *service.ScheduleService
}

func NewScheduleHandler(s *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Schedules: s}
}

type scheduleReq struct {
	HallID     uint64 `json:"hall_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"` // optional, inferred from standard slots
	Status     string `json:"status"`
	EventType  *int   `json:"event_type"` // superadmins only; editors are stamped
	EventName  string `json:"event_name"`
	EventOwner string `json:"event_owner"`
}

func (r scheduleReq) toInput() service.ScheduleInput {
	in := service.ScheduleInput{
		HallID:     r.HallID,
		Date:       strings.TrimSpace(r.Date),
		StartTime:  strings.TrimSpace(r.StartTime),
		EndTime:    strings.TrimSpace(r.EndTime),
		Status:     model.ScheduleStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		EventName:  r.EventName,
		EventOwner: r.EventOwner,
	}
	if r.EventType != nil {
		et := model.EventType(*r.EventType)
		in.EventType = &et
	}
	return in
}

// Create handles POST /v1/schedules.
func (h *ScheduleHandler) Create(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req scheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	entry, err := h.Schedules.Create(c.Request().Context(), req.toInput(), actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, scheduleResponse(*entry))
}

// Update handles PUT /v1/schedules/:id. All mutable fields are rewritten
// from the body; the entry's hall never changes.
func (h *ScheduleHandler) Update(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req scheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	entry, err := h.Schedules.Update(c.Request().Context(), id, req.toInput(), actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, scheduleResponse(*entry))
}

// Delete handles DELETE /v1/schedules/:id.
func (h *ScheduleHandler) Delete(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Schedules.Delete(c.Request().Context(), id, actor); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAll handles DELETE /v1/schedules, the superadmin-only bulk reset.
func (h *ScheduleHandler) DeleteAll(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	n, err := h.Schedules.DeleteAll(c.Request().Context(), actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": n})
}

// ListByHall handles GET /v1/halls/:id/schedules for staff views.
func (h *ScheduleHandler) ListByHall(c echo.Context) error {
	hallID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	entries, err := h.Schedules.ListForHall(c.Request().Context(), hallID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": scheduleListResponse(entries)})
}
