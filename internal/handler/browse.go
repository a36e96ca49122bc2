// This file defines the public browsing API: unauthenticated routes for
// listing centers and halls and for the reconciled hall timetable. Responses
// carry only display-safe fields and the routes sit behind the Redis
// response cache.

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/repository"
	"github.com/iliyamo/hall-reservation/internal/service"
)

// BrowseHandler aggregates the read-side dependencies for public browsing.
type BrowseHandler struct {
	Centers   *repository.CenterRepo
	Halls     *repository.HallRepo
	Schedules *service.ScheduleService
	Requests  *service.RequestService
}

func NewBrowseHandler(centers *repository.CenterRepo, halls *repository.HallRepo, schedules *service.ScheduleService, requests *service.RequestService) *BrowseHandler {
	return &BrowseHandler{Centers: centers, Halls: halls, Schedules: schedules, Requests: requests}
}

// timetableEntryResp extends the schedule wire shape with the id of the
// answered request the reconciler matched, when any.
type timetableEntryResp struct {
	scheduleEntryResp
	MatchedRequestID *uint64 `json:"matched_request_id,omitempty"`
}

// ListCenters handles GET /v1/centers.
func (h *BrowseHandler) ListCenters(c echo.Context) error {
	centers, err := h.Centers.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items := make([]centerResp, 0, len(centers))
	for _, ct := range centers {
		items = append(items, centerResponse(ct))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListHallsByCenter handles GET /v1/centers/:id/halls.
func (h *BrowseHandler) ListHallsByCenter(c echo.Context) error {
	centerID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.Centers.GetByID(c.Request().Context(), centerID); err != nil {
		if err == repository.ErrCenterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "center not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	halls, err := h.Halls.ListByCenter(c.Request().Context(), centerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items := make([]hallResp, 0, len(halls))
	for _, hl := range halls {
		items = append(items, hallResponse(hl))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetHall handles GET /v1/halls/:id.
func (h *BrowseHandler) GetHall(c echo.Context) error {
	hallID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	hall, err := h.Halls.GetByID(c.Request().Context(), hallID)
	if err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, hallResponse(hall))
}

// Timetable handles GET /v1/halls/:id/timetable: the hall's schedule with
// answered-request metadata reconciled onto reserved entries. An optional
// ?date=2006-01-02 limits the view to one day.
func (h *BrowseHandler) Timetable(c echo.Context) error {
	hallID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	var entries []model.ScheduleEntry
	if date := c.QueryParam("date"); date != "" {
		entries, err = h.Schedules.ListForHallOn(ctx, hallID, date)
	} else {
		entries, err = h.Schedules.ListForHall(ctx, hallID)
	}
	if err != nil {
		return writeServiceError(c, err)
	}
	answered, err := h.Requests.ListAnsweredForHall(ctx, hallID)
	if err != nil {
		return writeServiceError(c, err)
	}

	enriched := service.ReconcileScheduleView(hallID, entries, answered)
	items := make([]timetableEntryResp, 0, len(enriched))
	for _, e := range enriched {
		items = append(items, timetableEntryResp{
			scheduleEntryResp: scheduleResponse(e.ScheduleEntry),
			MatchedRequestID:  e.MatchedRequestID,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"hall_id": hallID, "items": items})
}
