package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/service"
)

// RequestHandler exposes the viewer request workflow: submission and the
// staff answer/reject transitions.
type RequestHandler struct {
	Requests *service.RequestService
}

func NewRequestHandler(s *service.RequestService) *RequestHandler {
	return &RequestHandler{Requests: s}
}

type createRequestReq struct {
	HallID     uint64 `json:"hall_id"`
	EventType  int    `json:"event_type"`
	EventName  string `json:"event_name"`
	EventOwner string `json:"event_owner"`
	EventDate  string `json:"event_date"`
	EventTime  string `json:"event_time"`
	Message    string `json:"message"`
}

type requestResp struct {
	ID         uint64 `json:"id"`
	HallID     uint64 `json:"hall_id"`
	CreatedBy  uint64 `json:"created_by"`
	Status     string `json:"status"`
	EventType  int    `json:"event_type"`
	EventName  string `json:"event_name"`
	EventOwner string `json:"event_owner"`
	EventDate  string `json:"event_date"`
	EventTime  string `json:"event_time"`
	Message    string `json:"message,omitempty"`
}

func requestResponse(q model.Request) requestResp {
	return requestResp{
		ID:         q.ID,
		HallID:     q.HallID,
		CreatedBy:  q.CreatedBy,
		Status:     string(q.Status),
		EventType:  int(q.EventType),
		EventName:  q.EventName,
		EventOwner: q.EventOwner,
		EventDate:  q.EventDate,
		EventTime:  q.EventTime,
		Message:    q.Message,
	}
}

func requestListResponse(items []model.Request) []requestResp {
	out := make([]requestResp, 0, len(items))
	for _, q := range items {
		out = append(out, requestResponse(q))
	}
	return out
}

// Create handles POST /v1/requests: a viewer proposes a reservation.
func (h *RequestHandler) Create(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	created, err := h.Requests.CreateRequest(c.Request().Context(), service.RequestInput{
		HallID:     req.HallID,
		EventType:  model.EventType(req.EventType),
		EventName:  req.EventName,
		EventOwner: req.EventOwner,
		EventDate:  req.EventDate,
		EventTime:  req.EventTime,
		Message:    req.Message,
	}, actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, requestResponse(*created))
}

// Answer handles POST /v1/requests/:id/answer.
func (h *RequestHandler) Answer(c echo.Context) error {
	return h.transition(c, h.Requests.AnswerRequest)
}

// Reject handles POST /v1/requests/:id/reject.
func (h *RequestHandler) Reject(c echo.Context) error {
	return h.transition(c, h.Requests.RejectRequest)
}

type transitionFunc func(ctx context.Context, id uint64, actor model.Actor) (*model.Request, error)

func (h *RequestHandler) transition(c echo.Context, op transitionFunc) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	req, err := op(c.Request().Context(), id, actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, requestResponse(*req))
}

// ListByHall handles GET /v1/halls/:id/requests for staff. An optional
// ?status=PENDING|ANSWERED|REJECTED narrows the listing.
func (h *RequestHandler) ListByHall(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	hallID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var status model.RequestStatus
	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		status = model.RequestStatus(strings.ToUpper(raw))
		switch status {
		case model.RequestPending, model.RequestAnswered, model.RequestRejected:
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status filter"})
		}
	}
	items, err := h.Requests.ListForHall(c.Request().Context(), hallID, status, actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": requestListResponse(items)})
}

// ListMine handles GET /v1/my-requests for the acting viewer.
func (h *RequestHandler) ListMine(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Requests.ListMine(c.Request().Context(), actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": requestListResponse(items)})
}
