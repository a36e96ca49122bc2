package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/queue"
	"github.com/iliyamo/hall-reservation/internal/repository"
)

type hallReq struct {
	CenterID    uint64 `json:"center_id"`
	Name        string `json:"name"`
	Capacity    uint32 `json:"capacity"`
	Address     string `json:"address"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type hallResp struct {
	ID          uint64 `json:"id"`
	CenterID    uint64 `json:"center_id"`
	Name        string `json:"name"`
	Capacity    uint32 `json:"capacity"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

func hallResponse(hl *model.Hall) hallResp {
	return hallResp{
		ID:          hl.ID,
		CenterID:    hl.CenterID,
		Name:        hl.Name,
		Capacity:    hl.Capacity,
		Address:     hl.Address,
		Description: hl.Description,
		ImageURL:    hl.ImageURL,
	}
}

// CreateHall handles POST /v1/halls. On success a hall.created event is
// published so the background consumer seeds default availability; a broker
// outage never fails the create.
func (h *AdminHandler) CreateHall(c echo.Context) error {
	if _, ok := requireSuperAdmin(c); !ok {
		return nil
	}
	var req hallReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Capacity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be positive"})
	}
	if _, err := h.Centers.GetByID(c.Request().Context(), req.CenterID); err != nil {
		if err == repository.ErrCenterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "center not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	hall := &model.Hall{
		CenterID:    req.CenterID,
		Name:        name,
		Capacity:    req.Capacity,
		Address:     strings.TrimSpace(req.Address),
		Description: req.Description,
		ImageURL:    strings.TrimSpace(req.ImageURL),
	}
	if err := h.Halls.Create(c.Request().Context(), hall); err != nil {
		if strings.Contains(err.Error(), "1062") {
			return c.JSON(http.StatusConflict, echo.Map{"error": "hall name already exists in this center"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create hall"})
	}

	_ = queue.PublishHallCreated(c.Request().Context(), queue.HallCreatedEvent{
		HallID:   hall.ID,
		CenterID: hall.CenterID,
		HallName: hall.Name,
		SeedDays: h.SeedDays,
	})

	return c.JSON(http.StatusCreated, hallResponse(hall))
}

// UpdateHall handles PUT /v1/halls/:id. The owning center never changes.
func (h *AdminHandler) UpdateHall(c echo.Context) error {
	if _, ok := requireSuperAdmin(c); !ok {
		return nil
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req hallReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Capacity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be positive"})
	}
	hall, err := h.Halls.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	hall.Name = name
	hall.Capacity = req.Capacity
	hall.Address = strings.TrimSpace(req.Address)
	hall.Description = req.Description
	hall.ImageURL = strings.TrimSpace(req.ImageURL)
	if err := h.Halls.Update(c.Request().Context(), hall); err != nil {
		if strings.Contains(err.Error(), "1062") {
			return c.JSON(http.StatusConflict, echo.Map{"error": "hall name already exists in this center"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, hallResponse(hall))
}

// DeleteHall handles DELETE /v1/halls/:id. Deletion cascades over the
// hall's schedules, requests and access grants.
func (h *AdminHandler) DeleteHall(c echo.Context) error {
	if _, ok := requireSuperAdmin(c); !ok {
		return nil
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Halls.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
