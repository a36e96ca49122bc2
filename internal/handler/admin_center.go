package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/repository"
)

type centerReq struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type centerResp struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

func centerResponse(ct *model.Center) centerResp {
	return centerResp{ID: ct.ID, Name: ct.Name, Address: ct.Address, Description: ct.Description}
}

// CreateCenter handles POST /v1/centers.
func (h *AdminHandler) CreateCenter(c echo.Context) error {
	if _, ok := requireSuperAdmin(c); !ok {
		return nil
	}
	var req centerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	center := &model.Center{Name: name, Address: strings.TrimSpace(req.Address), Description: req.Description}
	if err := h.Centers.Create(c.Request().Context(), center); err != nil {
		if strings.Contains(err.Error(), "1062") {
			return c.JSON(http.StatusConflict, echo.Map{"error": "center name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create center"})
	}
	return c.JSON(http.StatusCreated, centerResponse(center))
}

// UpdateCenter handles PUT /v1/centers/:id.
func (h *AdminHandler) UpdateCenter(c echo.Context) error {
	if _, ok := requireSuperAdmin(c); !ok {
		return nil
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req centerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	center, err := h.Centers.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrCenterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "center not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	center.Name = name
	center.Address = strings.TrimSpace(req.Address)
	center.Description = req.Description
	if err := h.Centers.Update(c.Request().Context(), center); err != nil {
		if strings.Contains(err.Error(), "1062") {
			return c.JSON(http.StatusConflict, echo.Map{"error": "center name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, centerResponse(center))
}

// DeleteCenter handles DELETE /v1/centers/:id. Deletion cascades over the
// center's halls, their schedules, requests and access grants.
func (h *AdminHandler) DeleteCenter(c echo.Context) error {
	if _, ok := requireSuperAdmin(c); !ok {
		return nil
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Centers.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrCenterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "center not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
