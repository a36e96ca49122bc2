package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/repository"
)

type grantReq struct {
	HallID   *uint64 `json:"hall_id"`
	CenterID *uint64 `json:"center_id"`
	UserID   uint64  `json:"user_id"`
}

type grantResp struct {
	ID       uint64  `json:"id"`
	HallID   *uint64 `json:"hall_id,omitempty"`
	CenterID *uint64 `json:"center_id,omitempty"`
	UserID   uint64  `json:"user_id"`
}

func grantResponse(g *model.HallAccess) grantResp {
	return grantResp{ID: g.ID, HallID: g.HallID, CenterID: g.CenterID, UserID: g.UserID}
}

// CreateGrant handles POST /v1/access-grants. Exactly one of hall_id and
// center_id must be set; a center grant covers every hall under it.
func (h *AdminHandler) CreateGrant(c echo.Context) error {
	if _, ok := requireSuperAdmin(c); !ok {
		return nil
	}
	var req grantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id is required"})
	}
	if (req.HallID == nil) == (req.CenterID == nil) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "exactly one of hall_id and center_id is required"})
	}

	ctx := c.Request().Context()
	var (
		grant *model.HallAccess
		err   error
	)
	if req.HallID != nil {
		if _, herr := h.Halls.GetByID(ctx, *req.HallID); herr != nil {
			if herr == repository.ErrHallNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		grant, err = h.Access.GrantHall(ctx, *req.HallID, req.UserID)
	} else {
		if _, cerr := h.Centers.GetByID(ctx, *req.CenterID); cerr != nil {
			if cerr == repository.ErrCenterNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "center not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		grant, err = h.Access.GrantCenter(ctx, *req.CenterID, req.UserID)
	}
	if err != nil {
		if err == repository.ErrGrantExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "grant already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create grant"})
	}
	return c.JSON(http.StatusCreated, grantResponse(grant))
}

// DeleteGrant handles DELETE /v1/access-grants/:id.
func (h *AdminHandler) DeleteGrant(c echo.Context) error {
	if _, ok := requireSuperAdmin(c); !ok {
		return nil
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Access.Revoke(c.Request().Context(), id); err != nil {
		if err == repository.ErrGrantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "grant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListGrantsByHall handles GET /v1/halls/:id/access-grants. Center-level
// grants covering the hall are included.
func (h *AdminHandler) ListGrantsByHall(c echo.Context) error {
	if _, ok := requireSuperAdmin(c); !ok {
		return nil
	}
	hallID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.Halls.GetByID(c.Request().Context(), hallID); err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	grants, err := h.Access.ListForHall(c.Request().Context(), hallID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items := make([]grantResp, 0, len(grants))
	for _, g := range grants {
		items = append(items, grantResponse(g))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
