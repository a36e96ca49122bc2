package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/policy"
	"github.com/iliyamo/hall-reservation/internal/repository"
)

// AdminHandler bundles the repositories for superadmin venue management:
// center and hall CRUD plus editor access grants. Routes using it sit
// behind RequireRole(SUPERADMIN), and each handler re-checks through the
// policy so the rule holds even if a route is ever wired differently.
type AdminHandler struct {
	Centers  *repository.CenterRepo
	Halls    *repository.HallRepo
	Access   *repository.HallAccessRepo
	SeedDays int
}

func NewAdminHandler(centers *repository.CenterRepo, halls *repository.HallRepo, access *repository.HallAccessRepo, seedDays int) *AdminHandler {
	if centers == nil || halls == nil || access == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Centers: centers, Halls: halls, Access: access, SeedDays: seedDays}
}

// requireSuperAdmin authorizes the acting user for venue administration.
// When it reports false the response has already been written.
func requireSuperAdmin(c echo.Context) (model.Actor, bool) {
	actor, err := currentActor(c)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return model.Actor{}, false
	}
	if err := policy.AuthorizeVenueAdmin(actor); err != nil {
		_ = writeServiceError(c, err)
		return model.Actor{}, false
	}
	return actor, true
}
