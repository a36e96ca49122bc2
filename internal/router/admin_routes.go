package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/handler"
	"github.com/iliyamo/hall-reservation/internal/middleware"
	"github.com/iliyamo/hall-reservation/internal/model"
)

// RegisterAdmin registers superadmin venue administration: center and hall
// CRUD plus editor access grants.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleSuperAdmin),
	)

	g.POST("/centers", a.CreateCenter)
	g.PUT("/centers/:id", a.UpdateCenter)
	g.DELETE("/centers/:id", a.DeleteCenter)

	g.POST("/halls", a.CreateHall)
	g.PUT("/halls/:id", a.UpdateHall)
	g.DELETE("/halls/:id", a.DeleteHall)

	g.POST("/access-grants", a.CreateGrant)
	g.DELETE("/access-grants/:id", a.DeleteGrant)
	g.GET("/halls/:id/access-grants", a.ListGrantsByHall)
}
