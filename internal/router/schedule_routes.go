package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/handler"
	"github.com/iliyamo/hall-reservation/internal/middleware"
	"github.com/iliyamo/hall-reservation/internal/model"
)

// RegisterSchedules registers the staff schedule lifecycle and the request
// workflow. Role middleware shapes the route surface; the fine-grained
// rules (hall access, department, ownership) are enforced by the policy
// inside the services.
func RegisterSchedules(e *echo.Echo, s *handler.ScheduleHandler, r *handler.RequestHandler, jwtSecret string) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))

	// Any authenticated role may read a hall's raw schedule.
	auth.GET("/halls/:id/schedules", s.ListByHall)

	// Schedule mutations are staff territory.
	staff := auth.Group("", middleware.RequireRole(model.RoleEditor, model.RoleSuperAdmin))
	staff.POST("/schedules", s.Create)
	staff.PUT("/schedules/:id", s.Update)
	staff.PATCH("/schedules/:id", s.Update)
	staff.DELETE("/schedules/:id", s.Delete)
	staff.GET("/halls/:id/requests", r.ListByHall)
	staff.POST("/requests/:id/answer", r.Answer)
	staff.POST("/requests/:id/reject", r.Reject)

	// The bulk reset is superadmin only; the policy enforces it again.
	auth.DELETE("/schedules", s.DeleteAll, middleware.RequireRole(model.RoleSuperAdmin))

	// Viewers submit and track reservation requests. Superadmins may
	// submit on a viewer's behalf.
	viewer := auth.Group("", middleware.RequireRole(model.RoleViewer, model.RoleSuperAdmin))
	viewer.POST("/requests", r.Create)
	viewer.GET("/my-requests", r.ListMine)
}
