package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/model"
)

// RequireRole returns a middleware that rejects requests whose authenticated
// actor does not hold one of the given roles. It assumes JWTAuth ran first.
// Fine-grained decisions (hall access, department, ownership) stay in the
// policy package; this gate only shapes the route surface per role.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := CurrentActor(c)
			if err != nil || !allowed[actor.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
