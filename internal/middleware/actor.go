package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/model"
)

// actorKey is the context key JWTAuth stores the authenticated actor under.
const actorKey = "actor"

// ErrNoActor is returned when a handler asks for the actor on a route that
// did not pass through JWTAuth.
var ErrNoActor = errors.New("no authenticated actor in context")

// CurrentActor returns the authenticated identity stored by JWTAuth.
func CurrentActor(c echo.Context) (model.Actor, error) {
	if a, ok := c.Get(actorKey).(model.Actor); ok {
		return a, nil
	}
	return model.Actor{}, ErrNoActor
}
