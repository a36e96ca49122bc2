// Package middleware contains reusable HTTP middleware: JWT authentication,
// role gating, Redis response caching and token-bucket rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/model"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and stores the authenticated identity in the request context. Handlers
// read it back through CurrentActor; the raw "user_id" and "role" keys are
// also set for middleware that keys on them (rate limiting).
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			actor, ok := actorFromClaims(claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			c.Set(actorKey, actor)
			c.Set("user_id", actor.UserID)
			c.Set("role", string(actor.Role))
			return next(c)
		}
	}
}

// actorFromClaims rebuilds the model.Actor encoded in the token claims.
// Numeric claims arrive as float64 from the JSON decoder.
func actorFromClaims(claims jwt.MapClaims) (model.Actor, bool) {
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return model.Actor{}, false
	}
	roleRaw, _ := claims["role"].(string)
	role, ok := model.ParseRole(roleRaw)
	if !ok {
		return model.Actor{}, false
	}
	actor := model.Actor{UserID: uint64(sub), Role: role}
	if d, ok := claims["dept"].(float64); ok {
		if et, valid := model.ParseEventType(int(d)); valid {
			actor.Department = &et
		}
	}
	return actor, true
}
