package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/policy"
	"github.com/iliyamo/hall-reservation/internal/service"
)

func TestWriteServiceError(t *testing.T) {
	validation := &service.ValidationError{FieldErrors: map[string]string{"date": "bad"}}
	conflict := &service.ConflictError{Entry: model.ScheduleEntry{
		ID: 7, HallID: 1, Date: "2026-03-05", StartTime: "09:00", EndTime: "10:30",
		Status: model.StatusReserved, EventName: "Nikah",
	}}

	tests := []struct {
		name     string
		err      error
		status   int
		contains string
	}{
		{"validation maps to 400", validation, http.StatusBadRequest, `"date"`},
		{"denial maps to 403", fmt.Errorf("%w: nope", policy.ErrDenied), http.StatusForbidden, "not permitted"},
		{"not found maps to 404", service.ErrNotFound, http.StatusNotFound, "not found"},
		{"conflict maps to 409 with entry", conflict, http.StatusConflict, `"id":7`},
		{"unknown maps to 500 without detail", errors.New("mysql exploded"), http.StatusInternalServerError, "internal error"},
	}
	e := echo.New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := writeServiceError(c, tc.err); err != nil {
				t.Fatalf("writeServiceError returned %v", err)
			}
			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}
			if !strings.Contains(rec.Body.String(), tc.contains) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tc.contains)
			}
			if tc.status == http.StatusInternalServerError && strings.Contains(rec.Body.String(), "mysql") {
				t.Errorf("internal detail leaked: %q", rec.Body.String())
			}
		})
	}
}
