// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"slices"

	"ecopoint/internal/delivery/http/middleware"
	"ecopoint/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// callerID extracts the authenticated account ID set by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// callerHasRole reports whether the authenticated account carries the role.
func callerHasRole(c echo.Context, role string) bool {
	roles, ok := c.Get(middleware.ContextKeyRoles).([]string)

	return ok && slices.Contains(roles, role)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
