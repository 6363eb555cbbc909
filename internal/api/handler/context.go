package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/docqa-api/internal/api/middleware"
	"github.com/docuvault/docqa-api/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. Its presence
// proves the middleware ran; a protected handler reached without it is a
// routing mistake and fails closed with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
