package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/docqa-api/internal/core/domain"
	"github.com/docuvault/docqa-api/internal/core/ports"
	"github.com/docuvault/docqa-api/internal/pkg/metrics"
)

// ContextUserKey is the echo context key holding the authenticated *domain.User.
const ContextUserKey = "user"

// Auth validates the bearer token and injects the current user into context.
// The user record is resolved from the store on every request, so a role
// change applies immediately even to tokens issued before the change.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Validate(c.Request().Context(), parts[1])
			if err != nil {
				// Only a rejected token is the client's fault. Anything else
				// (store outage, query failure) must surface as a 500 via the
				// central error handler, not masquerade as a bad credential.
				if errors.Is(err, domain.ErrInvalidToken) {
					metrics.TokenValidationsTotal.WithLabelValues("rejected").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				metrics.TokenValidationsTotal.WithLabelValues("error").Inc()
				return err
			}
			metrics.TokenValidationsTotal.WithLabelValues("success").Inc()

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
