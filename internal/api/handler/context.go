package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Vladoochka/ProjectTask/internal/core/domain"
	"github.com/Vladoochka/ProjectTask/internal/core/ports"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran; without it the request
// must not reach any operation.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}

// resolveActor builds the full actor (identity + matching profile) for the
// authenticated request.
func resolveActor(c echo.Context, resolver ports.ActorResolver) (domain.Actor, error) {
	userID, err := ctxUserID(c)
	if err != nil {
		return domain.Actor{}, err
	}
	return resolver.Resolve(c.Request().Context(), userID)
}
