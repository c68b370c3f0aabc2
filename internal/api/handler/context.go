package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mernspace/catalog-service/internal/api/middleware"
	"github.com/mernspace/catalog-service/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call when it is absent (the middleware did
// not run or was bypassed).
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
