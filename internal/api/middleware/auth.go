package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mernspace/catalog-service/internal/core/domain"
	"github.com/mernspace/catalog-service/internal/infrastructure/auth"
)

// IdentityKey is the echo context key the decoded caller identity is stored
// under.
const IdentityKey = "identity"

const accessTokenCookie = "accessToken"

// Auth verifies the bearer credential against the identity provider's JWKS
// keys and injects the decoded identity into the context. The token is taken
// from the Authorization header first, falling back to the accessToken
// cookie. Only RS256 tokens are accepted.
func Auth(keys *auth.JWKSProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, keys.Keyfunc(c.Request().Context()))
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// Unknown roles keep their raw value; RBAC turns them away with
			// 403 rather than 401, since the caller did authenticate.
			role, ok := domain.ParseRole(claimString(claims, "role"))
			if !ok {
				role = domain.Role(claimString(claims, "role"))
			}

			c.Set(IdentityKey, domain.Identity{
				Subject:  claimString(claims, "sub"),
				Role:     role,
				TenantID: claimString(claims, "tenant"),
			})

			return next(c)
		}
	}
}

// extractToken returns the credential from the Authorization header or the
// accessToken cookie, header taking priority.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") && parts[1] != "" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(accessTokenCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// claimString reads a claim that the identity provider may encode as either
// a string or a number (tenant ids are numeric upstream).
func claimString(claims jwt.MapClaims, name string) string {
	switch v := claims[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}
