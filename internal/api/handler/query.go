package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mernspace/catalog-service/internal/core/ports"
)

// parseListFilter reads the common list query parameters. Non-numeric or
// non-positive page/limit values fall back to the defaults without raising a
// validation error; entity-id filters are passed through as-is and dropped
// later by the match builder when invalid.
func parseListFilter(c echo.Context) ports.ListFilter {
	f := ports.ListFilter{
		Query:      c.QueryParam("q"),
		CategoryID: c.QueryParam("categoryId"),
		TenantID:   c.QueryParam("tenantId"),
		Page:       parsePositiveInt(c.QueryParam("page"), ports.DefaultPage),
		Limit:      parsePositiveInt(c.QueryParam("limit"), ports.DefaultLimit),
	}

	if raw := c.QueryParam("isPublished"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.IsPublished = &v
		}
	}

	return f
}

func parsePositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// pathID validates the :id path parameter as object-id hex. Unlike the list
// filters, a malformed id on a direct lookup is a client error.
func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
