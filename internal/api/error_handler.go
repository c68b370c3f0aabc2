package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mernspace/catalog-service/internal/api/handler"
	"github.com/mernspace/catalog-service/internal/core/domain"
)

// apiError is one entry of the canonical error envelope.
type apiError struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// errorResponse is the canonical envelope for all API errors:
// {"errors":[{"type","message","path","location"}]}.
type errorResponse struct {
	Errors []apiError `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Expands field-level validation failures into one entry per field.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, entries := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Errors: entries})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, []apiError) {
	// Field-level validation failures, possibly wrapped in an echo.HTTPError
	// by the handler.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		entries := make([]apiError, 0, len(ve.Violations))
		for _, v := range ve.Violations {
			entries = append(entries, apiError{
				Type:     "ValidationError",
				Message:  v.Message,
				Path:     v.Field,
				Location: "body",
			})
		}
		return http.StatusBadRequest, entries
	}

	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, []apiError{{
			Type:    typeForStatus(he.Code),
			Message: fmt.Sprintf("%v", he.Message),
		}}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrTenantRequired),
		errors.Is(err, domain.ErrTenantMissing):
		return http.StatusBadRequest, []apiError{{Type: "ValidationError", Message: err.Error(), Location: "body"}}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, []apiError{{Type: "Forbidden", Message: "access forbidden"}}
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrToppingNotFound):
		return http.StatusNotFound, []apiError{{Type: "NotFound", Message: err.Error()}}
	case errors.Is(err, domain.ErrDuplicateName):
		return http.StatusConflict, []apiError{{Type: "Conflict", Message: err.Error()}}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, []apiError{{Type: "InternalError", Message: "internal server error"}}
}

func typeForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "ValidationError"
	case http.StatusUnauthorized:
		return "Unauthenticated"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "NotFound"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusRequestEntityTooLarge:
		return "PayloadTooLarge"
	default:
		return "InternalError"
	}
}
