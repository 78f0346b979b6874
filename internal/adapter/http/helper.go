package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"office-nexus-backend/pkg/apperr"
)

// writeError maps business errors to HTTP responses: validation → 422,
// invalid state / conflict → 409, not found → 404, anything else → 500.
func writeError(c echo.Context, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			resp := ErrorResponse{Error: "validation failed"}
			if ae.Field != "" {
				resp.Details = []FieldError{{Field: ae.Field, Message: ae.Msg}}
			} else {
				resp.Error = ae.Msg
			}
			return c.JSON(http.StatusUnprocessableEntity, resp)
		case apperr.KindInvalidState, apperr.KindConflict:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: ae.Error()})
		case apperr.KindNotFound:
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: ae.Error()})
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
