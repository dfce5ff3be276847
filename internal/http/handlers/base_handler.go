// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"drivehire/internal/modules/auth"
	"drivehire/internal/modules/booking"
	"drivehire/internal/modules/document"
	"drivehire/internal/modules/profile"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrAlreadyTaken), errors.Is(err, booking.ErrInvalidState), errors.Is(err, booking.ErrConflict):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, booking.ErrDriverNotVerified), errors.Is(err, booking.ErrNotBookingDriver):
		writeError(c, http.StatusForbidden, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, profile.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, profile.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrEmailTaken):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidCode),
		errors.Is(err, auth.ErrTokenInvalid), errors.Is(err, auth.ErrTokenRevoked):
		writeError(c, http.StatusUnauthorized, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeDocumentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, document.ErrTooLarge):
		writeError(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, document.ErrBadRequest), errors.Is(err, document.ErrUnsupportedType):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, profile.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
