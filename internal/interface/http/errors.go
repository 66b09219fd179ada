package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/gatherly/internal/application"
	"github.com/gatherly/gatherly/pkg/response"
)

// respondError maps the application error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrNotAuthenticated):
		response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, application.ErrRSVPNotFound):
		response.Error[any](c, http.StatusNotFound, "rsvp not found", nil)
	case errors.Is(err, application.ErrProfileExists):
		response.Error[any](c, http.StatusConflict, "profile already exists", nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
