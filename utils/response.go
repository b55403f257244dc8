package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"heath-crm-backend/store"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RespondWithStoreError maps the data-access error taxonomy onto HTTP
// statuses. Not-found-or-forbidden stays a generic 404 so callers cannot
// probe foreign record ids.
func RespondWithStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrUnauthenticated):
		RespondWithError(c, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, store.ErrNotFound):
		RespondWithError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, store.ErrBusy):
		RespondWithError(c, http.StatusTooManyRequests, "A request is already in flight, try again")
	case errors.Is(err, store.ErrTransient):
		RespondWithError(c, http.StatusServiceUnavailable, "Backend temporarily unavailable, try again")
	default:
		RespondWithError(c, http.StatusInternalServerError, "Internal error")
	}
}
