package handlers

import (
	"errors"
	"net/http"

	"github.com/example/corebank/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps a business error to its HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrSameAccount):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrAccountClosed),
		errors.Is(err, apperrors.ErrMinimumBalance),
		errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrNonZeroBalance),
		errors.Is(err, apperrors.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body for a failed operation. Internal
// failures are masked with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
