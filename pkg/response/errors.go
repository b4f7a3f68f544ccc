package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sentinel errors shared by the service layer. Handlers translate these into
// HTTP status codes with Abort; services wrap them with %w so errors.Is works
// across layers.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission-denied")
	ErrInvalidArgument  = errors.New("invalid-argument")
	ErrNotFound         = errors.New("not-found")
	ErrConflict         = errors.New("conflict")
	ErrInternal         = errors.New("internal")
)

// StatusCode maps a service error to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes a JSON error body with the mapped status code.
func Error(c *gin.Context, err error) {
	c.JSON(StatusCode(err), gin.H{"error": err.Error()})
}
