package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/resource"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/errreport"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/logger"
)

// StatusFor maps an error kind to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, resource.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, resource.ErrIDMismatch):
		return http.StatusConflict
	case errors.Is(err, resource.ErrNotImplemented):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError writes the status and reason for err. Errors without a known
// kind are logged and reported, and their text is not sent to the client.
func AbortWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	switch status {
	case http.StatusNotImplemented:
		msg = "Working on it!"
	case http.StatusInternalServerError:
		logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		errreport.Capture(c.Request.Context(), err)
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
