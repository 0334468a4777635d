package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fleetflow/application"
	"fleetflow/auth"
	"fleetflow/fleet"
	"fleetflow/validate"
)

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// respondError translates the domain error taxonomy into the wire shape in
// one place. Validation and not-found detail is surfaced to the caller;
// anything else is logged in full and returned as an opaque failure so
// store internals never leak.
func (s *Server) respondError(c *gin.Context, err error) {
	var fieldErrs validate.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fieldErrs.Error(),
			"fields":  map[string]string(fieldErrs),
		})
	case errors.Is(err, application.ErrNotFound),
		errors.Is(err, fleet.ErrNotFound),
		errors.Is(err, auth.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid username or password"})
	case errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrDuplicateUsername),
		errors.Is(err, auth.ErrSetupComplete):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		s.log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
	}
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body: " + err.Error()})
}
