package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vjay-git/shivashray/middleware"
	"github.com/vjay-git/shivashray/models"
	"github.com/vjay-git/shivashray/services"
)

// respondServiceError maps a services error kind to an HTTP response with a
// stable code. Conflicts are 400 like validation failures; the code field
// tells "try different dates" apart from "fix your input".
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": errMessage(err)})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"code": "conflict", "error": errMessage(err)})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "error": errMessage(err)})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"code": "forbidden", "error": errMessage(err)})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal", "error": "internal server error"})
	}
}

// errMessage strips the "kind: " prefix added by the services wrappers.
func errMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

// currentUser rebuilds the principal the auth middleware attached. The token
// is already verified; id and role are all the services need.
func currentUser(c *gin.Context) *models.User {
	id, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	userID, ok := id.(uint)
	if !ok {
		return nil
	}
	return &models.User{ID: userID, Role: c.GetString(middleware.ContextUserRole)}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid id: " + raw})
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts either a plain date or a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
