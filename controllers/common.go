package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

// idParam parses the :id path segment. A malformed id cannot match any
// document, so it reads as not-found rather than a validation error.
func idParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Resource not found", nil)
		return primitive.NilObjectID, false
	}
	return oid, true
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Store errors are downgraded to a 500 carrying a single message string.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Resource not found", nil)
	case errors.Is(err, services.ErrForbidden):
		utils.ErrorResponse(c, http.StatusForbidden, "Forbidden", nil)
	case errors.Is(err, utils.ErrInvalidToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token", nil)
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback, err)
	}
}

// listData assembles the uniform list payload: pagination block plus the
// results keyed by the resource's plural name.
func listData(page store.PageInfo, pluralKey string, results interface{}) gin.H {
	return gin.H{
		"total":      page.Total,
		"page":       page.Page,
		"limit":      page.Limit,
		"totalPages": page.TotalPages,
		pluralKey:    results,
	}
}
