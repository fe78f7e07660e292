package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-erp-api/internal/service"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
	"github.com/noah-isme/campus-erp-api/pkg/response"
)

// CatalogHandler exposes the derived read-only views.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Me returns the authenticated account's profile.
func (h *CatalogHandler) Me(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	profile, err := h.catalog.Profile(c.Request.Context(), claims.AccountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// Courses lists every course offering.
func (h *CatalogHandler) Courses(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.Courses(c.Request.Context()))
}

// AvailableCourses lists courses the authenticated student has not taken.
func (h *CatalogHandler) AvailableCourses(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	courses, err := h.catalog.AvailableCourses(c.Request.Context(), claims.AccountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Timetable returns the authenticated student's weekly timetable.
func (h *CatalogHandler) Timetable(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	entries, err := h.catalog.Timetable(c.Request.Context(), claims.AccountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}
