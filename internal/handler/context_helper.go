package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-erp-api/internal/middleware"
	"github.com/noah-isme/campus-erp-api/internal/models"
)

// currentClaims extracts the authenticated claims set by the JWT
// middleware. The bool is false on unauthenticated routes.
func currentClaims(c *gin.Context) (*models.JWTClaims, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}
