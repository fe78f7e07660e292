package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-erp-api/internal/service"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
	"github.com/noah-isme/campus-erp-api/pkg/response"
)

// EnrollmentHandler exposes the student-facing enroll/drop endpoints. The
// student id always comes from the session, never from the payload.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
	metrics     *service.MetricsService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService, metrics *service.MetricsService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments, metrics: metrics}
}

type enrollRequest struct {
	CourseID string `json:"course_id" binding:"required"`
}

// Enroll adds the authenticated student to a course.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.enrollments.Enroll(c.Request.Context(), claims.AccountID, req.CourseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.CountTransition("enroll")
	}
	response.Created(c, result)
}

// Drop removes the authenticated student from a course. Dropping a course
// the student is not enrolled in succeeds without effect.
func (h *EnrollmentHandler) Drop(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	result, err := h.enrollments.Drop(c.Request.Context(), claims.AccountID, c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.CountTransition("drop")
	}
	response.JSON(c, http.StatusOK, result)
}
