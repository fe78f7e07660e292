package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-erp-api/internal/service"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
	"github.com/noah-isme/campus-erp-api/pkg/response"
)

// AdminHandler exposes administrator-only directory operations.
type AdminHandler struct {
	admin   *service.AdminService
	ledger  *service.LedgerService
	catalog *service.CatalogService
	metrics *service.MetricsService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admin *service.AdminService, ledger *service.LedgerService, catalog *service.CatalogService, metrics *service.MetricsService) *AdminHandler {
	return &AdminHandler{admin: admin, ledger: ledger, catalog: catalog, metrics: metrics}
}

// CreateStudent registers a student account with its record.
func (h *AdminHandler) CreateStudent(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	created, err := h.admin.CreateStudent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// CreateFaculty adds a faculty record.
func (h *AdminHandler) CreateFaculty(c *gin.Context) {
	var req service.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.admin.CreateFaculty(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// CreateCourse adds a course offering.
func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.admin.CreateCourse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

type adminEnrollRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	CourseID  string `json:"course_id" binding:"required"`
}

// EnrollStudent enrolls any student into any course.
func (h *AdminHandler) EnrollStudent(c *gin.Context) {
	var req adminEnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.admin.EnrollStudent(c.Request.Context(), req.StudentID, req.CourseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.CountTransition("enroll")
	}
	response.Created(c, result)
}

type applyFineRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Amount    int    `json:"amount"`
	Note      string `json:"note"`
}

// ApplyFine adds a fine to a student's outstanding fees.
func (h *AdminHandler) ApplyFine(c *gin.Context) {
	var req applyFineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.ledger.ApplyFine(c.Request.Context(), req.StudentID, service.ApplyFineRequest{
		Amount: req.Amount,
		Note:   req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.CountTransition("fine")
	}
	response.JSON(c, http.StatusOK, student)
}

// Students lists the roster with account names.
func (h *AdminHandler) Students(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.Students(c.Request.Context()))
}

// Faculty lists all faculty records.
func (h *AdminHandler) Faculty(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.Faculty(c.Request.Context()))
}

// RecentPayments lists the newest payments across all students.
func (h *AdminHandler) RecentPayments(c *gin.Context) {
	limit := 6
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	response.JSON(c, http.StatusOK, h.catalog.RecentPayments(c.Request.Context(), limit))
}

// Stats returns directory collection counts.
func (h *AdminHandler) Stats(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.Stats(c.Request.Context()))
}
