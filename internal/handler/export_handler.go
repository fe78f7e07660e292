package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/internal/service"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
	"github.com/noah-isme/campus-erp-api/pkg/export"
	"github.com/noah-isme/campus-erp-api/pkg/response"
)

// ExportHandler serves downloadable roster and fee-statement documents.
type ExportHandler struct {
	catalog  *service.CatalogService
	currency string
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(catalog *service.CatalogService, currency string) *ExportHandler {
	if currency == "" {
		currency = "INR"
	}
	return &ExportHandler{catalog: catalog, currency: currency}
}

// CourseRosterCSV streams the roster of one course as CSV.
func (h *ExportHandler) CourseRosterCSV(c *gin.Context) {
	course, roster, err := h.catalog.CourseRoster(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	rows := make([]export.RosterRow, 0, len(roster))
	for _, s := range roster {
		rows = append(rows, export.RosterRow{StudentID: s.ID, Name: s.Name, Program: s.Program, Year: s.Year})
	}
	raw, err := export.RosterCSV(course.Code, course.Title, rows)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render roster"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-roster.csv", course.Code))
	c.Data(http.StatusOK, "text/csv", raw)
}

// StudentPaymentsCSV streams a student's payment history as CSV.
func (h *ExportHandler) StudentPaymentsCSV(c *gin.Context) {
	profile, err := h.catalog.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if profile.Student == nil {
		response.Error(c, appErrors.ErrStudentNotFound)
		return
	}
	raw, err := export.PaymentsCSV(profile.Student.ID, statementRows(profile.Student.Payments))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render payments"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-payments.csv", profile.Student.ID))
	c.Data(http.StatusOK, "text/csv", raw)
}

// FeeStatementPDF streams a student's fee statement as PDF.
func (h *ExportHandler) FeeStatementPDF(c *gin.Context) {
	profile, err := h.catalog.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if profile.Student == nil {
		response.Error(c, appErrors.ErrStudentNotFound)
		return
	}
	raw, err := export.FeeStatementPDF(statementOf(profile, h.currency))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render statement"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-statement.pdf", profile.Student.ID))
	c.Data(http.StatusOK, "application/pdf", raw)
}

func statementOf(profile *service.Profile, currency string) export.Statement {
	return export.Statement{
		StudentName: profile.Account.Name,
		StudentID:   profile.Student.ID,
		Program:     profile.Student.Program,
		Year:        profile.Student.Year,
		FeesDue:     profile.Student.FeesDue,
		Currency:    currency,
		Payments:    statementRows(profile.Student.Payments),
	}
}

func statementRows(payments []models.PaymentEntry) []export.StatementRow {
	rows := make([]export.StatementRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, export.StatementRow{Date: p.Date, Method: string(p.Method), Amount: p.Amount})
	}
	return rows
}
