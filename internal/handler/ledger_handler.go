package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-erp-api/internal/service"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
	"github.com/noah-isme/campus-erp-api/pkg/response"
)

// LedgerHandler exposes payments for the authenticated student.
type LedgerHandler struct {
	ledger  *service.LedgerService
	metrics *service.MetricsService
}

// NewLedgerHandler constructs LedgerHandler.
func NewLedgerHandler(ledger *service.LedgerService, metrics *service.MetricsService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, metrics: metrics}
}

// RecordPayment applies a payment to the authenticated student's balance.
func (h *LedgerHandler) RecordPayment(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.ledger.RecordPayment(c.Request.Context(), claims.AccountID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.CountTransition("payment")
	}
	response.Created(c, student)
}
