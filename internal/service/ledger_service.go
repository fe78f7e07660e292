package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/internal/store"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
)

// DefaultCourseFee is charged per enrollment when no fee is configured.
const DefaultCourseFee = 500

// RecordPaymentRequest describes a payment submission.
type RecordPaymentRequest struct {
	Amount int                  `json:"amount"`
	Method models.PaymentMethod `json:"method" validate:"required,oneof=Card UPI Netbanking Cash"`
}

// ApplyFineRequest describes an administrative fine. The note is an
// observability side channel only; it is never persisted.
type ApplyFineRequest struct {
	Amount int    `json:"amount"`
	Note   string `json:"note"`
}

// LedgerService owns all mutations of a student's outstanding balance.
// Every operation transforms exactly one student record and leaves the
// rest of the aggregate untouched.
type LedgerService struct {
	directory *store.Directory
	validator *validator.Validate
	logger    *zap.Logger
	courseFee int
	now       func() time.Time
}

// NewLedgerService constructs a LedgerService.
func NewLedgerService(directory *store.Directory, courseFee int, validate *validator.Validate, logger *zap.Logger) *LedgerService {
	if courseFee <= 0 {
		courseFee = DefaultCourseFee
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerService{
		directory: directory,
		validator: validate,
		logger:    logger,
		courseFee: courseFee,
		now:       time.Now,
	}
}

// CourseFee returns the fixed per-course fee.
func (s *LedgerService) CourseFee() int {
	return s.courseFee
}

// ChargeCourseFee increases the student's balance by the course fee.
// Called only as part of a successful enrollment.
func (s *LedgerService) ChargeCourseFee(rec *models.StudentRecord) {
	rec.FeesDue += s.courseFee
}

// RefundCourseFee decreases the student's balance by the course fee,
// floored at zero. Called only as part of a drop.
func (s *LedgerService) RefundCourseFee(rec *models.StudentRecord) {
	rec.FeesDue = maxInt(0, rec.FeesDue-s.courseFee)
}

// RecordPayment reduces the balance by the paid amount (floored at zero;
// excess is discarded, not carried as credit) and appends a dated entry
// to the payment history.
func (s *LedgerService) RecordPayment(ctx context.Context, studentID string, req RecordPaymentRequest) (*models.StudentRecord, error) {
	if req.Amount <= 0 {
		return nil, appErrors.Clone(appErrors.ErrInvalidAmount, "payment amount must be positive")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment payload")
	}

	var updated models.StudentRecord
	err := s.directory.Update(func(snap *models.Snapshot) error {
		rec := snap.StudentByID(studentID)
		if rec == nil {
			return appErrors.ErrStudentNotFound
		}
		rec.FeesDue = maxInt(0, rec.FeesDue-req.Amount)
		rec.Payments = append(rec.Payments, models.PaymentEntry{
			Amount: req.Amount,
			Date:   s.now().Format("2006-01-02"),
			Method: req.Method,
		})
		updated = rec.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.String("student_id", studentID),
		zap.Int("amount", req.Amount),
		zap.String("method", string(req.Method)))
	return &updated, nil
}

// ApplyFine increases the student's balance by the fine amount. The note
// is logged, never stored.
func (s *LedgerService) ApplyFine(ctx context.Context, studentID string, req ApplyFineRequest) (*models.StudentRecord, error) {
	if req.Amount <= 0 {
		return nil, appErrors.Clone(appErrors.ErrInvalidAmount, "fine amount must be positive")
	}

	var updated models.StudentRecord
	err := s.directory.Update(func(snap *models.Snapshot) error {
		rec := snap.StudentByID(studentID)
		if rec == nil {
			return appErrors.ErrStudentNotFound
		}
		rec.FeesDue += req.Amount
		updated = rec.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.String("student_id", studentID),
		zap.Int("amount", req.Amount),
	}
	if req.Note != "" {
		fields = append(fields, zap.String("note", req.Note))
	}
	s.logger.Info("fine applied", fields...)
	return &updated, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
