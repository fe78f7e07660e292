package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/internal/store"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
)

const (
	defaultCourseCapacity    = 30
	defaultStudentCredential = "welcome123"
	placeholderSlotToken     = "TBD"
)

// enrollmentEngine is the slice of the enrollment service the admin layer
// delegates to.
type enrollmentEngine interface {
	Enroll(ctx context.Context, studentID, courseID string) (*EnrollmentResult, error)
}

// CreateFacultyRequest describes a new faculty member.
type CreateFacultyRequest struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
}

// CreateCourseRequest describes a new course offering. Schedule is raw
// text, one slot per line as "Day | Time | Room".
type CreateCourseRequest struct {
	Code      string `json:"code" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Capacity  int    `json:"capacity" validate:"omitempty,gt=0"`
	FacultyID string `json:"faculty_id"`
	Schedule  string `json:"schedule"`
}

// CreateStudentRequest describes an admin-created student. The initial
// fees due is accepted verbatim.
type CreateStudentRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Program    string `json:"program"`
	Year       string `json:"year"`
	Credential string `json:"password"`
	FeesDue    int    `json:"fees_due" validate:"omitempty,gte=0"`
}

// CreatedStudent pairs the new account with its student record.
type CreatedStudent struct {
	Account models.AccountInfo   `json:"account"`
	Student models.StudentRecord `json:"student"`
}

// AdminService hosts administrator-only directory operations. Enrollment
// invariants are never duplicated here; they are delegated to the
// enrollment engine.
type AdminService struct {
	directory   *store.Directory
	enrollments enrollmentEngine
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewAdminService constructs an AdminService.
func NewAdminService(directory *store.Directory, enrollments enrollmentEngine, validate *validator.Validate, logger *zap.Logger) *AdminService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{directory: directory, enrollments: enrollments, validator: validate, logger: logger}
}

// CreateFaculty adds a faculty record. Always succeeds for valid input.
func (s *AdminService) CreateFaculty(ctx context.Context, req CreateFacultyRequest) (*models.FacultyRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid faculty payload")
	}

	record := models.FacultyRecord{
		ID:         "fac-" + uuid.NewString(),
		Name:       req.Name,
		Department: req.Department,
		Email:      models.NormalizeEmail(req.Email),
	}
	err := s.directory.Update(func(snap *models.Snapshot) error {
		snap.Faculty = append(snap.Faculty, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("faculty created", zap.String("faculty_id", record.ID))
	return &record, nil
}

// CreateCourse adds a course offering. The course id equals its code, and
// codes are unique case-insensitively. A course always ends up with at
// least one schedule slot.
func (s *AdminService) CreateCourse(ctx context.Context, req CreateCourseRequest) (*models.CourseRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	capacity := req.Capacity
	if capacity <= 0 {
		capacity = defaultCourseCapacity
	}
	var facultyID *string
	if req.FacultyID != "" {
		fid := req.FacultyID
		facultyID = &fid
	}
	record := models.CourseRecord{
		ID:        req.Code,
		Code:      req.Code,
		Title:     req.Title,
		FacultyID: facultyID,
		Capacity:  capacity,
		Schedule:  ParseScheduleLines(req.Schedule),
		Enrolled:  []string{},
	}

	err := s.directory.Update(func(snap *models.Snapshot) error {
		if snap.CourseByCode(req.Code) != nil {
			return appErrors.ErrDuplicateCourseCode
		}
		snap.Courses = append(snap.Courses, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("course created", zap.String("course_id", record.ID))
	return &record, nil
}

// CreateStudent creates an account and its student record together, with
// the same email uniqueness rule as signup.
func (s *AdminService) CreateStudent(ctx context.Context, req CreateStudentRequest) (*CreatedStudent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	credential := req.Credential
	if credential == "" {
		credential = defaultStudentCredential
	}
	account := models.Account{
		ID:         "stu-" + uuid.NewString(),
		Name:       req.Name,
		Email:      models.NormalizeEmail(req.Email),
		Credential: credential,
		Role:       models.RoleStudent,
	}
	record := models.StudentRecord{
		ID:       account.ID,
		Program:  req.Program,
		Year:     req.Year,
		FeesDue:  req.FeesDue,
		Courses:  []string{},
		Payments: []models.PaymentEntry{},
	}

	err := s.directory.Update(func(snap *models.Snapshot) error {
		if snap.AccountByEmail(req.Email) != nil {
			return appErrors.ErrEmailExists
		}
		snap.Accounts = append(snap.Accounts, account)
		snap.Students = append(snap.Students, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("student created", zap.String("student_id", account.ID))
	return &CreatedStudent{Account: account.Info(), Student: record}, nil
}

// EnrollStudent validates both ids so the administrator sees "student not
// found" and "course not found" as distinct outcomes, then delegates to
// the enrollment engine.
func (s *AdminService) EnrollStudent(ctx context.Context, studentID, courseID string) (*EnrollmentResult, error) {
	snap := s.directory.Snapshot()
	if snap.StudentByID(studentID) == nil {
		return nil, appErrors.ErrStudentNotFound
	}
	if snap.CourseByID(courseID) == nil {
		return nil, appErrors.ErrCourseNotFound
	}
	return s.enrollments.Enroll(ctx, studentID, courseID)
}

// ParseScheduleLines converts raw schedule text into slots. Each line is
// "Day | Time | Room"; a missing field falls back to its placeholder,
// fields past the third are dropped, and empty input yields a single
// placeholder slot.
func ParseScheduleLines(raw string) []models.ScheduleSlot {
	var slots []models.ScheduleSlot
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		slot := models.ScheduleSlot{Day: "Day", Time: "Time", Room: "Room"}
		if v := fieldAt(parts, 0); v != "" {
			slot.Day = v
		}
		if v := fieldAt(parts, 1); v != "" {
			slot.Time = v
		}
		if v := fieldAt(parts, 2); v != "" {
			slot.Room = v
		}
		slots = append(slots, slot)
	}
	if len(slots) == 0 {
		slots = []models.ScheduleSlot{{
			Day:  placeholderSlotToken,
			Time: placeholderSlotToken,
			Room: placeholderSlotToken,
		}}
	}
	return slots
}

func fieldAt(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return strings.TrimSpace(parts[i])
}
