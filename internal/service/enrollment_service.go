package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/internal/store"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
)

// feeLedger is the slice of the ledger the enrollment engine needs: fee
// mutations applied to a record inside the same committed transition.
type feeLedger interface {
	ChargeCourseFee(rec *models.StudentRecord)
	RefundCourseFee(rec *models.StudentRecord)
}

// EnrollmentResult reports the post-transition state of the pair.
type EnrollmentResult struct {
	Student models.StudentRecord `json:"student"`
	Course  models.CourseRecord  `json:"course"`
}

// EnrollmentService is the only component allowed to change course
// rosters. It keeps the roster and the student's course set in lockstep:
// both sides and the fee charge commit together or not at all.
type EnrollmentService struct {
	directory *store.Directory
	fees      feeLedger
	logger    *zap.Logger
}

// NewEnrollmentService constructs an EnrollmentService.
func NewEnrollmentService(directory *store.Directory, fees feeLedger, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{directory: directory, fees: fees, logger: logger}
}

// Enroll adds the student to the course roster. Preconditions, in order:
// the course exists, the student is not already on the roster, and the
// roster is strictly below capacity.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID string) (*EnrollmentResult, error) {
	var result EnrollmentResult
	err := s.directory.Update(func(snap *models.Snapshot) error {
		course := snap.CourseByID(courseID)
		if course == nil {
			return appErrors.ErrCourseNotFound
		}
		if course.HasStudent(studentID) {
			return appErrors.ErrAlreadyEnrolled
		}
		if course.IsFull() {
			return appErrors.ErrCapacityReached
		}
		student := snap.StudentByID(studentID)
		if student == nil {
			return appErrors.ErrStudentNotFound
		}

		course.AddStudent(studentID)
		student.AddCourse(courseID)
		s.fees.ChargeCourseFee(student)

		result = EnrollmentResult{Student: student.Clone(), Course: course.Clone()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("student enrolled",
		zap.String("student_id", studentID),
		zap.String("course_id", courseID))
	return &result, nil
}

// Drop removes the student from the course roster and refunds the course
// fee. Dropping a pair that is not enrolled is a silent no-op, not an
// error: the state is returned unchanged.
func (s *EnrollmentService) Drop(ctx context.Context, studentID, courseID string) (*EnrollmentResult, error) {
	var result EnrollmentResult
	var dropped bool
	err := s.directory.Update(func(snap *models.Snapshot) error {
		student := snap.StudentByID(studentID)
		if student == nil {
			return appErrors.ErrStudentNotFound
		}
		course := snap.CourseByID(courseID)
		if course == nil || !course.HasStudent(studentID) {
			result = EnrollmentResult{Student: student.Clone()}
			if course != nil {
				result.Course = course.Clone()
			}
			return nil
		}

		course.RemoveStudent(studentID)
		student.RemoveCourse(courseID)
		s.fees.RefundCourseFee(student)
		dropped = true

		result = EnrollmentResult{Student: student.Clone(), Course: course.Clone()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if dropped {
		s.logger.Info("student dropped course",
			zap.String("student_id", studentID),
			zap.String("course_id", courseID))
	}
	return &result, nil
}
