package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/internal/store"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
)

// TimetableEntry is one flattened schedule slot of an enrolled course.
type TimetableEntry struct {
	Day    string `json:"day"`
	Time   string `json:"time"`
	Room   string `json:"room"`
	Course string `json:"course"`
	Code   string `json:"code"`
}

// StudentSummary joins a student record with its account name for roster
// listings.
type StudentSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Program string `json:"program"`
	Year    string `json:"year"`
	FeesDue int    `json:"fees_due"`
}

// RecentPayment is one entry of the institution-wide payment feed.
type RecentPayment struct {
	StudentID   string               `json:"student_id"`
	StudentName string               `json:"student_name"`
	Amount      int                  `json:"amount"`
	Date        string               `json:"date"`
	Method      models.PaymentMethod `json:"method"`
}

// Stats counts the directory collections.
type Stats struct {
	Students int `json:"students"`
	Faculty  int `json:"faculty"`
	Courses  int `json:"courses"`
}

// Profile pairs an account with its student record when the account
// belongs to a student.
type Profile struct {
	Account models.AccountInfo    `json:"account"`
	Student *models.StudentRecord `json:"student,omitempty"`
}

// CatalogService answers read-only queries. Every view is recomputed from
// the aggregate on each call; nothing here is cached or persisted.
type CatalogService struct {
	directory *store.Directory
	logger    *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(directory *store.Directory, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{directory: directory, logger: logger}
}

// Profile resolves an account id to its public profile.
func (s *CatalogService) Profile(ctx context.Context, accountID string) (*Profile, error) {
	snap := s.directory.Snapshot()
	account := snap.AccountByID(accountID)
	if account == nil {
		return nil, appErrors.ErrNotFound
	}
	profile := &Profile{Account: account.Info()}
	if account.Role == models.RoleStudent {
		if rec := snap.StudentByID(accountID); rec != nil {
			clone := rec.Clone()
			profile.Student = &clone
		}
	}
	return profile, nil
}

// Courses lists every course offering.
func (s *CatalogService) Courses(ctx context.Context) []models.CourseRecord {
	return s.directory.Snapshot().Courses
}

// AvailableCourses lists the courses the student is not enrolled in.
func (s *CatalogService) AvailableCourses(ctx context.Context, studentID string) ([]models.CourseRecord, error) {
	snap := s.directory.Snapshot()
	student := snap.StudentByID(studentID)
	if student == nil {
		return nil, appErrors.ErrStudentNotFound
	}
	available := []models.CourseRecord{}
	for _, course := range snap.Courses {
		if !student.IsEnrolledIn(course.ID) {
			available = append(available, course)
		}
	}
	return available, nil
}

// Timetable flattens the schedule slots of the student's enrolled courses.
func (s *CatalogService) Timetable(ctx context.Context, studentID string) ([]TimetableEntry, error) {
	snap := s.directory.Snapshot()
	student := snap.StudentByID(studentID)
	if student == nil {
		return nil, appErrors.ErrStudentNotFound
	}
	entries := []TimetableEntry{}
	for _, courseID := range student.Courses {
		course := snap.CourseByID(courseID)
		if course == nil {
			continue
		}
		for _, slot := range course.Schedule {
			entries = append(entries, TimetableEntry{
				Day:    slot.Day,
				Time:   slot.Time,
				Room:   slot.Room,
				Course: course.Title,
				Code:   course.Code,
			})
		}
	}
	return entries, nil
}

// Students lists every student joined with their account name.
func (s *CatalogService) Students(ctx context.Context) []StudentSummary {
	snap := s.directory.Snapshot()
	out := make([]StudentSummary, 0, len(snap.Students))
	for _, rec := range snap.Students {
		summary := StudentSummary{
			ID:      rec.ID,
			Program: rec.Program,
			Year:    rec.Year,
			FeesDue: rec.FeesDue,
		}
		if account := snap.AccountByID(rec.ID); account != nil {
			summary.Name = account.Name
		}
		out = append(out, summary)
	}
	return out
}

// Faculty lists every faculty record.
func (s *CatalogService) Faculty(ctx context.Context) []models.FacultyRecord {
	return s.directory.Snapshot().Faculty
}

// CourseRoster resolves a course's enrolled student ids to summaries.
func (s *CatalogService) CourseRoster(ctx context.Context, courseID string) (*models.CourseRecord, []StudentSummary, error) {
	snap := s.directory.Snapshot()
	course := snap.CourseByID(courseID)
	if course == nil {
		return nil, nil, appErrors.ErrCourseNotFound
	}
	roster := []StudentSummary{}
	for _, studentID := range course.Enrolled {
		rec := snap.StudentByID(studentID)
		if rec == nil {
			continue
		}
		summary := StudentSummary{
			ID:      rec.ID,
			Program: rec.Program,
			Year:    rec.Year,
			FeesDue: rec.FeesDue,
		}
		if account := snap.AccountByID(rec.ID); account != nil {
			summary.Name = account.Name
		}
		roster = append(roster, summary)
	}
	clone := course.Clone()
	return &clone, roster, nil
}

// RecentPayments returns the newest payments across all students, newest
// first, capped at limit.
func (s *CatalogService) RecentPayments(ctx context.Context, limit int) []RecentPayment {
	if limit <= 0 {
		limit = 6
	}
	snap := s.directory.Snapshot()
	all := []RecentPayment{}
	for _, rec := range snap.Students {
		name := ""
		if account := snap.AccountByID(rec.ID); account != nil {
			name = account.Name
		}
		for _, p := range rec.Payments {
			all = append(all, RecentPayment{
				StudentID:   rec.ID,
				StudentName: name,
				Amount:      p.Amount,
				Date:        p.Date,
				Method:      p.Method,
			})
		}
	}
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all
}

// Stats counts the directory collections.
func (s *CatalogService) Stats(ctx context.Context) Stats {
	snap := s.directory.Snapshot()
	return Stats{
		Students: len(snap.Students),
		Faculty:  len(snap.Faculty),
		Courses:  len(snap.Courses),
	}
}
