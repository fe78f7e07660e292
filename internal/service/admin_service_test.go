package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/internal/store"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
)

func newAdminFixture(t *testing.T) (*store.Directory, *AdminService) {
	t.Helper()
	directory := store.New(store.Seed(), nil)
	ledger := NewLedgerService(directory, 0, nil, nil)
	enrollments := NewEnrollmentService(directory, ledger, nil)
	admin := NewAdminService(directory, enrollments, nil, nil)
	return directory, admin
}

func TestCreateFaculty(t *testing.T) {
	directory, admin := newAdminFixture(t)

	record, err := admin.CreateFaculty(context.Background(), CreateFacultyRequest{
		Name:       "Dr. Iyer",
		Department: "Physics",
		Email:      "Iyer@College.edu",
	})
	require.NoError(t, err)

	assert.True(t, len(record.ID) > len("fac-"))
	assert.Equal(t, "iyer@college.edu", record.Email)
	assert.Len(t, directory.Snapshot().Faculty, 3)
}

func TestCreateFacultyValidation(t *testing.T) {
	_, admin := newAdminFixture(t)

	_, err := admin.CreateFaculty(context.Background(), CreateFacultyRequest{
		Name:  "No Department",
		Email: "x@college.edu",
	})
	require.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestCreateCourse(t *testing.T) {
	directory, admin := newAdminFixture(t)

	record, err := admin.CreateCourse(context.Background(), CreateCourseRequest{
		Code:      "PH104",
		Title:     "Mechanics",
		Capacity:  25,
		FacultyID: "fac-1",
		Schedule:  "Mon | 09:00-10:00 | Room 101\nFri | 14:00-15:00 | Lab 1",
	})
	require.NoError(t, err)

	assert.Equal(t, "PH104", record.ID)
	assert.Equal(t, record.Code, record.ID)
	assert.Equal(t, 25, record.Capacity)
	require.NotNil(t, record.FacultyID)
	assert.Equal(t, "fac-1", *record.FacultyID)
	require.Len(t, record.Schedule, 2)
	assert.Empty(t, record.Enrolled)

	assert.NotNil(t, directory.Snapshot().CourseByID("PH104"))
}

func TestCreateCourseDefaults(t *testing.T) {
	_, admin := newAdminFixture(t)

	record, err := admin.CreateCourse(context.Background(), CreateCourseRequest{
		Code:  "EC105",
		Title: "Microeconomics",
	})
	require.NoError(t, err)

	assert.Equal(t, defaultCourseCapacity, record.Capacity)
	assert.Nil(t, record.FacultyID)
	require.Len(t, record.Schedule, 1)
	assert.Equal(t, models.ScheduleSlot{Day: "TBD", Time: "TBD", Room: "TBD"}, record.Schedule[0])
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	directory, admin := newAdminFixture(t)

	for _, code := range []string{"CS101", "cs101", " CS101 "} {
		_, err := admin.CreateCourse(context.Background(), CreateCourseRequest{
			Code:  code,
			Title: "Shadow Course",
		})
		require.ErrorIs(t, err, appErrors.ErrDuplicateCourseCode, "code %q", code)
	}
	assert.Len(t, directory.Snapshot().Courses, 3)
}

func TestCreateStudent(t *testing.T) {
	directory, admin := newAdminFixture(t)

	created, err := admin.CreateStudent(context.Background(), CreateStudentRequest{
		Name:    "Vikram Singh",
		Email:   "vikram@college.edu",
		Program: "B.Com",
		Year:    "3",
		FeesDue: 800,
	})
	require.NoError(t, err)

	assert.Equal(t, created.Account.ID, created.Student.ID)
	assert.Equal(t, models.RoleStudent, created.Account.Role)
	assert.Equal(t, 800, created.Student.FeesDue)
	assert.Empty(t, created.Student.Courses)

	snap := directory.Snapshot()
	account := snap.AccountByID(created.Account.ID)
	require.NotNil(t, account)
	assert.Equal(t, defaultStudentCredential, account.Credential)
	assert.NotNil(t, snap.StudentByID(created.Student.ID))
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	directory, admin := newAdminFixture(t)
	before := directory.Snapshot()

	_, err := admin.CreateStudent(context.Background(), CreateStudentRequest{
		Name:  "Impostor",
		Email: "ANANYA@college.edu",
	})
	require.ErrorIs(t, err, appErrors.ErrEmailExists)

	after := directory.Snapshot()
	assert.Len(t, after.Accounts, len(before.Accounts))
	assert.Len(t, after.Students, len(before.Students))
}

func TestAdminEnrollStudent(t *testing.T) {
	directory, admin := newAdminFixture(t)

	result, err := admin.EnrollStudent(context.Background(), "stu-1001", "HS103")
	require.NoError(t, err)

	assert.Contains(t, result.Course.Enrolled, "stu-1001")
	assert.Equal(t, 2000, directory.Snapshot().StudentByID("stu-1001").FeesDue)
}

func TestAdminEnrollDistinguishesMissingParties(t *testing.T) {
	_, admin := newAdminFixture(t)
	ctx := context.Background()

	_, err := admin.EnrollStudent(ctx, "ghost", "HS103")
	require.ErrorIs(t, err, appErrors.ErrStudentNotFound)

	_, err = admin.EnrollStudent(ctx, "stu-1001", "XX999")
	require.ErrorIs(t, err, appErrors.ErrCourseNotFound)

	_, err = admin.EnrollStudent(ctx, "stu-1001", "CS101")
	require.ErrorIs(t, err, appErrors.ErrAlreadyEnrolled)
}

func TestParseScheduleLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []models.ScheduleSlot
	}{
		{
			name: "full lines",
			raw:  "Mon | 09:00-10:00 | Room 101\nTue | 11:00-12:00 | Lab 2",
			want: []models.ScheduleSlot{
				{Day: "Mon", Time: "09:00-10:00", Room: "Room 101"},
				{Day: "Tue", Time: "11:00-12:00", Room: "Lab 2"},
			},
		},
		{
			name: "missing fields fall back",
			raw:  "Wed",
			want: []models.ScheduleSlot{{Day: "Wed", Time: "Time", Room: "Room"}},
		},
		{
			name: "blank middle field falls back",
			raw:  "Thu | | Room 300",
			want: []models.ScheduleSlot{{Day: "Thu", Time: "Time", Room: "Room 300"}},
		},
		{
			name: "surplus fields dropped",
			raw:  "Fri | 10:00 | Hall A | annex",
			want: []models.ScheduleSlot{{Day: "Fri", Time: "10:00", Room: "Hall A"}},
		},
		{
			name: "blank lines skipped",
			raw:  "\n\nMon | 08:00 | R1\n\n",
			want: []models.ScheduleSlot{{Day: "Mon", Time: "08:00", Room: "R1"}},
		},
		{
			name: "empty input yields placeholder",
			raw:  "",
			want: []models.ScheduleSlot{{Day: "TBD", Time: "TBD", Room: "TBD"}},
		},
		{
			name: "whitespace only yields placeholder",
			raw:  "   \n  \n",
			want: []models.ScheduleSlot{{Day: "TBD", Time: "TBD", Room: "TBD"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScheduleLines(tt.raw))
		})
	}
}
