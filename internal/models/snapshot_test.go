package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *Snapshot {
	fid := "fac-1"
	return &Snapshot{
		Accounts: []Account{
			{ID: "stu-1", Name: "A", Email: "a@college.edu", Credential: "x", Role: RoleStudent},
		},
		Students: []StudentRecord{
			{ID: "stu-1", FeesDue: 100, Courses: []string{"CS101"}, Payments: []PaymentEntry{{Amount: 50, Date: "2025-01-01", Method: PaymentMethodUPI}}},
		},
		Faculty: []FacultyRecord{{ID: "fac-1", Name: "Dr. X", Department: "CS"}},
		Courses: []CourseRecord{
			{ID: "CS101", Code: "CS101", Title: "DS", FacultyID: &fid, Capacity: 2, Enrolled: []string{"stu-1"}},
		},
	}
}

func TestAccountByEmailCaseInsensitive(t *testing.T) {
	snap := sampleSnapshot()

	assert.NotNil(t, snap.AccountByEmail("A@College.EDU"))
	assert.NotNil(t, snap.AccountByEmail("  a@college.edu "))
	assert.Nil(t, snap.AccountByEmail("b@college.edu"))
}

func TestCourseByCodeCaseInsensitive(t *testing.T) {
	snap := sampleSnapshot()

	assert.NotNil(t, snap.CourseByCode("cs101"))
	assert.NotNil(t, snap.CourseByCode(" CS101 "))
	assert.Nil(t, snap.CourseByCode("MA102"))
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	snap := sampleSnapshot()
	clone := snap.Clone()

	clone.Students[0].Courses[0] = "XX999"
	clone.Courses[0].Enrolled[0] = "ghost"
	*clone.Courses[0].FacultyID = "fac-other"
	clone.Students[0].Payments[0].Amount = 0

	assert.Equal(t, "CS101", snap.Students[0].Courses[0])
	assert.Equal(t, "stu-1", snap.Courses[0].Enrolled[0])
	assert.Equal(t, "fac-1", *snap.Courses[0].FacultyID)
	assert.Equal(t, 50, snap.Students[0].Payments[0].Amount)
}

func TestCourseRosterHelpers(t *testing.T) {
	course := CourseRecord{Capacity: 2, Enrolled: []string{"a"}}

	assert.True(t, course.HasStudent("a"))
	assert.False(t, course.HasStudent("b"))
	assert.False(t, course.IsFull())

	course.AddStudent("a")
	require.Len(t, course.Enrolled, 1)

	course.AddStudent("b")
	assert.True(t, course.IsFull())

	course.RemoveStudent("a")
	assert.Equal(t, []string{"b"}, course.Enrolled)
	course.RemoveStudent("ghost")
	assert.Equal(t, []string{"b"}, course.Enrolled)
}

func TestStudentCourseHelpers(t *testing.T) {
	rec := StudentRecord{Courses: []string{"CS101"}}

	rec.AddCourse("CS101")
	require.Len(t, rec.Courses, 1)
	rec.AddCourse("MA102")
	assert.Equal(t, []string{"CS101", "MA102"}, rec.Courses)

	rec.RemoveCourse("CS101")
	assert.Equal(t, []string{"MA102"}, rec.Courses)

	rec.Payments = []PaymentEntry{{Amount: 100}, {Amount: 250}}
	assert.Equal(t, 350, rec.TotalPaid())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("registrar").Valid())

	for _, m := range []PaymentMethod{PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetbanking, PaymentMethodCash} {
		assert.True(t, m.Valid())
	}
	assert.False(t, PaymentMethod("Barter").Valid())
}
