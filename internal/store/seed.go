package store

import "github.com/noah-isme/campus-erp-api/internal/models"

// Seed returns the default aggregate used when no persisted state exists
// or the stored document is unreadable: one admin, one student enrolled in
// two of three courses with outstanding fees and one prior payment, and a
// third course with no faculty assignment and an empty roster.
func Seed() *models.Snapshot {
	cs := "fac-1"
	ma := "fac-2"
	return &models.Snapshot{
		Accounts: []models.Account{
			{
				ID:         "admin-1",
				Name:       "Registrar",
				Email:      "admin@college.edu",
				Credential: "admin123",
				Role:       models.RoleAdmin,
			},
			{
				ID:         "stu-1001",
				Name:       "Ananya Sharma",
				Email:      "ananya@college.edu",
				Credential: "student123",
				Role:       models.RoleStudent,
			},
		},
		Students: []models.StudentRecord{
			{
				ID:      "stu-1001",
				Program: "B.Tech CSE",
				Year:    "2",
				FeesDue: 1500,
				Courses: []string{"CS101", "MA102"},
				Payments: []models.PaymentEntry{
					{Amount: 500, Date: "2024-12-01", Method: models.PaymentMethodUPI},
				},
			},
		},
		Faculty: []models.FacultyRecord{
			{ID: "fac-1", Name: "Dr. Mehta", Department: "Computer Science", Email: "mehta@college.edu"},
			{ID: "fac-2", Name: "Prof. Rao", Department: "Mathematics", Email: "rao@college.edu"},
		},
		Courses: []models.CourseRecord{
			{
				ID:        "CS101",
				Code:      "CS101",
				Title:     "Data Structures",
				FacultyID: &cs,
				Capacity:  30,
				Schedule: []models.ScheduleSlot{
					{Day: "Mon", Time: "09:00-11:00", Room: "Lab 2"},
					{Day: "Wed", Time: "10:00-11:00", Room: "Room 204"},
				},
				Enrolled: []string{"stu-1001"},
			},
			{
				ID:        "MA102",
				Code:      "MA102",
				Title:     "Linear Algebra",
				FacultyID: &ma,
				Capacity:  40,
				Schedule: []models.ScheduleSlot{
					{Day: "Tue", Time: "11:00-12:00", Room: "Room 201"},
				},
				Enrolled: []string{"stu-1001"},
			},
			{
				ID:       "HS103",
				Code:     "HS103",
				Title:    "Psychology Basics",
				Capacity: 50,
				Schedule: []models.ScheduleSlot{
					{Day: "Thu", Time: "14:00-15:00", Room: "Room 105"},
				},
				Enrolled: []string{},
			},
		},
	}
}
