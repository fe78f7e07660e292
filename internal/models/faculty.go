package models

// FacultyRecord represents a teaching staff member. Records are immutable
// once created; there is no edit or delete operation.
type FacultyRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}
