package models

import "strings"

// Snapshot is the full aggregate treated as one consistency boundary. It is
// the unit of persistence: the whole document is loaded and saved at once.
// JSON field names follow the persisted document format.
type Snapshot struct {
	Accounts []Account       `json:"users"`
	Students []StudentRecord `json:"students"`
	Faculty  []FacultyRecord `json:"faculty"`
	Courses  []CourseRecord  `json:"courses"`
}

// AccountByEmail returns the account whose email matches case-insensitively.
func (s *Snapshot) AccountByEmail(email string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].EmailMatches(email) {
			return &s.Accounts[i]
		}
	}
	return nil
}

// AccountByID returns the account with the given id.
func (s *Snapshot) AccountByID(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// StudentByID returns the student record with the given id.
func (s *Snapshot) StudentByID(id string) *StudentRecord {
	for i := range s.Students {
		if s.Students[i].ID == id {
			return &s.Students[i]
		}
	}
	return nil
}

// CourseByID returns the course with the given id.
func (s *Snapshot) CourseByID(id string) *CourseRecord {
	for i := range s.Courses {
		if s.Courses[i].ID == id {
			return &s.Courses[i]
		}
	}
	return nil
}

// CourseByCode returns the course whose code matches case-insensitively.
func (s *Snapshot) CourseByCode(code string) *CourseRecord {
	want := strings.ToLower(strings.TrimSpace(code))
	for i := range s.Courses {
		if strings.ToLower(s.Courses[i].Code) == want {
			return &s.Courses[i]
		}
	}
	return nil
}

// FacultyByID returns the faculty record with the given id.
func (s *Snapshot) FacultyByID(id string) *FacultyRecord {
	for i := range s.Faculty {
		if s.Faculty[i].ID == id {
			return &s.Faculty[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the aggregate.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Accounts: append([]Account(nil), s.Accounts...),
		Students: make([]StudentRecord, len(s.Students)),
		Faculty:  append([]FacultyRecord(nil), s.Faculty...),
		Courses:  make([]CourseRecord, len(s.Courses)),
	}
	for i := range s.Students {
		out.Students[i] = s.Students[i].Clone()
	}
	for i := range s.Courses {
		out.Courses[i] = s.Courses[i].Clone()
	}
	return out
}
