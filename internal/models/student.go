package models

// StudentRecord holds the academic and financial state of one student.
// ID equals the owning Account ID.
type StudentRecord struct {
	ID       string         `json:"id"`
	Program  string         `json:"program"`
	Year     string         `json:"year"`
	FeesDue  int            `json:"feesDue"`
	Courses  []string       `json:"courses"`
	Payments []PaymentEntry `json:"payments"`
}

// IsEnrolledIn reports whether the student's course set contains courseID.
func (s *StudentRecord) IsEnrolledIn(courseID string) bool {
	for _, id := range s.Courses {
		if id == courseID {
			return true
		}
	}
	return false
}

// AddCourse appends courseID to the student's course set if absent.
func (s *StudentRecord) AddCourse(courseID string) {
	if s.IsEnrolledIn(courseID) {
		return
	}
	s.Courses = append(s.Courses, courseID)
}

// RemoveCourse deletes courseID from the student's course set if present.
func (s *StudentRecord) RemoveCourse(courseID string) {
	for i, id := range s.Courses {
		if id == courseID {
			s.Courses = append(s.Courses[:i], s.Courses[i+1:]...)
			return
		}
	}
}

// TotalPaid sums the student's payment history.
func (s *StudentRecord) TotalPaid() int {
	total := 0
	for _, p := range s.Payments {
		total += p.Amount
	}
	return total
}

// Clone returns a deep copy of the record.
func (s StudentRecord) Clone() StudentRecord {
	out := s
	out.Courses = append([]string(nil), s.Courses...)
	out.Payments = append([]PaymentEntry(nil), s.Payments...)
	return out
}
