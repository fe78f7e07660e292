package models

// ScheduleSlot is one weekly meeting of a course.
type ScheduleSlot struct {
	Day  string `json:"day"`
	Time string `json:"time"`
	Room string `json:"room"`
}

// CourseRecord represents a course offering. ID always equals Code.
// Capacity, schedule and faculty assignment are fixed at creation time.
type CourseRecord struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	Title     string         `json:"title"`
	FacultyID *string        `json:"facultyId"`
	Capacity  int            `json:"capacity"`
	Schedule  []ScheduleSlot `json:"schedule"`
	Enrolled  []string       `json:"enrolled"`
}

// HasStudent reports whether studentID is on the course roster.
func (c *CourseRecord) HasStudent(studentID string) bool {
	for _, id := range c.Enrolled {
		if id == studentID {
			return true
		}
	}
	return false
}

// IsFull reports whether the roster has reached capacity.
func (c *CourseRecord) IsFull() bool {
	return len(c.Enrolled) >= c.Capacity
}

// AddStudent appends studentID to the roster if absent.
func (c *CourseRecord) AddStudent(studentID string) {
	if c.HasStudent(studentID) {
		return
	}
	c.Enrolled = append(c.Enrolled, studentID)
}

// RemoveStudent deletes studentID from the roster if present.
func (c *CourseRecord) RemoveStudent(studentID string) {
	for i, id := range c.Enrolled {
		if id == studentID {
			c.Enrolled = append(c.Enrolled[:i], c.Enrolled[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy of the record.
func (c CourseRecord) Clone() CourseRecord {
	out := c
	if c.FacultyID != nil {
		fid := *c.FacultyID
		out.FacultyID = &fid
	}
	out.Schedule = append([]ScheduleSlot(nil), c.Schedule...)
	out.Enrolled = append([]string(nil), c.Enrolled...)
	return out
}
